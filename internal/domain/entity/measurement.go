package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeasurementSheet is a batch of slab readings measured against one trim
// allowance, the source of a packing list. AllowanceText is kept verbatim
// as typed; HeightTrim/LengthTrim are its parsed form. The totals are
// caches of the last run of the measurement engine over the slabs.
type MeasurementSheet struct {
	ID             string
	CompanyID      string
	BuyerID        string // optional, empty when the sheet is not yet assigned
	InvoiceNumber  string // optional reference to the related invoice
	Description    string
	AllowanceText  string
	HeightTrim     decimal.Decimal
	LengthTrim     decimal.Decimal
	TotalGrossArea decimal.Decimal // m²
	TotalNetArea   decimal.Decimal // m²
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MeasurementSlab is one persisted slab row of a sheet. Mirrors
// measure.SlabRecord; Position carries the engine's 1-based sequence ID,
// which is printed as the slab label on the packing list.
type MeasurementSlab struct {
	ID          string
	SheetID     string
	Position    int
	GrossLength decimal.Decimal // cm
	GrossHeight decimal.Decimal // cm
	NetLength   decimal.Decimal // cm
	NetHeight   decimal.Decimal // cm
	GrossArea   decimal.Decimal // m²
	NetArea     decimal.Decimal // m²
}
