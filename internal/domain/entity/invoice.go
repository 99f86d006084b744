package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice kinds. A proforma and a commercial invoice share the same shape;
// the kind only changes the document title and numbering prefix.
const (
	KindProforma   = "PROFORMA"
	KindCommercial = "COMMERCIAL"
)

// Incoterms accepted on export invoices.
var Incoterms = []string{"CIF", "FOB", "EXW", "DDP", "CFR"}

// ValidIncoterm reports whether code is one of the accepted incoterms.
func ValidIncoterm(code string) bool {
	for _, t := range Incoterms {
		if t == code {
			return true
		}
	}
	return false
}

// Logistics is the shipment routing block of an export invoice.
type Logistics struct {
	PreCarriage      string // e.g. "Road/Rail"
	PlaceOfReceipt   string
	PortOfLoading    string
	PortOfDischarge  string
	FinalDestination string
	Incoterm         string // see Incoterms
}

// Invoice is the header of an export invoice (proforma or commercial).
//
// TotalAmount is a cache of the last aggregation over the items; the items'
// quantity and rate are the source of truth and the total is recomputed
// through the pricing engine whenever the invoice is read or rendered.
type Invoice struct {
	ID           string
	CompanyID    string
	BuyerID      string
	Kind         string // PROFORMA | COMMERCIAL
	Number       string // e.g. "PI-2026-001"
	Date         time.Time
	ValidityDays int
	Currency     string // ISO code, e.g. "USD"
	Logistics    Logistics
	PaymentTerms string // free text, rendered line by line
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InvoiceItem is one goods row as entered by the operator. Amount is derived
// (quantity × rate) and recomputed on read; Excluded marks a soft void row
// (quantity <= 0) kept for audit but left off rendered documents.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Position    int // 1-based row order on the document
	ProductName string
	Description string // finish, e.g. "Polished"
	Size        string // label, e.g. "60 x 60 x 3 cm"
	Unit        string // label, e.g. "sq.m"; never unit-converted
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
	Excluded    bool
}
