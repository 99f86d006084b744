package dto

import "github.com/shopspring/decimal"

// CreateMeasurementRequest body for POST /api/measurements. Lengths and
// Heights are pasted free-text blocks of whitespace/comma separated
// centimeter readings; Allowance is free text parsed leniently ("5 x 4",
// "3", anything). The Nth length pairs with the Nth height.
type CreateMeasurementRequest struct {
	BuyerID       string `json:"buyer_id,omitempty" validate:"omitempty,uuid"`
	InvoiceNumber string `json:"invoice_number,omitempty" validate:"omitempty,max=40"`
	Description   string `json:"description,omitempty" validate:"omitempty,max=200"`
	Allowance     string `json:"allowance,omitempty"`
	Lengths       string `json:"lengths"`
	Heights       string `json:"heights"`
}

// MeasurementResponse sheet with slabs for GET /api/measurements/:id.
type MeasurementResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	BuyerID        string          `json:"buyer_id,omitempty"`
	InvoiceNumber  string          `json:"invoice_number,omitempty"`
	Description    string          `json:"description,omitempty"`
	AllowanceText  string          `json:"allowance_text,omitempty"`
	HeightTrim     decimal.Decimal `json:"height_trim"`
	LengthTrim     decimal.Decimal `json:"length_trim"`
	TotalGrossArea decimal.Decimal `json:"total_gross_area"`
	TotalNetArea   decimal.Decimal `json:"total_net_area"`
	Slabs          []SlabResponse  `json:"slabs"`
}

// SlabResponse one slab row; position is the packing-list label.
type SlabResponse struct {
	Position    int             `json:"position"`
	GrossLength decimal.Decimal `json:"gross_length"`
	GrossHeight decimal.Decimal `json:"gross_height"`
	NetLength   decimal.Decimal `json:"net_length"`
	NetHeight   decimal.Decimal `json:"net_height"`
	GrossArea   decimal.Decimal `json:"gross_area"`
	NetArea     decimal.Decimal `json:"net_area"`
}

// MeasurementSummaryResponse list row for GET /api/measurements.
type MeasurementSummaryResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Description   string          `json:"description,omitempty"`
	TotalNetArea  decimal.Decimal `json:"total_net_area"`
	CreatedAt     string          `json:"created_at"`
}
