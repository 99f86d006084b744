package dto

import "github.com/shopspring/decimal"

// CreateBuyerRequest body for POST /api/buyers.
type CreateBuyerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"required"`
	Country string `json:"country" validate:"required,min=2,max=100"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=40"`
}

// BuyerResponse consignee in responses.
type BuyerResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// LogisticsRequest shipment routing block of an invoice.
type LogisticsRequest struct {
	PreCarriage      string `json:"pre_carriage,omitempty"`
	PlaceOfReceipt   string `json:"place_of_receipt,omitempty"`
	PortOfLoading    string `json:"port_of_loading,omitempty"`
	PortOfDischarge  string `json:"port_of_discharge,omitempty"`
	FinalDestination string `json:"final_destination,omitempty"`
	Incoterm         string `json:"incoterm" validate:"required,oneof=CIF FOB EXW DDP CFR"`
}

// CreateInvoiceRequest body for POST /api/invoices.
// Quantity and rate arrive as entered, as numeric-like text. The pricing
// engine validates them; nothing is coerced to zero on the way in.
type CreateInvoiceRequest struct {
	BuyerID      string               `json:"buyer_id" validate:"required,uuid"`
	Kind         string               `json:"kind" validate:"required,oneof=PROFORMA COMMERCIAL"`
	Number       string               `json:"number" validate:"required,min=1,max=40"`
	Date         string               `json:"date,omitempty"` // YYYY-MM-DD; empty = today
	ValidityDays int                  `json:"validity_days,omitempty" validate:"omitempty,min=0,max=365"`
	Currency     string               `json:"currency,omitempty" validate:"omitempty,len=3"`
	Logistics    LogisticsRequest     `json:"logistics"`
	PaymentTerms string               `json:"payment_terms,omitempty"`
	Items        []InvoiceItemRequest `json:"items" validate:"required,min=1"`
}

// InvoiceItemRequest one goods row as typed by the operator.
type InvoiceItemRequest struct {
	ProductName string `json:"product_name" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty"`
	Size        string `json:"size,omitempty"`
	Unit        string `json:"unit,omitempty"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
}

// InvoiceResponse invoice with items for GET /api/invoices/:id.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	CompanyID    string                `json:"company_id"`
	BuyerID      string                `json:"buyer_id"`
	BuyerName    string                `json:"buyer_name,omitempty"`
	Kind         string                `json:"kind"`
	Number       string                `json:"number"`
	Date         string                `json:"date"`
	ValidityDays int                   `json:"validity_days,omitempty"`
	Currency     string                `json:"currency"`
	Logistics    LogisticsRequest      `json:"logistics"`
	PaymentTerms string                `json:"payment_terms,omitempty"`
	TotalAmount  decimal.Decimal       `json:"total_amount"`
	Items        []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse one computed goods row. Voided rows (quantity <= 0)
// appear here with excluded=true but are left off rendered documents.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Position    int             `json:"position"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description,omitempty"`
	Size        string          `json:"size,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Excluded    bool            `json:"excluded,omitempty"`
}

// InvoiceSummaryResponse list row for GET /api/invoices.
type InvoiceSummaryResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Number      string          `json:"number"`
	Date        string          `json:"date"`
	BuyerID     string          `json:"buyer_id"`
	Currency    string          `json:"currency"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
