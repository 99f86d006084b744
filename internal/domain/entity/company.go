package entity

import "time"

// Company is the exporting organization (tenant). One company is one stone
// export house; its letterhead and banking block are printed on every
// generated document.
type Company struct {
	ID          string
	Name        string
	Tagline     string // printed under the name, e.g. "EXQUISITE NATURAL STONES & SURFACES"
	Address     string
	GSTIN       string // Indian GST identification number
	LLPIN       string // LLP identification number
	Email       string
	Phone       string
	ExporterRef string // e.g. "EX/RV/2026", printed next to the invoice meta
	Bank        BankDetails
	Status      string // active, suspended, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BankDetails is the banking instructions block of an export invoice.
type BankDetails struct {
	BankName      string
	AccountName   string
	AccountNumber string
	SwiftCode     string
	IFSC          string // IFSC or IBAN, depending on the corridor
}
