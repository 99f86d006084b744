package entity

import "time"

// Buyer is a consignee of the exporting company. Country matters: it is the
// destination country printed on the consignee block of the invoice.
type Buyer struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	Country   string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
