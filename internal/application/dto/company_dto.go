package dto

import "time"

// BankDetailsRequest banking instructions block of the company profile.
type BankDetailsRequest struct {
	BankName      string `json:"bank_name,omitempty" validate:"omitempty,max=200"`
	AccountName   string `json:"account_name,omitempty" validate:"omitempty,max=200"`
	AccountNumber string `json:"account_number,omitempty" validate:"omitempty,max=40"`
	SwiftCode     string `json:"swift_code,omitempty" validate:"omitempty,max=20"`
	IFSC          string `json:"ifsc,omitempty" validate:"omitempty,max=40"`
}

// CreateCompanyRequest input to register an exporting company.
type CreateCompanyRequest struct {
	Name        string             `json:"name" validate:"required,min=1,max=200"`
	Tagline     string             `json:"tagline,omitempty" validate:"omitempty,max=200"`
	GSTIN       string             `json:"gstin" validate:"required,min=1,max=20"`
	LLPIN       string             `json:"llpin,omitempty" validate:"omitempty,max=20"`
	Address     string             `json:"address"`
	Phone       string             `json:"phone"`
	Email       string             `json:"email" validate:"omitempty,email"`
	ExporterRef string             `json:"exporter_ref,omitempty" validate:"omitempty,max=40"`
	Bank        BankDetailsRequest `json:"bank"`
}

// UpdateCompanyRequest input to update a company profile (optional fields).
type UpdateCompanyRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=1,max=200"`
	Tagline     *string             `json:"tagline"`
	Address     *string             `json:"address"`
	Phone       *string             `json:"phone"`
	Email       *string             `json:"email" validate:"omitempty,email"`
	ExporterRef *string             `json:"exporter_ref"`
	Bank        *BankDetailsRequest `json:"bank"`
}

// CompanyResponse company profile in responses.
type CompanyResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Tagline     string             `json:"tagline,omitempty"`
	GSTIN       string             `json:"gstin"`
	LLPIN       string             `json:"llpin,omitempty"`
	Address     string             `json:"address"`
	Phone       string             `json:"phone"`
	Email       string             `json:"email"`
	ExporterRef string             `json:"exporter_ref,omitempty"`
	Bank        BankDetailsRequest `json:"bank"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
