package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/infrastructure/pdf"
)

func sampleCompany() *entity.Company {
	return &entity.Company{
		Name:        "Ruvello Global LLP",
		Tagline:     "EXQUISITE NATURAL STONES & SURFACES",
		Address:     "Jaipur, Rajasthan, India",
		GSTIN:       "08AATFR0000A1Z5",
		ExporterRef: "EX/RV/2026",
		Bank: entity.BankDetails{
			BankName:      "HDFC Bank",
			AccountName:   "Ruvello Global LLP",
			AccountNumber: "50200012345678",
			SwiftCode:     "HDFCINBB",
			IFSC:          "HDFC0000123",
		},
	}
}

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:       "inv-1",
		Kind:     "PROFORMA",
		Number:   "PI-2026-001",
		Date:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Currency: "USD",
		Logistics: entity.Logistics{
			PortOfLoading:   "Mundra",
			PortOfDischarge: "Jebel Ali",
			Incoterm:        "CIF",
		},
		PaymentTerms: "50% advance\n50% against BL copy",
		TotalAmount:  decimal.RequireFromString("14000.00"),
	}
}

func sampleItems() []*entity.InvoiceItem {
	return []*entity.InvoiceItem{{
		Position:    1,
		ProductName: "Black Galaxy",
		Description: "Polished",
		Size:        "60 x 60 x 2 cm",
		Unit:        "sq.m",
		Quantity:    decimal.RequireFromString("400"),
		Rate:        decimal.RequireFromString("35"),
		Amount:      decimal.RequireFromString("14000.00"),
	}}
}

func TestGenerateInvoicePDF_ProducesDocument(t *testing.T) {
	g := pdf.NewInvoiceGenerator()
	buyer := &entity.Buyer{Name: "Gulf Stones LLC", Address: "Dubai", Country: "UAE"}

	data, err := g.GenerateInvoicePDF(context.Background(), sampleInvoice(), sampleCompany(), buyer, sampleItems())

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

// TestGenerateInvoicePDF_NilBuyer: a consignee deleted after the invoice
// was created must render as a placeholder, never crash the download.
func TestGenerateInvoicePDF_NilBuyer(t *testing.T) {
	g := pdf.NewInvoiceGenerator()

	data, err := g.GenerateInvoicePDF(context.Background(), sampleInvoice(), sampleCompany(), nil, sampleItems())

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
