package excel_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/infrastructure/excel"
)

// TestExportInvoiceWorkbook_NilBuyer: the workbook export survives a
// consignee that was deleted after the invoice was created.
func TestExportInvoiceWorkbook_NilBuyer(t *testing.T) {
	e := excel.NewWorkbookExporter()
	invoice := &entity.Invoice{
		ID:       "inv-1",
		Kind:     "COMMERCIAL",
		Number:   "CI-2026-007",
		Date:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Currency: "USD",
		Logistics: entity.Logistics{
			Incoterm: "FOB",
		},
		TotalAmount: decimal.RequireFromString("14000.00"),
	}
	company := &entity.Company{Name: "Ruvello Global LLP"}
	items := []*entity.InvoiceItem{{
		Position:    1,
		ProductName: "Tan Brown",
		Unit:        "sq.m",
		Quantity:    decimal.RequireFromString("400"),
		Rate:        decimal.RequireFromString("35"),
		Amount:      decimal.RequireFromString("14000.00"),
	}}

	data, err := e.ExportInvoiceWorkbook(context.Background(), invoice, company, nil, items)

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
