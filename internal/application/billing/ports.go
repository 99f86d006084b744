package billing

import (
	"context"

	"github.com/ruvello/export-api/internal/domain/entity"
	"github.com/ruvello/export-api/internal/domain/repository"
)

// TxRunner executes a function inside a transaction scoped to invoice
// persistence, so an invoice header and its items are written atomically.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator renders the styled export invoice. Implemented in
// infrastructure (Maroto); items arrive already recomputed and include
// voided rows; the renderer drops them.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		company *entity.Company,
		buyer *entity.Buyer,
		items []*entity.InvoiceItem,
	) ([]byte, error)
}

// InvoiceWorkbookExporter renders the invoice as a spreadsheet workbook.
type InvoiceWorkbookExporter interface {
	ExportInvoiceWorkbook(
		ctx context.Context,
		invoice *entity.Invoice,
		company *entity.Company,
		buyer *entity.Buyer,
		items []*entity.InvoiceItem,
	) ([]byte, error)
}
