package billing

import (
	"context"
	"fmt"

	"github.com/ruvello/export-api/internal/domain"
)

// DocumentUseCase renders an invoice into its downloadable forms (styled
// PDF, spreadsheet workbook). Amounts are recomputed before rendering; a
// validation failure blocks the download instead of producing a zero-filled
// document.
type DocumentUseCase struct {
	invoices *InvoiceUseCase
	pdf      InvoicePDFGenerator
	workbook InvoiceWorkbookExporter
}

// NewDocumentUseCase wires the use case.
func NewDocumentUseCase(
	invoices *InvoiceUseCase,
	pdf InvoicePDFGenerator,
	workbook InvoiceWorkbookExporter,
) *DocumentUseCase {
	return &DocumentUseCase{invoices: invoices, pdf: pdf, workbook: workbook}
}

// DownloadInvoicePDF loads the invoice with ownership checks, recomputes
// amounts and renders the export PDF.
//
// Returns (pdfBytes, filename, nil) on success; domain.ErrNotFound /
// domain.ErrForbidden propagate from loading.
func (uc *DocumentUseCase) DownloadInvoicePDF(ctx context.Context, companyID, invoiceID string) ([]byte, string, error) {
	inv, items, buyer, err := uc.invoices.load(ctx, companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.invoices.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, "", fmt.Errorf("pdf: load company: %w", orNotFound(err))
	}

	b, err := uc.pdf.GenerateInvoicePDF(ctx, inv, company, buyer, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render failed: %w", err)
	}
	return b, documentFilename(inv.Kind, inv.Number, "pdf"), nil
}

// DownloadInvoiceWorkbook renders the invoice as an XLSX workbook.
func (uc *DocumentUseCase) DownloadInvoiceWorkbook(ctx context.Context, companyID, invoiceID string) ([]byte, string, error) {
	inv, items, buyer, err := uc.invoices.load(ctx, companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.invoices.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, "", fmt.Errorf("xlsx: load company: %w", orNotFound(err))
	}

	b, err := uc.workbook.ExportInvoiceWorkbook(ctx, inv, company, buyer, items)
	if err != nil {
		return nil, "", fmt.Errorf("xlsx: render failed: %w", err)
	}
	return b, documentFilename(inv.Kind, inv.Number, "xlsx"), nil
}

// documentFilename builds "PI_<number>.<ext>" / "CI_<number>.<ext>".
func documentFilename(kind, number, ext string) string {
	prefix := "PI"
	if kind == "COMMERCIAL" {
		prefix = "CI"
	}
	return fmt.Sprintf("%s_%s.%s", prefix, number, ext)
}

func orNotFound(err error) error {
	if err != nil {
		return err
	}
	return domain.ErrNotFound
}
