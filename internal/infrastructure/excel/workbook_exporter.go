// Package excel renders export documents as XLSX workbooks with excelize,
// for buyers who rework the figures before confirming an order.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ruvello/export-api/internal/application/billing"
	"github.com/ruvello/export-api/internal/application/measurement"
	"github.com/ruvello/export-api/internal/domain/entity"
)

var _ billing.InvoiceWorkbookExporter = (*WorkbookExporter)(nil)
var _ measurement.PackingListWorkbookExporter = (*WorkbookExporter)(nil)

const sheetName = "Sheet1"

// WorkbookExporter implements the workbook ports of billing and measurement.
type WorkbookExporter struct{}

// NewWorkbookExporter builds the exporter.
func NewWorkbookExporter() *WorkbookExporter { return &WorkbookExporter{} }

// ExportInvoiceWorkbook renders the invoice as a workbook: header block,
// goods rows (voided rows skipped) and the total. Quantities, rates and
// amounts are written as numbers so formulas work on the buyer's side.
func (e *WorkbookExporter) ExportInvoiceWorkbook(
	_ context.Context,
	invoice *entity.Invoice,
	company *entity.Company,
	buyer *entity.Buyer,
	items []*entity.InvoiceItem,
) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	set := func(cell string, value any) {
		_ = f.SetCellValue(sheetName, cell, value)
	}

	set("A1", company.Name)
	set("A2", documentTitleXLSX(invoice.Kind))
	set("A3", "Number")
	set("B3", invoice.Number)
	set("A4", "Date")
	set("B4", invoice.Date.Format("2006-01-02"))
	buyerName, buyerCountry := "—", "—"
	if buyer != nil {
		buyerName = buyer.Name
		buyerCountry = buyer.Country
	}
	set("A5", "Consignee")
	set("B5", buyerName)
	set("A6", "Country")
	set("B6", buyerCountry)
	set("A7", "Terms")
	set("B7", invoice.Logistics.Incoterm)
	set("A8", "Currency")
	set("B8", invoice.Currency)

	// Goods table
	headers := []string{"Sr", "Description of Goods", "Size", "Qty", "Unit", "Rate", "Amount"}
	headerRow := 10
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		set(cell, h)
	}
	rowNo := headerRow
	sr := 0
	for _, it := range items {
		if it.Excluded {
			continue
		}
		sr++
		rowNo++
		desc := it.ProductName
		if it.Description != "" {
			desc += " — " + it.Description
		}
		qty, _ := it.Quantity.Float64()
		rate, _ := it.Rate.Float64()
		amount, _ := it.Amount.Float64()
		set(fmt.Sprintf("A%d", rowNo), sr)
		set(fmt.Sprintf("B%d", rowNo), desc)
		set(fmt.Sprintf("C%d", rowNo), it.Size)
		set(fmt.Sprintf("D%d", rowNo), qty)
		set(fmt.Sprintf("E%d", rowNo), it.Unit)
		set(fmt.Sprintf("F%d", rowNo), rate)
		set(fmt.Sprintf("G%d", rowNo), amount)
	}
	rowNo += 2
	total, _ := invoice.TotalAmount.Float64()
	set(fmt.Sprintf("F%d", rowNo), "TOTAL ("+invoice.Currency+")")
	set(fmt.Sprintf("G%d", rowNo), total)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write invoice workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPackingListWorkbook renders a measurement sheet as a workbook: one
// row per slab with gross/net dimensions and areas, then the totals.
func (e *WorkbookExporter) ExportPackingListWorkbook(
	_ context.Context,
	sheet *entity.MeasurementSheet,
	company *entity.Company,
	buyer *entity.Buyer,
	slabs []*entity.MeasurementSlab,
) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	set := func(cell string, value any) {
		_ = f.SetCellValue(sheetName, cell, value)
	}

	set("A1", company.Name)
	set("A2", "PACKING LIST")
	set("A3", "Material")
	set("B3", sheet.Description)
	set("A4", "Invoice Ref")
	set("B4", sheet.InvoiceNumber)
	set("A5", "Consignee")
	if buyer != nil {
		set("B5", buyer.Name)
	}
	set("A6", "Allowance")
	set("B6", sheet.AllowanceText)

	headers := []string{"No", "Gross L (cm)", "Gross H (cm)", "Net L (cm)", "Net H (cm)", "Gross m2", "Net m2"}
	headerRow := 8
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		set(cell, h)
	}
	rowNo := headerRow
	for _, sl := range slabs {
		rowNo++
		grossL, _ := sl.GrossLength.Float64()
		grossH, _ := sl.GrossHeight.Float64()
		netL, _ := sl.NetLength.Float64()
		netH, _ := sl.NetHeight.Float64()
		grossA, _ := sl.GrossArea.Float64()
		netA, _ := sl.NetArea.Float64()
		set(fmt.Sprintf("A%d", rowNo), sl.Position)
		set(fmt.Sprintf("B%d", rowNo), grossL)
		set(fmt.Sprintf("C%d", rowNo), grossH)
		set(fmt.Sprintf("D%d", rowNo), netL)
		set(fmt.Sprintf("E%d", rowNo), netH)
		set(fmt.Sprintf("F%d", rowNo), grossA)
		set(fmt.Sprintf("G%d", rowNo), netA)
	}
	rowNo += 2
	totalGross, _ := sheet.TotalGrossArea.Float64()
	totalNet, _ := sheet.TotalNetArea.Float64()
	set(fmt.Sprintf("A%d", rowNo), "Total slabs")
	set(fmt.Sprintf("B%d", rowNo), len(slabs))
	set(fmt.Sprintf("F%d", rowNo), totalGross)
	set(fmt.Sprintf("G%d", rowNo), totalNet)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write packing list workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func documentTitleXLSX(kind string) string {
	if kind == entity.KindCommercial {
		return "COMMERCIAL INVOICE"
	}
	return "PROFORMA INVOICE"
}
