// Package pdf renders the printable export documents: the proforma or
// commercial invoice and the slab packing list, both on the company
// letterhead (gold on black).
//
// Invoice page layout (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name + tagline  │  Document title + number │
//	│  ─────────────────────────────────────────────────────────  │
//	│  META: Date / Validity / Exporter ref / Incoterm            │
//	│  CONSIGNEE: Buyer + country  │  LOGISTICS: ports, routing   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Sr | Description | Size | Qty | Unit | Rate | Amount│
//	│  TOTAL (currency)                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAYMENT TERMS + BANK DETAILS                               │
//	│  DECLARATION + SIGNATURE                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ruvello/export-api/internal/application/billing"
	"github.com/ruvello/export-api/internal/domain/entity"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorGold  = &props.Color{Red: 212, Green: 175, Blue: 55}
	colorBlack = &props.Color{Red: 10, Green: 10, Blue: 10}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ billing.InvoicePDFGenerator = (*InvoiceGenerator)(nil)

// InvoiceGenerator implements billing.InvoicePDFGenerator with Maroto v2.
type InvoiceGenerator struct{}

// NewInvoiceGenerator builds the generator.
func NewInvoiceGenerator() *InvoiceGenerator { return &InvoiceGenerator{} }

// GenerateInvoicePDF renders the invoice and returns its bytes. Voided rows
// (Excluded) are left off the goods table.
func (g *InvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	company *entity.Company,
	buyer *entity.Buyer,
	items []*entity.InvoiceItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(documentTitle(invoice.Kind), true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.8}))
	m.AddRows(metaRow(invoice, company))
	m.AddRows(partiesRow(invoice, buyer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.3}))

	m.AddRows(goodsHeaderRow())
	for _, r := range goodsRows(invoice, items) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))

	m.AddRows(line.NewRow(2))
	m.AddRows(termsAndBankRows(invoice, company)...)
	m.AddRows(line.NewRow(2))
	m.AddRows(declarationRows(company)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate invoice: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: company name + tagline (left), document title + number (right).
func headerRow(invoice *entity.Invoice, company *entity.Company) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(strings.ToUpper(company.Name), props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorBlack, Top: 1,
			}),
			text.New(company.Tagline, props.Text{
				Size: 8, Top: 9, Color: colorGold,
			}),
			text.New(gstLine(company), props.Text{
				Size: 7.5, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(documentTitle(invoice.Kind), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorGold, Top: 1,
			}),
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
			text.New("Date: "+invoice.Date.Format("02 Jan 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

// metaRow: validity, exporter reference and trade term under the header.
func metaRow(invoice *entity.Invoice, company *entity.Company) core.Row {
	validity := fmt.Sprintf("Valid for %d days", invoice.ValidityDays)
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Exporter's Ref: %s   |   %s   |   Terms: %s   |   Currency: %s",
				nonEmpty(company.ExporterRef, "—"),
				validity,
				nonEmpty(invoice.Logistics.Incoterm, "—"),
				invoice.Currency,
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// partiesRow: consignee block (left) and shipment routing (right).
func partiesRow(invoice *entity.Invoice, buyer *entity.Buyer) core.Row {
	lg := invoice.Logistics
	buyerName, buyerAddress, buyerCountry := "—", "—", "—"
	if buyer != nil {
		buyerName = nonEmpty(buyer.Name, "—")
		buyerAddress = nonEmpty(buyer.Address, "—")
		buyerCountry = nonEmpty(buyer.Country, "—")
	}
	return row.New(26).Add(
		col.New(6).Add(
			text.New("CONSIGNEE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGold, Top: 1,
			}),
			text.New(buyerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(buyerAddress, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
			text.New(buyerCountry, props.Text{
				Size: 8, Top: 17, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("SHIPMENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGold, Top: 1,
			}),
			text.New(fmt.Sprintf("Pre-carriage: %s   Receipt: %s",
				nonEmpty(lg.PreCarriage, "—"), nonEmpty(lg.PlaceOfReceipt, "—"),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(fmt.Sprintf("Port of Loading: %s", nonEmpty(lg.PortOfLoading, "—")),
				props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New(fmt.Sprintf("Port of Discharge: %s", nonEmpty(lg.PortOfDischarge, "—")),
				props.Text{Size: 8, Top: 16, Color: colorGray}),
			text.New(fmt.Sprintf("Final Destination: %s", nonEmpty(lg.FinalDestination, "—")),
				props.Text{Size: 8, Top: 21, Color: colorGray}),
		),
	)
}

// goodsHeaderRow: goods table header.
func goodsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGold, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Sr", 1, align.Center),
		h("Description of Goods", 4, align.Left),
		h("Size", 2, align.Left),
		h("Qty", 1, align.Right),
		h("Unit", 1, align.Center),
		h("Rate", 1, align.Right),
		h("Amount", 2, align.Right),
	)
}

// goodsRows: one row per included item, in document order.
func goodsRows(invoice *entity.Invoice, items []*entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	sr := 0
	for _, it := range items {
		if it.Excluded {
			continue
		}
		sr++
		desc := it.ProductName
		if it.Description != "" {
			desc += " — " + it.Description
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", sr),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				desc,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(it.Size, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				nonEmpty(it.Unit, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				formatMoney(it.Rate.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(it.Amount.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: grand total, right aligned, in the document currency.
func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(3).Add(text.New(
			fmt.Sprintf("TOTAL (%s):", invoice.Currency),
			props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorBlack, Top: 2, Right: 2},
		)),
		col.New(2).Add(text.New(
			formatMoney(invoice.TotalAmount.StringFixed(2)),
			props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorGold, Top: 2, Right: 1},
		)),
	)
}

// termsAndBankRows: payment terms (left) and banking instructions (right).
func termsAndBankRows(invoice *entity.Invoice, company *entity.Company) []core.Row {
	bank := company.Bank
	termLines := strings.Split(nonEmpty(invoice.PaymentTerms, "—"), "\n")

	left := []core.Component{
		text.New("PAYMENT TERMS", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGold, Top: 1,
		}),
	}
	top := 6.0
	for _, l := range termLines {
		left = append(left, text.New(l, props.Text{Size: 8, Top: top, Color: colorGray}))
		top += 4.5
	}

	right := []core.Component{
		text.New("BANK DETAILS", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGold, Top: 1,
		}),
		text.New("Bank: "+nonEmpty(bank.BankName, "—"), props.Text{Size: 8, Top: 6, Color: colorGray}),
		text.New("A/C Name: "+nonEmpty(bank.AccountName, "—"), props.Text{Size: 8, Top: 10.5, Color: colorGray}),
		text.New("A/C No: "+nonEmpty(bank.AccountNumber, "—"), props.Text{Size: 8, Top: 15, Color: colorGray}),
		text.New(fmt.Sprintf("SWIFT: %s   IFSC: %s",
			nonEmpty(bank.SwiftCode, "—"), nonEmpty(bank.IFSC, "—"),
		), props.Text{Size: 8, Top: 19.5, Color: colorGray}),
	}

	height := 26.0
	if h := 8 + float64(len(termLines))*4.5; h > height {
		height = h
	}
	return []core.Row{
		row.New(height).Add(col.New(6).Add(left...), col.New(6).Add(right...)),
	}
}

// declarationRows: declaration text + signature block.
func declarationRows(company *entity.Company) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("We declare that this invoice shows the actual price of the goods "+
				"described and that all particulars are true and correct.",
				props.Text{Size: 7, Color: colorGray, Top: 2}),
		)),
		row.New(16).Add(
			col.New(7),
			col.New(5).Add(
				text.New("For "+strings.ToUpper(company.Name), props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
				}),
				text.New("Authorised Signatory", props.Text{
					Size: 8, Align: align.Right, Top: 12, Color: colorGray,
				}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func documentTitle(kind string) string {
	if kind == entity.KindCommercial {
		return "COMMERCIAL INVOICE"
	}
	return "PROFORMA INVOICE"
}

func gstLine(company *entity.Company) string {
	parts := []string{"GSTIN: " + company.GSTIN}
	if company.LLPIN != "" {
		parts = append(parts, "LLPIN: "+company.LLPIN)
	}
	if company.Address != "" {
		parts = append(parts, company.Address)
	}
	return strings.Join(parts, "   |   ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserts thousands separators into the integer part of a
// fixed-point string. E.g. "25000.00" → "25,000.00".
func formatMoney(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	n := len(intPart)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i := 0; i < n; i++ {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, intPart[i])
		}
		intPart = string(buf)
	}
	if neg {
		intPart = "-" + intPart
	}
	return intPart + frac
}
