package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/ruvello/export-api/internal/application/measurement"
	"github.com/ruvello/export-api/internal/domain/entity"
)

var _ measurement.PackingListPDFGenerator = (*PackingListGenerator)(nil)

// PackingListGenerator implements measurement.PackingListPDFGenerator with
// Maroto v2. One row per slab: gross and net dimensions in cm, areas in m².
type PackingListGenerator struct{}

// NewPackingListGenerator builds the generator.
func NewPackingListGenerator() *PackingListGenerator { return &PackingListGenerator{} }

// GeneratePackingListPDF renders the slab list of a sheet. Buyer may be nil
// when the sheet is not yet assigned to a consignee.
func (g *PackingListGenerator) GeneratePackingListPDF(
	_ context.Context,
	sheet *entity.MeasurementSheet,
	company *entity.Company,
	buyer *entity.Buyer,
	slabs []*entity.MeasurementSlab,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Packing List", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(packingHeaderRow(sheet, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.8}))
	m.AddRows(packingMetaRow(sheet, buyer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.3}))

	m.AddRows(slabHeaderRow())
	for _, r := range slabRows(slabs) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGold, Thickness: 0.3}))
	m.AddRows(slabTotalsRow(sheet, len(slabs)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate packing list: %w", err)
	}
	return doc.GetBytes(), nil
}

// packingHeaderRow: company letterhead (left), document title (right).
func packingHeaderRow(sheet *entity.MeasurementSheet, company *entity.Company) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorBlack, Top: 1,
			}),
			text.New(company.Tagline, props.Text{
				Size: 8, Top: 9, Color: colorGold,
			}),
		),
		col.New(5).Add(
			text.New("PACKING LIST", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorGold, Top: 1,
			}),
			text.New("Date: "+sheet.CreatedAt.Format("02 Jan 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// packingMetaRow: description, related invoice, consignee and the trim
// allowance as typed by the operator.
func packingMetaRow(sheet *entity.MeasurementSheet, buyer *entity.Buyer) core.Row {
	buyerName := "—"
	if buyer != nil {
		buyerName = buyer.Name
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Material: %s   |   Invoice Ref: %s   |   Consignee: %s",
				nonEmpty(sheet.Description, "—"),
				nonEmpty(sheet.InvoiceNumber, "—"),
				buyerName,
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
			text.New(fmt.Sprintf("Cutting allowance: %s  (height −%s cm, length −%s cm per slab)",
				nonEmpty(sheet.AllowanceText, "none"),
				sheet.HeightTrim.String(), sheet.LengthTrim.String(),
			), props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
	)
}

// slabHeaderRow: slab table header.
func slabHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGold, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("No", 1, align.Center),
		h("Gross L (cm)", 2, align.Right),
		h("Gross H (cm)", 2, align.Right),
		h("Net L (cm)", 2, align.Right),
		h("Net H (cm)", 2, align.Right),
		h("Gross m²", 1, align.Right),
		h("Net m²", 2, align.Right),
	)
}

// slabRows: one row per slab, in measuring order.
func slabRows(slabs []*entity.MeasurementSlab) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(slabs))
	for _, sl := range slabs {
		result = append(result, row.New(6).Add(
			cell(strconv.Itoa(sl.Position), 1, align.Center),
			cell(sl.GrossLength.String(), 2, align.Right),
			cell(sl.GrossHeight.String(), 2, align.Right),
			cell(sl.NetLength.String(), 2, align.Right),
			cell(sl.NetHeight.String(), 2, align.Right),
			cell(sl.GrossArea.StringFixed(3), 1, align.Right),
			cell(sl.NetArea.StringFixed(3), 2, align.Right),
		))
	}
	return result
}

// slabTotalsRow: slab count and area totals.
func slabTotalsRow(sheet *entity.MeasurementSheet, count int) core.Row {
	return row.New(10).Add(
		col.New(5).Add(text.New(
			fmt.Sprintf("Total slabs: %d", count),
			props.Text{Style: fontstyle.Bold, Size: 9, Top: 2},
		)),
		col.New(4).Add(text.New(
			"Total Gross: "+sheet.TotalGrossArea.StringFixed(3)+" m²",
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 2},
		)),
		col.New(3).Add(text.New(
			"Total Net: "+sheet.TotalNetArea.StringFixed(3)+" m²",
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorGold, Top: 2, Right: 1},
		)),
	)
}
