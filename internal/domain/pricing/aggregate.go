// Package pricing aggregates invoice line items (quantity × rate) into
// per-line amounts and a document total. Pure computation over caller
// inputs; amounts are never trusted from storage but recomputed here on
// every aggregation.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ruvello/export-api/internal/domain"
)

// LineItemInput is one product row as entered. Quantity and Rate arrive as
// numeric-like text ("400", "35.00"); a token that does not parse fails the
// aggregation with a ValidationError naming the field and row. Unparseable
// numbers are never substituted with zero.
type LineItemInput struct {
	ProductName string
	Description string
	Size        string
	Unit        string
	Quantity    string
	Rate        string
}

// LineItem is a computed row. Excluded rows (quantity <= 0) stay in the
// sequence for auditability but contribute nothing to the total and are
// left off rendered documents; a zero quantity acts as a soft void marker.
type LineItem struct {
	ProductName string
	Description string
	Size        string
	Unit        string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal // quantity × rate, 2 decimals
	Excluded    bool
}

// InvoiceAggregate is the result of one aggregation pass.
type InvoiceAggregate struct {
	Items       []LineItem
	TotalAmount decimal.Decimal // 2 decimals
}

// AggregateInvoice computes per-line amounts and the document total.
//
// Rounding: each Amount is quantity × rate rounded to 2 decimals, half away
// from zero (equivalent to round-half-up for the non-negative values
// admitted here). TotalAmount sums the unrounded products of included rows
// and rounds once at the end, so three thirds of 100 total 100.00 and not
// 99.99.
//
// An empty input is valid and yields an empty aggregate with total 0.
func AggregateInvoice(items []LineItemInput) (InvoiceAggregate, error) {
	agg := InvoiceAggregate{
		Items:       make([]LineItem, 0, len(items)),
		TotalAmount: decimal.Zero,
	}
	sum := decimal.Zero
	for i, in := range items {
		qty, err := parseAmountField("quantity", i, in.Quantity)
		if err != nil {
			return InvoiceAggregate{}, err
		}
		rate, err := parseAmountField("rate", i, in.Rate)
		if err != nil {
			return InvoiceAggregate{}, err
		}
		if rate.IsNegative() {
			return InvoiceAggregate{}, domain.NewRowValidationError("rate", i, "must not be negative")
		}

		exact := qty.Mul(rate)
		item := LineItem{
			ProductName: in.ProductName,
			Description: in.Description,
			Size:        in.Size,
			Unit:        in.Unit,
			Quantity:    qty,
			Rate:        rate,
			Amount:      exact.Round(2),
			Excluded:    !qty.IsPositive(),
		}
		if !item.Excluded {
			sum = sum.Add(exact)
		}
		agg.Items = append(agg.Items, item)
	}
	agg.TotalAmount = sum.Round(2)
	return agg, nil
}

// parseAmountField parses a numeric-like token. Empty text is rejected like
// any other non-numeric value: the caller typed nothing where a number was
// required.
func parseAmountField(field string, row int, raw string) (decimal.Decimal, error) {
	n, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, domain.NewRowValidationError(field, row, fmt.Sprintf("%q is not a number", raw))
	}
	return n, nil
}

// IncludedItems filters out excluded rows, in order. Renderers use this to
// drop void rows from the goods table.
func IncludedItems(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if !it.Excluded {
			out = append(out, it)
		}
	}
	return out
}
