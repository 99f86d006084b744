package pricing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruvello/export-api/internal/domain"
	"github.com/ruvello/export-api/internal/domain/pricing"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func item(name, qty, rate string) pricing.LineItemInput {
	return pricing.LineItemInput{
		ProductName: name,
		Description: "Polished",
		Size:        "60 x 60 x 3 cm",
		Unit:        "sq.m",
		Quantity:    qty,
		Rate:        rate,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AggregateInvoice: amounts and totals
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateInvoice_Empty(t *testing.T) {
	agg, err := pricing.AggregateInvoice(nil)

	require.NoError(t, err, "an empty product list is valid, not an error")
	assert.Empty(t, agg.Items)
	assert.True(t, agg.TotalAmount.IsZero())
}

func TestAggregateInvoice_ZeroQuantityRowIsVoided(t *testing.T) {
	agg, err := pricing.AggregateInvoice([]pricing.LineItemInput{
		item("Black Galaxy Granite", "400", "35.00"),
		item("Absolute Black Granite", "0", "38.5"),
	})
	require.NoError(t, err)
	require.Len(t, agg.Items, 2, "voided rows stay in the sequence for audit")

	assert.False(t, agg.Items[0].Excluded)
	assert.True(t, agg.Items[0].Amount.Equal(dec(t, "14000.00")))

	assert.True(t, agg.Items[1].Excluded, "quantity 0 marks a void row")
	assert.True(t, agg.TotalAmount.Equal(dec(t, "14000.00")),
		"void rows contribute nothing to the total")
}

func TestAggregateInvoice_NegativeQuantityIsVoidNotError(t *testing.T) {
	agg, err := pricing.AggregateInvoice([]pricing.LineItemInput{
		item("Tan Brown Granite", "-3", "29.00"),
	})

	require.NoError(t, err)
	assert.True(t, agg.Items[0].Excluded)
	assert.True(t, agg.TotalAmount.IsZero())
}

func TestAggregateInvoice_SumThenRoundOnce(t *testing.T) {
	// Three rows whose exact amounts are 33.333, 33.333 and 33.334. Rounding
	// per row first would give 99.99; summing in full precision and rounding
	// once must give 100.00.
	agg, err := pricing.AggregateInvoice([]pricing.LineItemInput{
		item("A", "33.333", "1"),
		item("B", "33.333", "1"),
		item("C", "33.334", "1"),
	})

	require.NoError(t, err)
	assert.True(t, agg.TotalAmount.Equal(dec(t, "100.00")),
		"total is rounded once after summation, got %s", agg.TotalAmount)
	assert.True(t, agg.Items[0].Amount.Equal(dec(t, "33.33")),
		"per-row amounts still round to 2 decimals for display")
}

func TestAggregateInvoice_NumericLikeTextAccepted(t *testing.T) {
	agg, err := pricing.AggregateInvoice([]pricing.LineItemInput{
		item("Black Galaxy Granite", "12.5", "35.00"),
	})

	require.NoError(t, err)
	assert.True(t, agg.Items[0].Quantity.Equal(dec(t, "12.5")))
	assert.True(t, agg.Items[0].Rate.Equal(dec(t, "35")))
	assert.True(t, agg.TotalAmount.Equal(dec(t, "437.50")))
}

func TestAggregateInvoice_Deterministic(t *testing.T) {
	in := []pricing.LineItemInput{
		item("Black Galaxy Granite", "400", "35.00"),
		item("Tan Brown Granite", "120", "29.00"),
	}

	first, err1 := pricing.AggregateInvoice(in)
	second, err2 := pricing.AggregateInvoice(in)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fail-loud validation: the aggregator never substitutes zero for a number
// it cannot read.
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateInvoice_BadQuantityNamesFieldAndRow(t *testing.T) {
	_, err := pricing.AggregateInvoice([]pricing.LineItemInput{
		item("Black Galaxy Granite", "400", "35.00"),
		item("Absolute Black Granite", "lots", "38.50"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "quantity", verr.Field)
	assert.Equal(t, 1, verr.Row)
	assert.Contains(t, verr.Msg, `"lots"`)
}

func TestAggregateInvoice_BadRateNamesFieldAndRow(t *testing.T) {
	_, err := pricing.AggregateInvoice([]pricing.LineItemInput{
		item("Black Galaxy Granite", "400", "$35"),
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "rate", verr.Field)
	assert.Equal(t, 0, verr.Row)
}

func TestAggregateInvoice_EmptyQuantityRejected(t *testing.T) {
	_, err := pricing.AggregateInvoice([]pricing.LineItemInput{
		item("Black Galaxy Granite", "", "35.00"),
	})

	require.Error(t, err, "blank numeric input must not silently become zero")
}

func TestAggregateInvoice_NegativeRateRejected(t *testing.T) {
	_, err := pricing.AggregateInvoice([]pricing.LineItemInput{
		item("Black Galaxy Granite", "400", "-35.00"),
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "rate", verr.Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// IncludedItems: render filter
// ──────────────────────────────────────────────────────────────────────────────

func TestIncludedItems_DropsVoidRowsInOrder(t *testing.T) {
	agg, err := pricing.AggregateInvoice([]pricing.LineItemInput{
		item("A", "10", "1"),
		item("B", "0", "2"),
		item("C", "5", "3"),
	})
	require.NoError(t, err)

	included := pricing.IncludedItems(agg.Items)
	require.Len(t, included, 2)
	assert.Equal(t, "A", included[0].ProductName)
	assert.Equal(t, "C", included[1].ProductName)
}
