package measure_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruvello/export-api/internal/domain"
	"github.com/ruvello/export-api/internal/domain/measure"
)

// dec parses a decimal literal or fails the test.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func decs(t *testing.T, ss ...string) []decimal.Decimal {
	t.Helper()
	out := make([]decimal.Decimal, 0, len(ss))
	for _, s := range ss {
		out = append(out, dec(t, s))
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildSlabRecords: the packing-list arithmetic. The end-to-end vector below
// is the reference case for the whole engine: two slabs, allowance "-5 x 4"
// (height trim 5, length trim 4), centimeter readings converted to m².
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildSlabRecords_ReferenceVector(t *testing.T) {
	allowance := measure.ParseAllowance("-5 x 4")

	records, err := measure.BuildSlabRecords(
		decs(t, "280", "290"),
		decs(t, "180", "190"),
		allowance,
	)
	require.NoError(t, err)
	require.Len(t, records, 2)

	r1, r2 := records[0], records[1]
	assert.Equal(t, 1, r1.SequenceID)
	assert.Equal(t, 2, r2.SequenceID)

	assert.True(t, r1.NetLength.Equal(dec(t, "276")), "280 - 4 length trim")
	assert.True(t, r1.NetHeight.Equal(dec(t, "175")), "180 - 5 height trim")
	assert.True(t, r1.NetArea.Equal(dec(t, "4.83")), "276*175/10000 rounded to 3 decimals")

	assert.True(t, r2.NetLength.Equal(dec(t, "286")))
	assert.True(t, r2.NetHeight.Equal(dec(t, "185")))
	assert.True(t, r2.NetArea.Equal(dec(t, "5.291")))

	assert.True(t, measure.TotalNetArea(records).Equal(dec(t, "10.121")),
		"total net area is the sum of the rounded per-slab areas")
}

func TestBuildSlabRecords_OrderAndSequenceIDs(t *testing.T) {
	lengths := decs(t, "100", "200", "300", "50")
	heights := decs(t, "60", "70", "80", "90")

	records, err := measure.BuildSlabRecords(lengths, heights, measure.AllowanceSpec{})
	require.NoError(t, err)
	require.Len(t, records, len(lengths), "one record per reading pair")

	for i, r := range records {
		assert.Equal(t, i+1, r.SequenceID, "sequence IDs are 1..N in input order")
		assert.True(t, r.GrossLength.Equal(lengths[i]), "output order must match input order")
		assert.True(t, r.GrossHeight.Equal(heights[i]))
	}
}

func TestBuildSlabRecords_Idempotent(t *testing.T) {
	allowance := measure.ParseAllowance("2 x 3")
	lengths := decs(t, "123.5", "240")
	heights := decs(t, "77", "61.2")

	first, err1 := measure.BuildSlabRecords(lengths, heights, allowance)
	second, err2 := measure.BuildSlabRecords(lengths, heights, allowance)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second, "pure function: identical inputs, identical output")
}

func TestBuildSlabRecords_NetAreaBoundedByGrossArea(t *testing.T) {
	allowance := measure.AllowanceSpec{HeightTrim: dec(t, "5"), LengthTrim: dec(t, "4")}

	records, err := measure.BuildSlabRecords(
		decs(t, "280", "35", "600.25"),
		decs(t, "180", "22", "190.5"),
		allowance,
	)
	require.NoError(t, err)

	for _, r := range records {
		assert.True(t, r.NetArea.GreaterThanOrEqual(decimal.Zero),
			"slab %d: net area must not be negative when trims fit", r.SequenceID)
		assert.True(t, r.NetArea.LessThanOrEqual(r.GrossArea),
			"slab %d: net area must not exceed gross area", r.SequenceID)
	}
}

func TestBuildSlabRecords_TrimExceedingGrossIsNotClamped(t *testing.T) {
	allowance := measure.AllowanceSpec{HeightTrim: dec(t, "50"), LengthTrim: dec(t, "50")}

	records, err := measure.BuildSlabRecords(decs(t, "40"), decs(t, "30"), allowance)
	require.NoError(t, err)

	// A trim larger than the slab is a caller input error; the negative net
	// dimension stays visible instead of being silently zeroed.
	assert.True(t, records[0].NetLength.IsNegative())
	assert.True(t, records[0].NetHeight.IsNegative())
}

func TestBuildSlabRecords_MismatchedCountsRejected(t *testing.T) {
	records, err := measure.BuildSlabRecords(
		decs(t, "280", "290", "300"),
		decs(t, "180", "190"),
		measure.AllowanceSpec{},
	)

	require.Error(t, err)
	assert.Nil(t, records, "no partial result on mismatch")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Msg, "3")
	assert.Contains(t, verr.Msg, "2", "the error must name both counts")
}

func TestBuildSlabRecords_NegativeReadingRejected(t *testing.T) {
	_, err := measure.BuildSlabRecords(
		decs(t, "280", "-290"),
		decs(t, "180", "190"),
		measure.AllowanceSpec{},
	)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "lengths", verr.Field)
	assert.Equal(t, 1, verr.Row)
}

func TestBuildSlabRecords_EmptyInputIsValid(t *testing.T) {
	records, err := measure.BuildSlabRecords(nil, nil, measure.AllowanceSpec{})

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.True(t, measure.TotalNetArea(records).IsZero())
	assert.True(t, measure.TotalGrossArea(records).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseReadings: the strict tokenizer for pasted measurement blocks.
// ──────────────────────────────────────────────────────────────────────────────

func TestParseReadings_WhitespaceAndCommaSeparated(t *testing.T) {
	readings, err := measure.ParseReadings("lengths", "280 290\n300,310.5\t 12;7")

	require.NoError(t, err)
	require.Len(t, readings, 6)
	assert.True(t, readings[3].Equal(dec(t, "310.5")))
	assert.True(t, readings[5].Equal(dec(t, "7")))
}

func TestParseReadings_BadTokenFailsWholeBatch(t *testing.T) {
	readings, err := measure.ParseReadings("heights", "180 oops 190")

	require.Error(t, err)
	assert.Nil(t, readings, "a bad token must not yield a partial batch")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "heights", verr.Field)
	assert.Equal(t, 1, verr.Row)
	assert.Contains(t, verr.Msg, `"oops"`, "the offending token is named")
}

func TestParseReadings_NegativeTokenRejected(t *testing.T) {
	_, err := measure.ParseReadings("lengths", "280 -290")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, verr.Row)
}

func TestParseReadings_EmptyBlock(t *testing.T) {
	readings, err := measure.ParseReadings("lengths", "  \n\t ")

	require.NoError(t, err)
	assert.Empty(t, readings)
}
