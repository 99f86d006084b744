// Package measure converts raw paired slab readings (gross length/height in
// centimeters) into net dimensions and areas under a configurable trim
// allowance. Pure computation: no I/O, no shared state, safe for concurrent
// callers.
//
// The two parsing paths have intentionally different contracts: measurement
// batches are tokenized strictly (a single bad token rejects the whole
// batch), while the allowance field is parsed leniently and degrades to
// zero trim. Packing lists must never be built from partially parsed data;
// a sloppy allowance only means "no trim".
package measure

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/ruvello/export-api/internal/domain"
)

// squareCmPerSquareM converts cm² to m².
var squareCmPerSquareM = decimal.NewFromInt(10000)

// SlabRecord is one measured slab with derived net dimensions and areas.
// SequenceID is 1-based in input order; it is printed on the packing list
// as the slab label, so ordering is a correctness requirement.
//
// NetLength/NetHeight may be negative when the trim exceeds the gross
// dimension. That is a caller input error and is surfaced as-is rather
// than clamped, so the mistake is visible on the rendered document.
type SlabRecord struct {
	SequenceID  int
	GrossLength decimal.Decimal
	GrossHeight decimal.Decimal
	NetLength   decimal.Decimal
	NetHeight   decimal.Decimal
	GrossArea   decimal.Decimal // m², 3 decimals
	NetArea     decimal.Decimal // m², 3 decimals
}

// ParseReadings tokenizes a pasted measurement block (whitespace, comma or
// semicolon separated numbers). Every token must parse as a non-negative
// number; the first offending token fails the whole batch with a
// ValidationError naming the field, the token position and the token
// itself. Nothing is skipped or coerced to zero.
func ParseReadings(field, text string) ([]decimal.Decimal, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	out := make([]decimal.Decimal, 0, len(tokens))
	for i, tok := range tokens {
		n, err := decimal.NewFromString(tok)
		if err != nil {
			return nil, domain.NewRowValidationError(field, i, fmt.Sprintf("%q is not a number", tok))
		}
		if n.IsNegative() {
			return nil, domain.NewRowValidationError(field, i, fmt.Sprintf("%q is negative", tok))
		}
		out = append(out, n)
	}
	return out, nil
}

// BuildSlabRecords pairs the Nth length with the Nth height and derives one
// SlabRecord per pair under the given allowance. Output ordering is exactly
// input ordering.
//
// Preconditions, checked before any record is produced:
//   - len(lengths) == len(heights), otherwise a ValidationError naming both
//     counts and no partial result;
//   - every reading is non-negative.
func BuildSlabRecords(lengths, heights []decimal.Decimal, allowance AllowanceSpec) ([]SlabRecord, error) {
	if len(lengths) != len(heights) {
		return nil, domain.NewValidationError("measurements",
			fmt.Sprintf("%d lengths do not pair with %d heights", len(lengths), len(heights)))
	}
	for i, l := range lengths {
		if l.IsNegative() {
			return nil, domain.NewRowValidationError("lengths", i, "negative reading")
		}
		if heights[i].IsNegative() {
			return nil, domain.NewRowValidationError("heights", i, "negative reading")
		}
	}

	records := make([]SlabRecord, 0, len(lengths))
	for i := range lengths {
		gl, gh := lengths[i], heights[i]
		nl := gl.Sub(allowance.LengthTrim)
		nh := gh.Sub(allowance.HeightTrim)
		records = append(records, SlabRecord{
			SequenceID:  i + 1,
			GrossLength: gl,
			GrossHeight: gh,
			NetLength:   nl,
			NetHeight:   nh,
			GrossArea:   areaM2(gl, gh),
			NetArea:     areaM2(nl, nh),
		})
	}
	return records, nil
}

// areaM2 converts a cm × cm product to m² rounded to 3 decimals
// (round half away from zero).
func areaM2(length, height decimal.Decimal) decimal.Decimal {
	return length.Mul(height).Div(squareCmPerSquareM).Round(3)
}

// TotalNetArea sums the rounded net areas of all records.
func TotalNetArea(records []SlabRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.NetArea)
	}
	return total
}

// TotalGrossArea sums the rounded gross areas of all records.
func TotalGrossArea(records []SlabRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.GrossArea)
	}
	return total
}
