package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruvello/export-api/internal/domain/measure"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseAllowance is the one deliberately lenient parser in the measurement
// engine: whatever the operator types into the allowance box, document
// generation must not be blocked; the worst case is a zero trim.
// ──────────────────────────────────────────────────────────────────────────────

func TestParseAllowance_TwoNumbers(t *testing.T) {
	spec := measure.ParseAllowance("-5 x 4")

	assert.True(t, spec.HeightTrim.Equal(dec(t, "5")),
		"first number is the height trim (H x L label convention)")
	assert.True(t, spec.LengthTrim.Equal(dec(t, "4")),
		"second number is the length trim")
}

func TestParseAllowance_SingleNumberAppliesToBoth(t *testing.T) {
	spec := measure.ParseAllowance("3")

	assert.True(t, spec.HeightTrim.Equal(dec(t, "3")))
	assert.True(t, spec.LengthTrim.Equal(dec(t, "3")))
}

func TestParseAllowance_EmptyDefaultsToZero(t *testing.T) {
	spec := measure.ParseAllowance("")

	assert.True(t, spec.HeightTrim.IsZero())
	assert.True(t, spec.LengthTrim.IsZero())
}

func TestParseAllowance_GarbageDefaultsToZero(t *testing.T) {
	spec := measure.ParseAllowance("no trim please")

	assert.True(t, spec.HeightTrim.IsZero(),
		"unparseable allowance must degrade to zero, not fail")
	assert.True(t, spec.LengthTrim.IsZero())
}

func TestParseAllowance_SignIsIgnored(t *testing.T) {
	// Only digit runs are read, so a negative trim is not representable.
	spec := measure.ParseAllowance("-7")

	assert.True(t, spec.HeightTrim.Equal(dec(t, "7")))
	assert.True(t, spec.LengthTrim.Equal(dec(t, "7")))
}

func TestParseAllowance_ExtraNumbersIgnored(t *testing.T) {
	spec := measure.ParseAllowance("5 x 4 (was 3 last season)")

	assert.True(t, spec.HeightTrim.Equal(dec(t, "5")))
	assert.True(t, spec.LengthTrim.Equal(dec(t, "4")),
		"only the first two digit runs are read")
}

func TestParseAllowance_DigitsEmbeddedInText(t *testing.T) {
	spec := measure.ParseAllowance("trim5cm by4cm")

	assert.True(t, spec.HeightTrim.Equal(dec(t, "5")))
	assert.True(t, spec.LengthTrim.Equal(dec(t, "4")))
}
