package measure

import "github.com/shopspring/decimal"

// AllowanceSpec is the trim subtracted from raw slab dimensions to obtain
// the sellable (net) dimensions. Immutable once parsed.
type AllowanceSpec struct {
	HeightTrim decimal.Decimal
	LengthTrim decimal.Decimal
}

// ParseAllowance reads an allowance out of free text, e.g. "-5 x 4".
//
// Deliberately lenient: it scans maximal runs of decimal digits left to
// right, ignoring sign and any other characters, so only non-negative
// magnitudes are representable. The first number is the height trim and
// the second the length trim (matching the "H x L" form label); a single
// number applies to both dimensions; no number at all means zero trim.
// Never fails: a badly typed allowance degrades to zero, while badly
// typed measurement data is rejected loudly by ParseReadings.
func ParseAllowance(text string) AllowanceSpec {
	var runs []decimal.Decimal
	start := -1
	for i := 0; i <= len(text); i++ {
		digit := i < len(text) && text[i] >= '0' && text[i] <= '9'
		if digit {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if n, err := decimal.NewFromString(text[start:i]); err == nil {
				runs = append(runs, n)
			}
			start = -1
			if len(runs) == 2 {
				break
			}
		}
	}
	switch len(runs) {
	case 0:
		return AllowanceSpec{}
	case 1:
		return AllowanceSpec{HeightTrim: runs[0], LengthTrim: runs[0]}
	default:
		return AllowanceSpec{HeightTrim: runs[0], LengthTrim: runs[1]}
	}
}
