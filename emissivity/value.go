package emissivity

import (
	"fmt"
	"math"

	"github.com/notargets/emissview/solver"
)

// UnsupportedValueError reports an emissivity setting that cannot be
// normalized: an unknown kind, or a reference to a named expression the
// solver does not know.
type UnsupportedValueError struct {
	Value solver.RawValue
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported emissivity type %s, value %s", e.Value.Kind, e.Value)
}

// Normalize canonicalizes a raw emissivity setting to the float64 used as a
// group key. Integers widen exactly; floats are rounded to 3 decimals so that
// representation noise cannot split a group; references resolve to the named
// expression's current value, rounded the same way.
func Normalize(raw solver.RawValue, exprs solver.ExpressionReader) (float64, error) {
	switch raw.Kind {
	case solver.KindInt:
		return float64(raw.Int), nil
	case solver.KindFloat:
		return round3(raw.Float), nil
	case solver.KindReference:
		ok, err := exprs.HasNamedExpression(raw.Reference)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, &UnsupportedValueError{Value: raw}
		}
		x, err := exprs.NamedExpressionValue(raw.Reference)
		if err != nil {
			return 0, err
		}
		return round3(x), nil
	default:
		return 0, &UnsupportedValueError{Value: raw}
	}
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
