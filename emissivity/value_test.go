package emissivity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/emissview/solver"
)

// fakeExpressions is an ExpressionReader backed by a map of named
// expression values.
type fakeExpressions map[string]float64

func (f fakeExpressions) HasNamedExpression(name string) (bool, error) {
	_, ok := f[name]
	return ok, nil
}

func (f fakeExpressions) NamedExpressionValue(name string) (float64, error) {
	x, ok := f[name]
	if !ok {
		return 0, fmt.Errorf("no named expression %q", name)
	}
	return x, nil
}

func TestNormalize(t *testing.T) {
	exprs := fakeExpressions{"emiss-ramp": 0.8547}
	{ // Integers widen exactly
		for _, n := range []int64{0, 1, 7, -2} {
			v, err := Normalize(solver.IntValue(n), exprs)
			assert.NoError(t, err)
			assert.Equal(t, float64(n), v)
		}
	}
	{ // Floats round to 3 decimals
		v, err := Normalize(solver.FloatValue(0.85449), exprs)
		assert.NoError(t, err)
		assert.Equal(t, 0.854, v)
		v, err = Normalize(solver.FloatValue(0.8), exprs)
		assert.NoError(t, err)
		assert.Equal(t, 0.8, v)
	}
	{ // Idempotent on its own output
		v1, err := Normalize(solver.FloatValue(0.123456), exprs)
		assert.NoError(t, err)
		v2, err := Normalize(solver.FloatValue(v1), exprs)
		assert.NoError(t, err)
		assert.Equal(t, v1, v2)
	}
	{ // References resolve through the solver and round
		v, err := Normalize(solver.RefValue("emiss-ramp"), exprs)
		assert.NoError(t, err)
		assert.Equal(t, 0.855, v)
	}
	{ // Unknown reference is an unsupported value naming type and value
		_, err := Normalize(solver.RefValue("no-such-expr"), exprs)
		assert.Error(t, err)
		var uve *UnsupportedValueError
		assert.ErrorAs(t, err, &uve)
		assert.Contains(t, err.Error(), "named expression reference")
		assert.Contains(t, err.Error(), "no-such-expr")
	}
	{ // Absent kind is unsupported too
		_, err := Normalize(solver.RawValue{}, exprs)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported emissivity type")
	}
}
