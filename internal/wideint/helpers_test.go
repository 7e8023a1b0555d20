package wideint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// toBig converts x to a math/big value used as the reference oracle.
func toBig(t testing.TB, x Int) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		t.Fatalf("String() produced unparsable output %q", x.String())
	}
	return b
}

// fromBig converts a math/big value to an Int.
func fromBig(t testing.TB, b *big.Int) Int {
	t.Helper()
	x, err := Parse(b.String())
	if err != nil {
		t.Fatalf("Parse(%q): %v", b.String(), err)
	}
	return x
}

// mustMul is Mul that fails the test on error.
func mustMul(t testing.TB, x, y Int) Int {
	t.Helper()
	p, err := x.Mul(y)
	if err != nil {
		t.Fatalf("%s * %s: %v", x, y, err)
	}
	return p
}

// genInt generates signed values whose digit count is bounded by the
// property parameters' MaxSize.
func genInt() gopter.Gen {
	return gopter.CombineGens(
		gen.SliceOf(gen.IntRange(0, 9)),
		gen.Bool(),
	).Map(func(v []interface{}) Int {
		digits := v[0].([]int)
		cells := make([]int64, len(digits))
		for i, d := range digits {
			cells[i] = int64(d)
		}
		sign := Positive
		if v[1].(bool) {
			sign = Negative
		}
		return FromDigits(cells, sign)
	})
}

// propertyParams returns the parameters shared by the property tests.
func propertyParams(maxDigits int) *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.MaxSize = maxDigits
	return parameters
}
