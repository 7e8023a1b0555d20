package wideint

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// cellValue evaluates little-endian signed cells as an int64.
func cellValue(cells []int64, sign Sign) int64 {
	var v, scale int64 = 0, 1
	for _, c := range cells {
		v += c * scale
		scale *= 10
	}
	return sign.factor() * v
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		cells      []int64
		sign       Sign
		wantDigits []int64
		wantSign   Sign
	}{
		{"zero", []int64{0}, Positive, []int64{0}, Positive},
		{"empty", nil, Positive, []int64{0}, Positive},
		{"negative zero", []int64{0, 0}, Negative, []int64{0}, Positive},
		{"canonical", []int64{3, 2, 1, 0}, Positive, []int64{3, 2, 1, 0}, Positive},
		{"simple carry", []int64{10, 9, 9, 0}, Positive, []int64{0, 0, 0, 1}, Positive},
		{"carry grows array", []int64{0, 0, 0, 12}, Positive, []int64{0, 0, 0, 2, 1, 0, 0, 0}, Positive},
		{"large convolution cell", []int64{81, 162, 81}, Positive, []int64{1, 0, 8, 9}, Positive},
		{"borrow", []int64{-1, 0, 0, 1}, Positive, []int64{9, 9, 9, 0}, Positive},
		{"negative result", []int64{-5, 0}, Positive, []int64{5}, Negative},
		{"negative multi-digit", []int64{-2, -1}, Positive, []int64{2, 1}, Negative},
		{"mixed cells negative", []int64{8, -2}, Positive, []int64{2, 1}, Negative},
		{"negation flips given sign", []int64{-7}, Negative, []int64{7}, Positive},
		{"trims padding", []int64{4, 0, 0, 0, 0, 0, 0, 0}, Positive, []int64{4}, Positive},
		{"pads to power of two", []int64{1, 2, 3}, Positive, []int64{1, 2, 3, 0}, Positive},
		{"negative carry", []int64{-25, 0}, Positive, []int64{5, 2}, Negative},
		{"borrow then carry at top", []int64{0, -10}, Positive, []int64{0, 0, 1, 0}, Negative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gotDigits, gotSign := normalize(tt.cells, tt.sign)
			if !slices.Equal(gotDigits, tt.wantDigits) || gotSign != tt.wantSign {
				t.Errorf("normalize(%v, %v) = (%v, %v), want (%v, %v)",
					tt.cells, tt.sign, gotDigits, gotSign, tt.wantDigits, tt.wantSign)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := []int64{-1, 14, -3, 0}
	before := slices.Clone(in)
	normalize(in, Positive)
	if !slices.Equal(in, before) {
		t.Errorf("normalize mutated its input: got %v, want %v", in, before)
	}
}

// TestNormalize_PropertyBased checks that normalization preserves the value of
// arbitrary signed cells, produces canonical digits, and is idempotent.
func TestNormalize_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParams(12))
	cellsGen := gen.SliceOf(gen.Int64Range(-500, 500))

	properties.Property("value is preserved", prop.ForAll(
		func(cells []int64, neg bool) bool {
			sign := Positive
			if neg {
				sign = Negative
			}
			digits, s := normalize(cells, sign)
			return cellValue(digits, s) == cellValue(cells, sign)
		},
		cellsGen, gen.Bool(),
	))

	properties.Property("output is canonical", prop.ForAll(
		func(cells []int64) bool {
			digits, s := normalize(cells, Positive)
			if !IsPowerOfTwo(len(digits)) || nextPow2(significantLen(digits)) != len(digits) {
				return false
			}
			for _, d := range digits {
				if d < 0 || d > 9 {
					return false
				}
			}
			return !(isZeroCells(digits) && s == Negative)
		},
		cellsGen,
	))

	properties.Property("normalizing twice changes nothing", prop.ForAll(
		func(cells []int64, neg bool) bool {
			sign := Positive
			if neg {
				sign = Negative
			}
			once, s1 := normalize(cells, sign)
			twice, s2 := normalize(once, s1)
			return slices.Equal(once, twice) && s1 == s2
		},
		cellsGen, gen.Bool(),
	))

	properties.TestingRun(t)
}
