package wideint

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// naiveConvolve is the O(n²) schoolbook reference for Convolve.
func naiveConvolve(x, y []int64) []int64 {
	out := make([]int64, len(x)+len(y))
	for i, a := range x {
		for j, b := range y {
			out[i+j] += a * b
		}
	}
	return out
}

// sameCoefficients compares two coefficient arrays, ignoring trailing zeros.
func sameCoefficients(a, b []int64) bool {
	trim := func(c []int64) []int64 {
		for len(c) > 0 && c[len(c)-1] == 0 {
			c = c[:len(c)-1]
		}
		return c
	}
	return slices.Equal(trim(a), trim(b))
}

func randomDigits(r *rand.Rand, n int) []int64 {
	d := make([]int64, n)
	for i := range d {
		d[i] = r.Int64N(10)
	}
	return d
}

func TestConvolveMatchesNaive(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(1, 2))
	for _, size := range []int{1, 2, 3, 7, 16, 31, 100, 257, 1000, 4096} {
		x := randomDigits(r, size)
		y := randomDigits(r, size/2+1)
		got, err := Convolve(x, y)
		if err != nil {
			t.Fatalf("Convolve(%d, %d digits): %v", len(x), len(y), err)
		}
		if !IsPowerOfTwo(len(got)) || len(got) < len(x)+len(y)+1 {
			t.Errorf("Convolve length = %d, want power of two >= %d", len(got), len(x)+len(y)+1)
		}
		if want := naiveConvolve(x, y); !sameCoefficients(got, want) {
			t.Errorf("Convolve mismatch for %d x %d digits", len(x), len(y))
		}
	}
}

// TestConvolveAllNines drives every coefficient to its maximum, which is the
// worst case for rounding.
func TestConvolveAllNines(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("Skipping large transform in short mode")
	}
	for _, size := range []int{1024, 1 << 15, 1 << 18} {
		x := make([]int64, size)
		for i := range x {
			x[i] = 9
		}
		got, err := convolve(x, x, true)
		if err != nil {
			t.Fatalf("convolve(%d nines): %v", size, err)
		}
		// Coefficient k of the square is 81 * (number of pairs summing to k).
		for k := 0; k < 2*size-1; k++ {
			pairs := int64(min(k, 2*size-2-k) + 1)
			if got[k] != 81*pairs {
				t.Fatalf("size %d: coefficient %d = %d, want %d", size, k, got[k], 81*pairs)
			}
		}
	}
}

func TestConvolveSquareMatchesGeneral(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(3, 4))
	x := randomDigits(r, 333)
	sq, err := convolve(x, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	general, err := Convolve(x, slices.Clone(x))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(sq, general) {
		t.Error("squaring shortcut differs from general convolution")
	}
}

func TestConvolveRejectsOversizedOperands(t *testing.T) {
	t.Parallel()
	x := make([]int64, MaxTransformLength/2)
	if _, err := Convolve(x, x); !errors.Is(err, ErrOperandTooLarge) {
		t.Errorf("Convolve error = %v, want ErrOperandTooLarge", err)
	}
}

func TestTransformRejectsInvalidLength(t *testing.T) {
	t.Parallel()
	s, err := acquireScratch(8)
	if err != nil {
		t.Fatal(err)
	}
	defer s.release()

	for _, n := range []int{3, 6, 4, 16} {
		if err := transform(s, make([]complex128, n), false); !errors.Is(err, ErrInvalidTransformLength) {
			t.Errorf("transform(len %d) error = %v, want ErrInvalidTransformLength", n, err)
		}
	}
	if _, err := acquireScratch(12); !errors.Is(err, ErrInvalidTransformLength) {
		t.Errorf("acquireScratch(12) error = %v, want ErrInvalidTransformLength", err)
	}
	if err := evaluate(s, make([]int64, 9), s.x); !errors.Is(err, ErrInvalidTransformLength) {
		t.Errorf("evaluate with 9 digits into 8 cells error = %v, want ErrInvalidTransformLength", err)
	}
}

func TestEvaluateInterpolateRoundTrip(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(5, 6))
	for _, n := range []int{1, 2, 4, 64, 1024} {
		s, err := acquireScratch(n)
		if err != nil {
			t.Fatal(err)
		}
		digits := randomDigits(r, n)
		if err := evaluate(s, digits, s.x); err != nil {
			t.Fatal(err)
		}
		back, err := interpolate(s, s.x)
		s.release()
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(back, digits) {
			t.Errorf("round trip of %d digits changed the values", n)
		}
	}
}

func TestBitReverse(t *testing.T) {
	t.Parallel()
	p := make([]complex128, 8)
	for i := range p {
		p[i] = complex(float64(i), 0)
	}
	bitReverse(p)
	want := []float64{0, 4, 2, 6, 1, 5, 3, 7}
	for i, w := range want {
		if real(p[i]) != w {
			t.Fatalf("bitReverse order = %v, want %v", p, want)
		}
	}
}

// TestConvolve_PropertyBased compares the transform against the schoolbook
// convolution for random digit arrays.
func TestConvolve_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParams(300))
	digits := gen.SliceOf(gen.Int64Range(0, 9))

	properties.Property("FFT convolution equals naive convolution", prop.ForAll(
		func(x, y []int64) bool {
			got, err := Convolve(x, y)
			if err != nil {
				return false
			}
			return sameCoefficients(got, naiveConvolve(x, y))
		},
		digits, digits,
	))

	properties.TestingRun(t)
}
