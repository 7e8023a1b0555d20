package wideint

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
)

const (
	// MaxTransformLength bounds the transform length used by multiplication.
	// Within this bound every convolution coefficient of base-10 digits is
	// recovered exactly by rounding a float64.
	MaxTransformLength = 1 << 22

	// RoundingTolerance is the largest accepted distance between an inverse
	// transform coefficient and the integer it rounds to.
	RoundingTolerance = 0.25
)

// evaluate lifts digits into dst as complex values with a zero imaginary part
// and applies the forward transform with w = e^{+2πi/n}. Cells of dst beyond
// len(digits) are zero padding.
func evaluate(s *butterflyScratch, digits []int64, dst []complex128) error {
	if len(digits) > len(dst) {
		return fmt.Errorf("%w: %d digits do not fit a transform of length %d",
			ErrInvalidTransformLength, len(digits), len(dst))
	}
	for i := range dst {
		if i < len(digits) {
			dst[i] = complex(float64(digits[i]), 0)
		} else {
			dst[i] = 0
		}
	}
	return transform(s, dst, false)
}

// interpolate applies the inverse transform with w = e^{-2πi/n} to values in
// place, divides by n and rounds every real part to the nearest integer.
//
// The returned cells are raw convolution coefficients: they may exceed 9 and
// still need carry normalization.
func interpolate(s *butterflyScratch, values []complex128) ([]int64, error) {
	if err := transform(s, values, true); err != nil {
		return nil, err
	}
	n := float64(len(values))
	out := make([]int64, len(values))
	worst := 0.0
	for i, v := range values {
		c := real(v) / n
		r := math.Round(c)
		if d := math.Abs(c - r); d > worst {
			worst = d
		}
		out[i] = int64(r)
	}
	if worst >= RoundingTolerance {
		return nil, fmt.Errorf("%w: coefficient off by %.3f at length %d", ErrPrecisionLoss, worst, len(values))
	}
	return out, nil
}

// transform runs an iterative radix-2 decimation-in-time FFT over p in place.
// p must have exactly the length the scratch was prepared for.
func transform(s *butterflyScratch, p []complex128, inverse bool) error {
	n := len(p)
	if !IsPowerOfTwo(n) || n != s.n {
		return fmt.Errorf("%w: got %d, scratch prepared for %d", ErrInvalidTransformLength, n, s.n)
	}
	bitReverse(p)
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		stride := n / size
		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				w := s.roots[j*stride]
				if inverse {
					w = cmplx.Conj(w)
				}
				u := p[start+j]
				t := w * p[start+j+half]
				p[start+j] = u + t
				p[start+j+half] = u - t
			}
		}
	}
	return nil
}

// bitReverse permutes p so that p[i] moves to the index whose binary digits
// are those of i reversed over log2(len(p)) bits.
func bitReverse(p []complex128) {
	n := len(p)
	if n <= 2 {
		return
	}
	shift := 64 - uint(bits.TrailingZeros(uint(n)))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if i < j {
			p[i], p[j] = p[j], p[i]
		}
	}
}

// Convolve returns the raw convolution of two little-endian digit sequences,
// computed through the transform. Both sequences are padded to the power of
// two NextPowerOfTwo(len(x)+len(y)+1), so the result has that length.
//
// Parameters:
//   - x, y: Digit sequences. Cells are usually in [0, 9].
//
// Returns:
//   - []int64: The un-normalized product coefficients.
//   - error: ErrOperandTooLarge or ErrPrecisionLoss when the product cannot be
//     computed exactly.
func Convolve(x, y []int64) ([]int64, error) {
	return convolve(x, y, false)
}

// convolve is Convolve with a squaring shortcut: when square is true, y is
// ignored and only one forward transform runs.
func convolve(x, y []int64, square bool) ([]int64, error) {
	if square {
		y = x
	}
	need := len(x) + len(y) + 1
	if need > MaxTransformLength {
		return nil, fmt.Errorf("%w: product of %d and %d cells", ErrOperandTooLarge, len(x), len(y))
	}
	s, err := acquireScratch(nextPow2(need))
	if err != nil {
		return nil, err
	}
	defer s.release()

	if err := evaluate(s, x, s.x); err != nil {
		return nil, err
	}
	if square {
		for i, v := range s.x {
			s.x[i] = v * v
		}
	} else {
		if err := evaluate(s, y, s.y); err != nil {
			return nil, err
		}
		for i := range s.x {
			s.x[i] *= s.y[i]
		}
	}
	return interpolate(s, s.x)
}
