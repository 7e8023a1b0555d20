package wideint

import (
	"fmt"
	"math/bits"
)

// maxPowerOfTwo is the largest power of two representable as an int.
const maxPowerOfTwo = 1 << (bits.UintSize - 2)

// NextPowerOfTwo returns the smallest power of two greater than or equal to n.
//
// The rounding smears the highest set bit of n-1 into every lower position
// and adds one, so it runs in constant time without a loop.
//
// Parameters:
//   - n: The size to round. Must be in [1, 2^(UintSize-2)].
//
// Returns:
//   - int: The rounded size.
//   - error: ErrInvalidSize if n is outside the supported range.
func NextPowerOfTwo(n int) (int, error) {
	if n < 1 || n > maxPowerOfTwo {
		return 0, fmt.Errorf("%w: cannot round %d to a power of two", ErrInvalidSize, n)
	}
	return nextPow2(n), nil
}

// nextPow2 is NextPowerOfTwo for callers that already guarantee n >= 1.
func nextPow2(n int) int {
	v := uint64(n - 1)
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return int(v + 1)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
