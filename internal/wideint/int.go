package wideint

import "math"

// Sign is the sign of an Int.
type Sign int8

const (
	// Positive is the sign of zero and of every value greater than zero.
	Positive Sign = iota
	// Negative is the sign of values less than zero.
	Negative
)

// String returns "+" or "-".
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

func (s Sign) flip() Sign {
	if s == Negative {
		return Positive
	}
	return Negative
}

// xor returns Negative when exactly one of s and t is Negative.
func (s Sign) xor(t Sign) Sign {
	if s == t {
		return Positive
	}
	return Negative
}

// factor returns 1 for Positive and -1 for Negative.
func (s Sign) factor() int64 {
	if s == Negative {
		return -1
	}
	return 1
}

// Int is an immutable arbitrary-precision signed integer.
//
// digits holds base-10 cells, least significant first, always in [0, 9] and
// padded with zero cells to a power-of-two length. The zero value is 0.
type Int struct {
	digits []int64
	sign   Sign
}

// zeroCells backs the zero value. It is never written to.
var zeroCells = []int64{0}

// New returns the Int equal to x.
func New(x int64) Int {
	sign := Positive
	mag := uint64(x)
	if x < 0 {
		sign = Negative
		mag = uint64(-(x + 1)) + 1 // avoids overflow for math.MinInt64
	}
	cells := make([]int64, 0, 20)
	for mag > 0 {
		cells = append(cells, int64(mag%10))
		mag /= 10
	}
	d, s := normalize(cells, sign)
	return Int{digits: d, sign: s}
}

// Zero returns 0.
func Zero() Int { return Int{} }

// One returns 1.
func One() Int { return New(1) }

// FromDigits builds an Int from little-endian base-10 digits and a sign.
// Cells outside [0, 9] are accepted and carried. The slice is copied.
func FromDigits(digits []int64, sign Sign) Int {
	d, s := normalize(digits, sign)
	return Int{digits: d, sign: s}
}

// cells returns the canonical digit cells, treating the zero value as [0].
func (x Int) cells() []int64 {
	if len(x.digits) == 0 {
		return zeroCells
	}
	return x.digits
}

// Sign returns the sign of x. Zero is Positive.
func (x Int) Sign() Sign {
	if x.IsZero() {
		return Positive
	}
	return x.sign
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return isZeroCells(x.digits)
}

// Len returns the number of significant decimal digits of |x|. Zero has one digit.
func (x Int) Len() int {
	return significantLen(x.cells())
}

// Digits returns a copy of the significant digits of |x|, least significant first.
func (x Int) Digits() []int64 {
	c := x.cells()
	out := make([]int64, significantLen(c))
	copy(out, c)
	return out
}

// Int64 returns x as an int64 and reports whether it fits.
func (x Int) Int64() (int64, bool) {
	c := x.cells()
	n := significantLen(c)
	if n > 19 {
		return 0, false
	}
	var mag uint64
	for i := n - 1; i >= 0; i-- {
		mag = mag*10 + uint64(c[i])
	}
	if x.Sign() == Negative {
		if mag > uint64(math.MaxInt64)+1 {
			return 0, false
		}
		return -int64(mag - 1) - 1, true
	}
	if mag > math.MaxInt64 {
		return 0, false
	}
	return int64(mag), true
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.IsZero() {
		return Int{}
	}
	return Int{digits: x.digits, sign: x.sign.flip()}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{digits: x.digits, sign: Positive}
}

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and +1 if x > y.
//
// Values of different signs are decided by the sign alone. Otherwise the
// magnitudes are compared from the most significant cell down, over the
// smallest power-of-two length covering both, and the first differing digit
// decides; for negative values the direction is inverted.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs == Negative {
			return -1
		}
		return 1
	}
	c := cmpMagnitude(x.cells(), y.cells())
	if xs == Negative {
		return -c
	}
	return c
}

// cmpMagnitude compares two canonical digit arrays as unsigned values.
func cmpMagnitude(a, b []int64) int {
	n := nextPow2(max(len(a), len(b)))
	for i := n - 1; i >= 0; i-- {
		da, db := cellAt(a, i), cellAt(b, i)
		if da < db {
			return -1
		}
		if da > db {
			return 1
		}
	}
	return 0
}

// cellAt returns cells[i], or zero past the end of the array.
func cellAt(cells []int64, i int) int64 {
	if i < len(cells) {
		return cells[i]
	}
	return 0
}

// Less reports whether x < y.
func (x Int) Less(y Int) bool { return x.Cmp(y) < 0 }

// Greater reports whether x > y.
func (x Int) Greater(y Int) bool { return x.Cmp(y) > 0 }

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// LessOrEqual reports whether x <= y.
func (x Int) LessOrEqual(y Int) bool { return x.Cmp(y) <= 0 }

// GreaterOrEqual reports whether x >= y.
func (x Int) GreaterOrEqual(y Int) bool { return x.Cmp(y) >= 0 }
