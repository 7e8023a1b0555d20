package wideint

import (
	"fmt"
	"strings"
)

// String renders x in decimal with a leading '-' for negative values and no
// leading zeros. Zero renders as "0".
func (x Int) String() string {
	c := x.cells()
	n := significantLen(c)
	var b strings.Builder
	b.Grow(n + 1)
	if x.Sign() == Negative {
		b.WriteByte('-')
	}
	for i := n - 1; i >= 0; i-- {
		b.WriteByte(byte('0' + c[i]))
	}
	return b.String()
}

// Parse reads a decimal integer with an optional leading '+' or '-'.
// Leading zeros are accepted; "-0" parses as zero.
//
// Returns ErrSyntax for empty input, a lone sign, or any non-digit character.
func Parse(s string) (Int, error) {
	body, sign := s, Positive
	if body != "" && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = Negative
		}
		body = body[1:]
	}
	if body == "" {
		return Int{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	cells := make([]int64, len(body))
	for i := 0; i < len(body); i++ {
		ch := body[len(body)-1-i]
		if ch < '0' || ch > '9' {
			return Int{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		cells[i] = int64(ch - '0')
	}
	d, sg := normalize(cells, sign)
	return Int{digits: d, sign: sg}, nil
}

// MustParse is like Parse but panics on malformed input. It is intended for
// constants in tests and initialization code.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}
