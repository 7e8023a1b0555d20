package calc

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/agbru/widecalc/internal/wideint"
)

// BigBackend evaluates operations with math/big. Division truncates toward
// zero (Quo and Rem) so that quotients and remainders match the engine.
type BigBackend struct{}

// Name returns "big".
func (BigBackend) Name() string { return "big" }

// Apply computes a op b with math/big.
func (BigBackend) Apply(_ context.Context, op Op, a, b wideint.Int) (wideint.Int, error) {
	// Size checks precede the decimal conversion.
	if err := checkSize(op, a, b); err != nil {
		return wideint.Int{}, err
	}
	x, y := toBig(a), toBig(b)
	z := new(big.Int)
	switch op {
	case OpAdd:
		z.Add(x, y)
	case OpSub:
		z.Sub(x, y)
	case OpMul:
		z.Mul(x, y)
	case OpDiv, OpMod:
		if y.Sign() == 0 {
			return wideint.Int{}, wideint.ErrDivisionByZero
		}
		if op == OpDiv {
			z.Quo(x, y)
		} else {
			z.Rem(x, y)
		}
	case OpPow:
		z.Exp(x, y, nil)
	case OpCmp:
		z.SetInt64(int64(x.Cmp(y)))
	default:
		return wideint.Int{}, fmt.Errorf("unsupported operation %s", op)
	}
	return fromBig(z)
}

// checkSize applies the engine's size limits to the operations that have
// them, so every backend rejects the same requests.
func checkSize(op Op, a, b wideint.Int) error {
	switch op {
	case OpMul:
		return checkMul(a, b)
	case OpPow:
		return checkPow(a, b)
	}
	return nil
}

// checkMul rejects products the engine rejects: operands whose padded
// cell arrays overflow a transform of wideint.MaxTransformLength.
func checkMul(a, b wideint.Int) error {
	if !wideint.ProductFits(a.Len(), b.Len()) {
		return fmt.Errorf("%w: %d-digit by %d-digit product", wideint.ErrOperandTooLarge, a.Len(), b.Len())
	}
	return nil
}

// checkPow rejects exponents the engine rejects: negative ones, and ones for
// which any multiplication of the engine's binary exponentiation would
// overflow the transform. Bases 0, 1 and -1 are accepted with any exponent.
func checkPow(base, exp wideint.Int) error {
	if exp.Sign() == wideint.Negative {
		return fmt.Errorf("%w: %s", wideint.ErrNegativeExponent, exp)
	}
	if base.Len() == 1 && base.Digits()[0] <= 1 {
		return nil
	}
	e, ok := exp.Int64()
	if !ok {
		return fmt.Errorf("%w: %d-digit base to the power %s", wideint.ErrOperandTooLarge, base.Len(), exp)
	}
	sz := newPowSizer(base)
	// base^resK is the running result and base^sqK the running square.
	resK, sqK := int64(0), int64(1)
	for e > 0 {
		if e&1 == 1 {
			if !sz.fits(resK, sqK) {
				return fmt.Errorf("%w: %d-digit base to the power %s", wideint.ErrOperandTooLarge, base.Len(), exp)
			}
			resK += sqK
		}
		e >>= 1
		if e > 0 {
			if !sz.fits(sqK, sqK) {
				return fmt.Errorf("%w: %d-digit base to the power %s", wideint.ErrOperandTooLarge, base.Len(), exp)
			}
			sqK *= 2
		}
	}
	return nil
}

// powSizer bounds the digit count of powers of a base with |base| >= 2.
type powSizer struct {
	base   wideint.Int
	lo, hi float64 // bracket log10(|base|)
}

func newPowSizer(base wideint.Int) powSizer {
	d := base.Digits()
	lead := 0.0
	for i := len(d) - 1; i >= 0 && i >= len(d)-15; i-- {
		lead = lead*10 + float64(d[i])
	}
	shift := float64(len(d) - min(len(d), 15))
	lo := math.Log10(lead) + shift
	hi := lo
	if len(d) > 15 {
		hi = math.Log10(lead+1) + shift
	}
	return powSizer{base: base, lo: lo, hi: hi}
}

// digits returns bounds on the digit count of base^k. Counts past the
// transform limit are clamped, since they never fit.
func (p powSizer) digits(k int64) (lo, hi int) {
	switch k {
	case 0:
		return 1, 1
	case 1:
		return p.base.Len(), p.base.Len()
	}
	const eps = 1e-6
	clamp := func(v float64) int {
		if v >= wideint.MaxTransformLength {
			return wideint.MaxTransformLength + 1
		}
		return int(math.Floor(v)) + 1
	}
	return clamp(float64(k)*p.lo - eps), clamp(float64(k)*p.hi + eps)
}

// fits reports whether the engine can multiply base^i by base^j. The exact
// power is computed only when the bounds straddle the limit.
func (p powSizer) fits(i, j int64) bool {
	iLo, iHi := p.digits(i)
	jLo, jHi := p.digits(j)
	if wideint.ProductFits(iHi, jHi) {
		return true
	}
	if !wideint.ProductFits(iLo, jLo) {
		return false
	}
	return wideint.ProductFits(p.exactDigits(i), p.exactDigits(j))
}

func (p powSizer) exactDigits(k int64) int {
	z := new(big.Int).Exp(toBig(p.base), big.NewInt(k), nil)
	return len(z.Abs(z).Text(10))
}

func toBig(x wideint.Int) *big.Int {
	z, _ := new(big.Int).SetString(x.String(), 10)
	return z
}

func fromBig(z *big.Int) (wideint.Int, error) {
	return wideint.Parse(z.String())
}
