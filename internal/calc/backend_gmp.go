//go:build gmp

// The gmp backend needs libgmp and cgo; build with -tags=gmp.
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp

package calc

import (
	"context"
	"fmt"

	"github.com/ncw/gmp"

	"github.com/agbru/widecalc/internal/wideint"
)

func init() {
	_ = RegisterBackend("gmp", func() Backend { return GMPBackend{} })
}

// GMPBackend evaluates operations with libgmp through github.com/ncw/gmp.
type GMPBackend struct{}

// Name returns "gmp".
func (GMPBackend) Name() string { return "gmp" }

// Apply computes a op b with GMP. Division truncates toward zero.
func (GMPBackend) Apply(_ context.Context, op Op, a, b wideint.Int) (wideint.Int, error) {
	if err := checkSize(op, a, b); err != nil {
		return wideint.Int{}, err
	}
	x, y := toGMP(a), toGMP(b)
	z := gmp.NewInt(0)
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
	return wideint.Parse(z.String())
}

func toGMP(x wideint.Int) *gmp.Int {
	z, _ := gmp.NewInt(0).SetString(x.String(), 10)
	return z
}
