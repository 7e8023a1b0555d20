package calc

import (
	"context"
	"fmt"

	"github.com/agbru/widecalc/internal/wideint"
)

// FFTBackend evaluates operations with the wideint engine.
type FFTBackend struct{}

// Name returns "fft".
func (FFTBackend) Name() string { return "fft" }

// Apply computes a op b with wideint. Division and exponentiation stop
// with the context error once ctx is done.
func (FFTBackend) Apply(ctx context.Context, op Op, a, b wideint.Int) (wideint.Int, error) {
	switch op {
	case OpAdd:
		return a.Add(b), nil
	case OpSub:
		return a.Sub(b), nil
	case OpMul:
		return a.Mul(b)
	case OpDiv:
		q, _, err := a.DivModContext(ctx, b)
		return q, err
	case OpMod:
		_, r, err := a.DivModContext(ctx, b)
		return r, err
	case OpPow:
		return a.PowIntContext(ctx, b)
	case OpCmp:
		return wideint.New(int64(a.Cmp(b))), nil
	}
	return wideint.Int{}, fmt.Errorf("unsupported operation %s", op)
}
