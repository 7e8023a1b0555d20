package wideint

import (
	"context"
	"fmt"
)

// Div returns the quotient x / y truncated toward zero.
//
// Returns ErrDivisionByZero if y is zero.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns x - y*(x/y). The result is zero or has the sign of x.
//
// Returns ErrDivisionByZero if y is zero.
func (x Int) Mod(y Int) (Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// DivMod returns the truncated quotient and the remainder of x / y, such that
// x == y*q + r and |r| < |y|. It is DivModContext without cancellation.
func (x Int) DivMod(y Int) (q, r Int, err error) {
	return x.DivModContext(context.Background(), y)
}

// DivModContext is DivMod with cancellation. The context is checked before
// every doubling and halving step, so a large quotient stops promptly once
// ctx is done.
//
// Parameters:
//   - ctx: Cancels the division.
//   - y: The divisor.
//
// Returns:
//   - q: The quotient, with the XOR of the operand signs. A zero quotient is positive.
//   - r: The remainder x - y*q, zero or with the sign of x.
//   - err: ErrDivisionByZero if y is zero, or the context error.
func (x Int) DivModContext(ctx context.Context, y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	q, r, err = quoMagnitude(ctx, x.Abs(), y.Abs())
	if err != nil {
		return Int{}, Int{}, fmt.Errorf("divide: %w", err)
	}
	if x.Sign().xor(y.Sign()) == Negative {
		q = q.Neg()
	}
	if x.Sign() == Negative {
		r = r.Neg()
	}
	return q, r, nil
}

// quoMagnitude divides two non-negative values by doubling search.
//
// The divisor is doubled to the largest b*2^k not above a, then halved back
// down one step at a time. Each step doubles the quotient and, when the
// current chunk still fits in the remainder, subtracts it and adds one. Both
// doubling and halving are digit-wise, so no step multiplies.
func quoMagnitude(ctx context.Context, a, b Int) (q, rem Int, err error) {
	if a.Less(b) {
		return Int{}, a, nil
	}
	chunk, k := b, 0
	for {
		if err := ctx.Err(); err != nil {
			return Int{}, Int{}, err
		}
		next := chunk.Add(chunk)
		if next.Greater(a) {
			break
		}
		chunk = next
		k++
	}

	rem = a
	for ; k >= 0; k-- {
		if err := ctx.Err(); err != nil {
			return Int{}, Int{}, err
		}
		q = q.Add(q)
		if chunk.LessOrEqual(rem) {
			rem = rem.Sub(chunk)
			q = q.Inc()
		}
		if k > 0 {
			chunk = half(chunk)
		}
	}
	return q, rem, nil
}

// half returns floor(|x| / 2), dividing digit by digit from the top.
func half(x Int) Int {
	c := x.cells()
	out := make([]int64, len(c))
	var carry int64
	for i := len(c) - 1; i >= 0; i-- {
		v := carry*10 + c[i]
		out[i] = v / 2
		carry = v % 2
	}
	d, s := normalize(out, Positive)
	return Int{digits: d, sign: s}
}

// Pow returns x raised to the power e by binary exponentiation.
//
// The result starts at 1; while e > 0 it is multiplied by the current base
// when e is odd, then the base is squared and e halved. x^0 is 1 for every x,
// including 0.
//
// Returns ErrNegativeExponent if e < 0.
func (x Int) Pow(e int64) (Int, error) {
	if e < 0 {
		return Int{}, fmt.Errorf("%w: %d", ErrNegativeExponent, e)
	}
	return x.pow(context.Background(), e)
}

func (x Int) pow(ctx context.Context, e int64) (Int, error) {
	result, base := One(), x
	var err error
	for e > 0 {
		if err := ctx.Err(); err != nil {
			return Int{}, fmt.Errorf("power: %w", err)
		}
		if e&1 == 1 {
			if result, err = result.Mul(base); err != nil {
				return Int{}, fmt.Errorf("power: %w", err)
			}
		}
		e >>= 1
		// The last squaring would be discarded.
		if e > 0 {
			if base, err = base.Mul(base); err != nil {
				return Int{}, fmt.Errorf("power: %w", err)
			}
		}
	}
	return result, nil
}

// PowInt is Pow with an Int exponent. It is PowIntContext without
// cancellation.
func (x Int) PowInt(e Int) (Int, error) {
	return x.PowIntContext(context.Background(), e)
}

// PowIntContext raises x to an Int exponent, checking ctx between
// multiplications. Exponents that fit in an int64 use binary exponentiation
// directly; larger ones are halved digit-wise. Beyond int64 exponents only
// the bases 0, 1 and -1 produce a result the transform can hold.
func (x Int) PowIntContext(ctx context.Context, e Int) (Int, error) {
	if e.Sign() == Negative {
		return Int{}, fmt.Errorf("%w: %s", ErrNegativeExponent, e)
	}
	if small, ok := e.Int64(); ok {
		return x.pow(ctx, small)
	}
	// Bases 0, 1 and -1 never grow, whatever the exponent.
	if x.Len() == 1 && x.Digits()[0] <= 1 {
		if x.Sign() == Negative && e.Digits()[0]%2 == 0 {
			return One(), nil
		}
		return x, nil
	}
	result, base := One(), x
	var err error
	for !e.IsZero() {
		if err := ctx.Err(); err != nil {
			return Int{}, fmt.Errorf("power: %w", err)
		}
		if e.Digits()[0]%2 == 1 {
			if result, err = result.Mul(base); err != nil {
				return Int{}, fmt.Errorf("power: %w", err)
			}
		}
		e = half(e)
		if !e.IsZero() {
			if base, err = base.Mul(base); err != nil {
				return Int{}, fmt.Errorf("power: %w", err)
			}
		}
	}
	return result, nil
}
