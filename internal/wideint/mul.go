package wideint

import "fmt"

// Mul returns x * y.
//
// Both digit arrays are padded to NextPowerOfTwo(len(x)+len(y)+1), evaluated
// with the forward transform, multiplied pointwise, interpolated back and
// carry-normalized. The sign is the XOR of the operand signs. Squaring
// (x.Mul(x)) runs a single forward transform.
//
// Returns:
//   - Int: The product.
//   - error: ErrOperandTooLarge or ErrPrecisionLoss if the product exceeds
//     what the transform can compute exactly.
func (x Int) Mul(y Int) (Int, error) {
	a, b := x.cells(), y.cells()
	raw, err := convolve(a, b, sameCells(a, b))
	if err != nil {
		return Int{}, fmt.Errorf("multiply %d-digit by %d-digit value: %w", x.Len(), y.Len(), err)
	}
	d, s := normalize(raw, x.Sign().xor(y.Sign()))
	return Int{digits: d, sign: s}, nil
}

// sameCells reports whether a and b are the same backing array.
func sameCells(a, b []int64) bool {
	return len(a) > 0 && len(a) == len(b) && &a[0] == &b[0]
}

// TransformLength returns the transform length Mul uses for x * y: the next
// power of two above both padded cell arrays plus one.
func TransformLength(x, y Int) int {
	return nextPow2(len(x.cells()) + len(y.cells()) + 1)
}

// ProductFits reports whether Mul can multiply values of m and n significant
// digits without ErrOperandTooLarge.
func ProductFits(m, n int) bool {
	return nextPow2(max(m, 1))+nextPow2(max(n, 1))+1 <= MaxTransformLength
}
