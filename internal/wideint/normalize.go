package wideint

// Carry normalization turns a cell array holding arbitrary signed values
// (raw sums, differences or rounded convolution coefficients) into canonical
// base-10 digits. Every function here returns a fresh slice and leaves its
// input untouched.

// normalize converts cells into canonical digits and the sign of the value
// they represent, given that the cells are scaled by sign.
//
// The result has every cell in [0, 9], no most-significant zero beyond the
// highest nonzero digit other than padding, and a power-of-two length. Zero is
// always Positive. Running normalize on canonical digits returns them unchanged.
func normalize(cells []int64, sign Sign) ([]int64, Sign) {
	d := propagateCarries(cells)
	d, negative := resolveBorrows(d)
	if negative {
		sign = sign.flip()
		for i := range d {
			d[i] = -d[i]
		}
		d, _ = resolveBorrows(d)
	}
	// A borrow can leave the top cell at 10 after negation; one more carry
	// pass settles it.
	d = propagateCarries(d)
	d = trimAndPad(d)
	if isZeroCells(d) {
		sign = Positive
	}
	return d, sign
}

// propagateCarries moves every cell's tens into the next higher cell, from
// least to most significant, and appends new top cells until the top fits in
// [-9, 9]. Division truncates toward zero, so a negative cell carries a
// negative amount and keeps a remainder in [-9, 0].
func propagateCarries(cells []int64) []int64 {
	if len(cells) == 0 {
		return []int64{0}
	}
	d := make([]int64, len(cells), len(cells)+4)
	copy(d, cells)
	for i := 0; i < len(d)-1; i++ {
		d[i+1] += d[i] / 10
		d[i] %= 10
	}
	for top := d[len(d)-1]; top > 9 || top < -9; top = d[len(d)-1] {
		d[len(d)-1] = top % 10
		d = append(d, top/10)
	}
	return d
}

// resolveBorrows lends 10 from the next higher cell to every negative cell
// below the top. It reports whether a negative cell remains afterwards, which
// means the whole value is negative.
//
// Expects cells already passed through propagateCarries.
func resolveBorrows(cells []int64) ([]int64, bool) {
	d := make([]int64, len(cells))
	copy(d, cells)
	for i := 0; i < len(d)-1; i++ {
		if d[i] < 0 {
			d[i] += 10
			d[i+1]--
		}
	}
	for _, c := range d {
		if c < 0 {
			return d, true
		}
	}
	return d, false
}

// trimAndPad drops most-significant zero cells down to the highest nonzero
// cell (or a single zero) and pads the result back to a power-of-two length.
func trimAndPad(cells []int64) []int64 {
	top := len(cells)
	for top > 1 && cells[top-1] == 0 {
		top--
	}
	if top == 0 {
		return []int64{0}
	}
	out := make([]int64, nextPow2(top))
	copy(out, cells[:top])
	return out
}

// isZeroCells reports whether every cell is zero.
func isZeroCells(cells []int64) bool {
	for _, c := range cells {
		if c != 0 {
			return false
		}
	}
	return true
}

// significantLen returns the number of cells up to and including the highest
// nonzero one, with a minimum of one.
func significantLen(cells []int64) int {
	top := len(cells)
	for top > 1 && cells[top-1] == 0 {
		top--
	}
	if top == 0 {
		return 1
	}
	return top
}
