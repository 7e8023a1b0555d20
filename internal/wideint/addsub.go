package wideint

// Add returns x + y.
func (x Int) Add(y Int) Int {
	return combine(x, y, y.Sign())
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return combine(x, y, y.Sign().flip())
}

// Inc returns x + 1.
func (x Int) Inc() Int {
	return x.Add(One())
}

// Dec returns x - 1.
func (x Int) Dec() Int {
	return x.Sub(One())
}

// combine adds x and y, reading y with sign ySign. Cells are combined as
// signed values over a power-of-two length one cell longer than the longer
// operand, so a final carry always has room, then normalized.
func combine(x, y Int, ySign Sign) Int {
	a, b := x.cells(), y.cells()
	n := nextPow2(max(len(a), len(b)) + 1)
	fa, fb := x.Sign().factor(), ySign.factor()
	cells := make([]int64, n)
	for i := range cells {
		cells[i] = fa*cellAt(a, i) + fb*cellAt(b, i)
	}
	d, s := normalize(cells, Positive)
	return Int{digits: d, sign: s}
}
