// Package wideint implements arbitrary-precision signed integers stored as
// little-endian base-10 digit sequences.
//
// Values are immutable: every operation returns a new Int and never writes
// into the digit storage of its operands, so an Int can be shared freely
// between goroutines.
//
// Multiplication evaluates both digit sequences with a radix-2 Fast Fourier
// Transform over complex128, multiplies the spectra pointwise, transforms back
// and rounds each coefficient to the nearest integer before carry
// normalization. Division uses a doubling search built on digit-wise doubling,
// halving and comparison, and stops early when its context is done; modulo
// falls out of the same search and exponentiation repeats multiplication.
//
// Division follows truncated semantics (quotient rounded toward zero), so the
// remainder always carries the sign of the dividend, exactly like Go's / and %
// operators on machine integers.
package wideint
