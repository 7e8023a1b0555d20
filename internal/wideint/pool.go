// This file provides pooled scratch buffers for the transform so that
// repeated multiplications do not reallocate their complex work areas.

package wideint

import (
	"fmt"
	"math"
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Complex Slice Pools
// ─────────────────────────────────────────────────────────────────────────────

// complexSlicePools pools []complex128 slices by size class.
// Size classes are powers of 4 from 64 up to MaxTransformLength.
var complexSlicePools = [...]sync.Pool{
	{New: func() any { return make([]complex128, 64) }},
	{New: func() any { return make([]complex128, 256) }},
	{New: func() any { return make([]complex128, 1024) }},
	{New: func() any { return make([]complex128, 4096) }},
	{New: func() any { return make([]complex128, 16384) }},
	{New: func() any { return make([]complex128, 65536) }},
	{New: func() any { return make([]complex128, 262144) }},
	{New: func() any { return make([]complex128, 1048576) }}, // 1M values = 16MB
	{New: func() any { return make([]complex128, 4194304) }}, // 4M values = 64MB
}

// complexSliceSizes defines the size classes for complex slice pools.
var complexSliceSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304}

// getComplexSlicePoolIndex returns the pool index for a given size, or -1 if
// the size is too large for pooling.
//
// complexSliceSizes are powers of 4 starting from 4^3 = 64: index i holds
// size 4^(i+3), so bits.Len(size-1) maps directly to the index.
func getComplexSlicePoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > complexSliceSizes[len(complexSliceSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireComplexSlice gets a zeroed complex slice of exactly the given length.
// The backing array may be larger than requested.
//
// The returned slice should be released using releaseComplexSlice, preferably
// with defer:
//
//	buf := acquireComplexSlice(size)
//	defer releaseComplexSlice(buf)
func acquireComplexSlice(size int) []complex128 {
	idx := getComplexSlicePoolIndex(size)
	if idx < 0 {
		return make([]complex128, size)
	}
	slice := complexSlicePools[idx].Get().([]complex128)
	clear(slice)
	return slice[:size]
}

// releaseComplexSlice returns a slice obtained from acquireComplexSlice to its
// pool. Slices whose capacity does not match a size class are left to the GC.
// Safe to call with nil.
func releaseComplexSlice(slice []complex128) {
	if slice == nil {
		return
	}
	c := cap(slice)
	idx := getComplexSlicePoolIndex(c)
	if idx >= 0 && complexSliceSizes[idx] == c {
		complexSlicePools[idx].Put(slice[:c])
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Butterfly Scratch
// ─────────────────────────────────────────────────────────────────────────────

// butterflyScratch holds every buffer one multiplication needs: the spectra
// of both operands and the table of roots of unity for the transform length.
//
// A scratch is owned by exactly one call between acquireScratch and release.
// It is never shared while in use, which is what makes concurrent
// multiplications on independent operands safe.
type butterflyScratch struct {
	n     int
	roots []complex128 // roots[k] = e^{+2πik/n}, k in [0, n/2)
	x, y  []complex128
}

// acquireScratch prepares a scratch for transforms of length n.
//
// The caller must release it, preferably with defer:
//
//	s, err := acquireScratch(n)
//	if err != nil { ... }
//	defer s.release()
func acquireScratch(n int) (*butterflyScratch, error) {
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTransformLength, n)
	}
	if n > MaxTransformLength {
		return nil, fmt.Errorf("%w: transform of length %d exceeds %d", ErrOperandTooLarge, n, MaxTransformLength)
	}
	s := &butterflyScratch{
		n:     n,
		roots: acquireComplexSlice(n / 2),
		x:     acquireComplexSlice(n),
		y:     acquireComplexSlice(n),
	}
	// Each root is computed directly from its angle so that errors do not
	// accumulate along the table.
	for k := range s.roots {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(n))
		s.roots[k] = complex(cos, sin)
	}
	return s, nil
}

// release returns all buffers to their pools. The scratch must not be used
// afterwards. Safe to call on nil.
func (s *butterflyScratch) release() {
	if s == nil {
		return
	}
	releaseComplexSlice(s.roots)
	releaseComplexSlice(s.x)
	releaseComplexSlice(s.y)
	s.roots, s.x, s.y = nil, nil, nil
}
