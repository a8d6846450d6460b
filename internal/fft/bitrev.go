// Package fft generates the bit-reversal permutation and analysis windows
// used by the fixed-point FFT.
package fft

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrNonCanonicalSize indicates a transform length that is not a supported
// power of two.
var ErrNonCanonicalSize = errors.New("non-canonical FFT size")

// Stride describes how to walk the shared bit-reversal table for a smaller
// transform: entry k of the size-specific permutation is
// table[First + k*Step], for k in [0, Count).
//
// Step is 1 at MaxSize and doubles each time the size halves, while Count
// halves.
type Stride struct {
	First int
	Step  int
	Count int
}

// Index returns entry k of the permutation described by s.
func (s Stride) Index(table []int, k int) int {
	return table[s.First+k*s.Step]
}

// BitReverse reverses the lowest width bits of v.
func BitReverse(v, width int) int {
	if width <= 0 {
		return 0
	}
	return int(bits.Reverse32(uint32(v)) >> (32 - width))
}

// IsCanonical reports whether size is a supported transform length.
func IsCanonical(size int) bool {
	return size >= MinSize && size <= MaxSize && size&(size-1) == 0
}

// CanonicalSizes returns every supported transform length, largest first.
func CanonicalSizes() []int {
	sizes := make([]int, 0, MaxBits)
	for size := MaxSize; size >= MinSize; size /= 2 {
		sizes = append(sizes, size)
	}
	return sizes
}

// BitReversalTable returns the permutation for a half-length of
// HalfMaxSize: entry i is i with its MaxBits low bits reversed.
func BitReversalTable() []int {
	table := make([]int, HalfMaxSize)
	for i := range table {
		table[i] = BitReverse(i, MaxBits)
	}
	return table
}

// StrideFor returns the walk of the shared table that reproduces the
// bit-reversal permutation of a transform of the given size.
//
// Reversing k*Step over MaxBits equals reversing k over the size's own
// width, since Step only appends trailing zero bits.
func StrideFor(size int) (Stride, error) {
	if !IsCanonical(size) {
		return Stride{}, fmt.Errorf("%w: %d (want power of two in [%d, %d])",
			ErrNonCanonicalSize, size, MinSize, MaxSize)
	}
	return Stride{
		First: 0,
		Step:  MaxSize / size,
		Count: size / 2,
	}, nil
}

// Width returns the bit width of the half-length permutation for size.
func Width(size int) int {
	return bits.Len(uint(size/2)) - 1
}
