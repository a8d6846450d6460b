package lutgen

import "github.com/tphakala/go-lutgen/internal/fft"

// WindowBank holds a quantized Hanning window per FFT size and applies the
// one matching a buffer's length.
type WindowBank = fft.WindowBank

// Stride describes how a smaller transform walks the shared bit-reversal
// table.
type Stride = fft.Stride

// ErrNonCanonicalSize indicates an FFT size outside the powers of two
// from 16 to 2048.
var ErrNonCanonicalSize = fft.ErrNonCanonicalSize

// NewWindowBank precomputes the windows for every FFT size.
func NewWindowBank() (*WindowBank, error) {
	return fft.NewWindowBank()
}

// BitReversalTable returns the shared permutation for the largest FFT.
func BitReversalTable() []int {
	return fft.BitReversalTable()
}

// BitReversalStride returns the walk of [BitReversalTable] for an FFT of size.
func BitReversalStride(size int) (Stride, error) {
	return fft.StrideFor(size)
}
