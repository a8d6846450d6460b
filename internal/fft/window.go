package fft

import (
	"fmt"

	"github.com/tphakala/go-lutgen/internal/mathutil"
	"github.com/tphakala/go-lutgen/internal/quantize"
)

// WindowSpec is the quantization applied to analysis windows.
var WindowSpec = quantize.Spec{Encoding: quantize.Signed16, Scale: windowScale}

// HanningWindow returns the periodic raised-cosine window
// 0.5*(1-cos(2πi/N)) for a canonical size N.
func HanningWindow(size int) ([]float64, error) {
	if !IsCanonical(size) {
		return nil, fmt.Errorf("%w: %d", ErrNonCanonicalSize, size)
	}
	return mathutil.PeriodicHann(size), nil
}

// WindowBank holds one quantized Hanning window per canonical size and
// dispatches on buffer length.
type WindowBank struct {
	windows map[int][]int16
}

// NewWindowBank precomputes every canonical window.
func NewWindowBank() (*WindowBank, error) {
	bank := &WindowBank{windows: make(map[int][]int16, MaxBits)}
	for _, size := range CanonicalSizes() {
		w, err := HanningWindow(size)
		if err != nil {
			return nil, err
		}
		q, err := quantize.Quantize(w, WindowSpec)
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", size, err)
		}
		win := make([]int16, size)
		for i, v := range q {
			win[i] = int16(v)
		}
		bank.windows[size] = win
	}
	return bank, nil
}

// Window returns the quantized window for size.
func (b *WindowBank) Window(size int) ([]int16, error) {
	w, ok := b.windows[size]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNonCanonicalSize, size)
	}
	return w, nil
}

// Apply multiplies buf in place by the window matching its length, using
// Q15 arithmetic. Any non-canonical length is an error and buf is left
// untouched.
func (b *WindowBank) Apply(buf []int16) error {
	w, err := b.Window(len(buf))
	if err != nil {
		return err
	}
	for i, s := range buf {
		buf[i] = int16((int32(s) * int32(w[i])) >> q15Shift)
	}
	return nil
}
