package mathutil

import "gonum.org/v1/gonum/dsp/window"

// SymmetricHann returns an n-point Hann window whose first and last samples
// are zero:
//
//	w[i] = 0.5 * (1 - cos(2πi / (n-1)))
func SymmetricHann(n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{1}
	}
	return window.Hann(ones(n))
}

// PeriodicHann returns an n-point raised-cosine window suited to FFT
// analysis frames:
//
//	w[i] = 0.5 * (1 - cos(2πi / n))
//
// It is the first n samples of an (n+1)-point symmetric window.
func PeriodicHann(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	return window.Hann(ones(n + 1))[:n]
}

// HalfHann returns the rising (or falling) half of a Hann window of length
// 2*n. rising selects the first half, otherwise the second half is returned.
func HalfHann(n int, rising bool) []float64 {
	if n <= 0 {
		return []float64{}
	}
	w := SymmetricHann(n * int(halfDivisor))
	if rising {
		return w[:n]
	}
	return w[n:]
}

func ones(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 1
	}
	return s
}
