package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values from start to stop inclusive.
// The last value is exactly stop.
//
// A single-element result holds start. n <= 0 yields an empty slice.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	out := floats.Span(make([]float64, n), start, stop)
	out[n-1] = stop
	return out
}

// Logspace returns n values interpolated linearly in log space between
// start and stop, both of which must be positive. Successive values have a
// constant ratio, which gives perceptually uniform frequency steps.
func Logspace(start, stop float64, n int) []float64 {
	out := Linspace(math.Log(start), math.Log(stop), n)
	for i, v := range out {
		out[i] = math.Exp(v)
	}
	return out
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// MaxAbs returns the largest absolute value in s, or 0 for an empty slice.
func MaxAbs(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return math.Max(math.Abs(floats.Max(s)), math.Abs(floats.Min(s)))
}
