package synth

import "math"

// waveform samples one cycle of shape at phase i/256 for i in [0, 257).
// The last entry lets the oscillator interpolate past the final sample.
func waveform(shape func(phase float64) float64) []float64 {
	out := make([]float64, WaveformSize)
	for i := range out {
		out[i] = shape(float64(i) / waveformCycle)
	}
	return out
}

// Sine returns sin(2πt).
func Sine(Context) []float64 {
	return waveform(func(t float64) float64 {
		return math.Sin(2 * math.Pi * t)
	})
}

// Cosine returns cos(2πt).
func Cosine(Context) []float64 {
	return waveform(func(t float64) float64 {
		return math.Cos(2 * math.Pi * t)
	})
}

// Triangle returns a triangle in phase with Sine: zero at t=0, peak at
// t=1/4, trough at t=3/4.
func Triangle(Context) []float64 {
	return waveform(func(t float64) float64 {
		return 4*math.Abs(math.Mod(t+0.75, 1)-0.5) - 1
	})
}

// Sawtooth returns a rising ramp in phase with Sine: zero at t=0, +1 just
// before t=1/2 where it drops to -1.
func Sawtooth(Context) []float64 {
	return waveform(func(t float64) float64 {
		return 2*math.Mod(t+0.5, 1) - 1
	})
}

// SineLFO returns -cos(2πt). It starts at its minimum so a retriggered
// LFO rises from the bottom of its range.
func SineLFO(Context) []float64 {
	return waveform(func(t float64) float64 {
		return -math.Cos(2 * math.Pi * t)
	})
}

// TriangleLFO returns a triangle from -1 up to +1 at t=1/2 and back.
func TriangleLFO(Context) []float64 {
	return waveform(func(t float64) float64 {
		return 1 - 4*math.Abs(t-0.5)
	})
}

// RampUpLFO returns 2t-1.
func RampUpLFO(Context) []float64 {
	return waveform(func(t float64) float64 {
		return 2*t - 1
	})
}

// RampDownLFO returns 1-2t.
func RampDownLFO(Context) []float64 {
	return waveform(func(t float64) float64 {
		return 1 - 2*t
	})
}
