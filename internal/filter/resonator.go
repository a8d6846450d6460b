// Package filter designs the recursive filter coefficients embedded in the
// lookup tables.
package filter

import (
	"math"

	"github.com/tphakala/go-lutgen/internal/mathutil"
	"github.com/tphakala/go-lutgen/internal/synth"
)

// ResonatorDesign holds the coefficients for one resonator note.
type ResonatorDesign struct {
	// Note is the MIDI note number.
	Note int

	// Cutoff is the clamped cutoff relative to Nyquist, in (0, 0.25].
	Cutoff float64

	// Coefficient is 2cos(2π·Cutoff), the negated first feedback term of
	// y[n] = x[n] - a1·y[n-1] - a2·y[n-2].
	Coefficient float64

	// PeakGain is the largest absolute impulse response at maximum resonance.
	PeakGain float64

	// Scale is 16384/PeakGain clamped into [1, 256].
	Scale float64
}

// ResonatorCutoff returns the cutoff of note relative to Nyquist, clamped to
// 0.25 so the filter stays stable at every sample rate.
func ResonatorCutoff(ctx synth.Context, note int) float64 {
	f := mathutil.MIDIToFrequency(float64(note)) / ctx.Nyquist
	return math.Min(f, resonatorMaxCutoff)
}

// DesignResonator computes the coefficients for a MIDI note.
func DesignResonator(ctx synth.Context, note int) ResonatorDesign {
	f := ResonatorCutoff(ctx, note)
	peak := ResonatorPeakGain(f)

	return ResonatorDesign{
		Note:        note,
		Cutoff:      f,
		Coefficient: resonatorCoefficientBound * math.Cos(2*math.Pi*f),
		PeakGain:    peak,
		Scale:       resonatorScale(peak),
	}
}

// ResonatorPeakGain returns the peak absolute impulse response, over
// resonatorImpulseLength samples, of a two-pole resonator at normalized
// frequency f with pole radius 0.99985, normalized by sqrt(2f).
//
// The response of y[n] = x[n] + 2r·cos(θ)·y[n-1] - r²·y[n-2] to a unit
// impulse is r^n·sin((n+1)θ)/sin(θ).
func ResonatorPeakGain(f float64) float64 {
	theta := 2 * math.Pi * f
	sinTheta := math.Sin(theta)
	if f <= 0 || sinTheta == 0 {
		// Degenerate pole angle: the response grows linearly, report the bound.
		return resonatorGainTarget / ResonatorMinScale
	}

	norm := math.Sqrt(halfDivisor * f)
	peak := 0.0
	decay := 1.0
	for n := range resonatorImpulseLength {
		v := math.Sin(float64(n+1)*theta) / sinTheta * decay / norm
		peak = math.Max(peak, math.Abs(v))
		decay *= resonatorMaxResonance
	}
	return peak
}

// resonatorScale maps a peak gain onto the clamped compensation factor.
func resonatorScale(peak float64) float64 {
	if peak <= 0 {
		return ResonatorMaxScale
	}
	return mathutil.Clamp(resonatorGainTarget/peak, ResonatorMinScale, ResonatorMaxScale)
}

// ResonatorCoefficients returns the 2cos(θ) term for notes 0..128.
func ResonatorCoefficients(ctx synth.Context) []float64 {
	out := make([]float64, ResonatorSize)
	for note := range out {
		out[note] = resonatorCoefficientBound * math.Cos(2*math.Pi*ResonatorCutoff(ctx, note))
	}
	return out
}

// ResonatorScales returns the gain compensation factor for notes 0..128.
func ResonatorScales(ctx synth.Context) []float64 {
	out := make([]float64, ResonatorSize)
	for note := range out {
		out[note] = resonatorScale(ResonatorPeakGain(ResonatorCutoff(ctx, note)))
	}
	return out
}
