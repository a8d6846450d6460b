package filter

import (
	"math"

	"github.com/tphakala/go-lutgen/internal/mathutil"
	"github.com/tphakala/go-lutgen/internal/synth"
)

// svfFrequency returns the Chamberlin frequency coefficient 2sin(πf) for
// cutoff index i, with f = cutoff/sampleRate clamped to 1/8.
func svfFrequency(ctx synth.Context, i int) float64 {
	f := mathutil.MIDIToFrequency(float64(i)) / float64(ctx.SampleRate)
	f = math.Min(f, svfMaxCutoff)
	return 2 * math.Sin(math.Pi*f)
}

// svfDamp returns the damping for index i. The resonance term is bounded by
// 2/f - f/2 so low cutoffs with high resonance stay inside the stable
// region, and by zero so damping never turns negative.
func svfDamp(f float64, i int) float64 {
	resonance := float64(i) / svfResonanceDivisor
	damp := math.Min(
		svfMaxDamp*(1-math.Pow(resonance, svfResonanceExponent)),
		math.Min(svfMaxDamp, svfMaxDamp/f-f/halfDivisor),
	)
	return math.Max(damp, 0)
}

// SVFCutoff returns the frequency coefficient per cutoff note.
func SVFCutoff(ctx synth.Context) []float64 {
	out := make([]float64, SVFSize)
	for i := range out {
		out[i] = svfFrequency(ctx, i)
	}
	return out
}

// SVFDamp returns the damping coefficient per resonance step.
func SVFDamp(ctx synth.Context) []float64 {
	out := make([]float64, SVFSize)
	for i := range out {
		out[i] = svfDamp(svfFrequency(ctx, i), i)
	}
	return out
}

// SVFScale returns sqrt(damp/2), the output level compensation.
func SVFScale(ctx synth.Context) []float64 {
	out := SVFDamp(ctx)
	for i, d := range out {
		out[i] = math.Sqrt(d / halfDivisor)
	}
	return out
}
