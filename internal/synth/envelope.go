package synth

import (
	"math"

	"github.com/tphakala/go-lutgen/internal/mathutil"
	"gonum.org/v1/gonum/floats"
)

// GranularEnvelope returns a 257-point Hann grain followed by 256 zeros, so
// a grain phase can overshoot without a bounds check.
func GranularEnvelope(Context) []float64 {
	out := make([]float64, GranularEnvelopeSize)
	copy(out, mathutil.SymmetricHann(granularEnvelopeHann))
	return out
}

// GranularEnvelopeRate returns grain playback rates, one octave per 64 entries.
func GranularEnvelopeRate(Context) []float64 {
	out := make([]float64, CurveSize)
	for i := range out {
		out[i] = math.Pow(2, float64(i)/granularRateOctaveDiv) * granularRateBase / granularRateDivisor
	}
	return out
}

// attackDecay builds a linear rise to amplitude, a linear fall to
// sustain*amplitude, and EnvelopeGuardSize copies of the final value.
func attackDecay(attackSamples, decaySamples int, amplitude, sustain float64) []float64 {
	attack := mathutil.Linspace(0, 1, attackSamples)
	decay := mathutil.Linspace(1, sustain, decaySamples)
	floats.Scale(amplitude, attack)
	floats.Scale(amplitude, decay)

	out := make([]float64, 0, len(attack)+len(decay)+EnvelopeGuardSize)
	out = append(out, attack...)
	out = append(out, decay...)

	last := 0.0
	if len(out) > 0 {
		last = out[len(out)-1]
	}
	for range EnvelopeGuardSize {
		out = append(out, last)
	}
	return out
}

// BowingEnvelopeSize returns the bowing envelope length at ctx's rate.
func BowingEnvelopeSize(ctx Context) int {
	return ctx.Samples(bowingAttackSeconds/envelopeDecimation) +
		ctx.Samples(bowingDecaySeconds/envelopeDecimation) + EnvelopeGuardSize
}

// BowingEnvelope returns the bow pressure onset: 25 ms attack, 5 ms decay,
// at a quarter of the sample rate.
func BowingEnvelope(ctx Context) []float64 {
	return attackDecay(
		ctx.Samples(bowingAttackSeconds/envelopeDecimation),
		ctx.Samples(bowingDecaySeconds/envelopeDecimation),
		bowingAmplitude, bowingSustain,
	)
}

// BowingFriction returns the bow/string friction curve over velocity
// difference i/64, saturating at 1.
func BowingFriction(Context) []float64 {
	out := make([]float64, CurveSize)
	for i := range out {
		delta := float64(i) / bowingFrictionDiv
		out[i] = math.Min(1/math.Pow(math.Abs(delta)+bowingFrictionOffset, bowingFrictionPower), 1)
	}
	return out
}

// BlowingEnvelopeSize returns the blowing envelope length at ctx's rate.
func BlowingEnvelopeSize(ctx Context) int {
	return ctx.Samples(blowingAttackSeconds/envelopeDecimation) +
		ctx.Samples(blowingDecaySeconds/envelopeDecimation) + EnvelopeGuardSize
}

// BlowingEnvelope returns the breath onset: 5 ms attack, 10 ms decay.
func BlowingEnvelope(ctx Context) []float64 {
	return attackDecay(
		ctx.Samples(blowingAttackSeconds/envelopeDecimation),
		ctx.Samples(blowingDecaySeconds/envelopeDecimation),
		blowingAmplitude, blowingSustain,
	)
}

// BlowingJet returns the jet nonlinearity d^3 - d over d = i/128, capped at 1.
func BlowingJet(Context) []float64 {
	out := make([]float64, CurveSize)
	for i := range out {
		d := float64(i) / blowingJetDiv
		out[i] = math.Min(d*d*d-d, 1)
	}
	return out
}

// FluteBodyFilter returns a per-note lowpass coefficient for the flute body.
func FluteBodyFilter(Context) []float64 {
	out := make([]float64, FluteBodyFilterSize)
	for i := range out {
		out[i] = fluteBodyScale * math.Min(fluteBodyMax, fluteBodyGain*math.Pow(2, float64(i-mathutil.A4MIDINote)/12))
	}
	return out
}

// Bell returns a VOSIM/FOF grain of size samples: a fast Hann rise over
// size/ratio samples, a slow Hann fall over the rest, then a trailing zero.
// Values span [0, 1].
func Bell(size, ratio int) []float64 {
	rise := size / ratio
	fall := size - rise

	out := make([]float64, 0, size+1)
	out = append(out, mathutil.HalfHann(rise, true)...)
	out = append(out, mathutil.HalfHann(fall, false)...)
	return append(out, 0)
}

// BellEnvelope is Bell(256, 16) as a table generator.
func BellEnvelope(Context) []float64 {
	return Bell(BellSize, BellRatio)
}

// EnvelopeLinear returns a 0..1 ramp.
func EnvelopeLinear(Context) []float64 {
	return mathutil.Linspace(0, 1, CurveSize)
}

// EnvelopeExpo returns exp(5x) rescaled to span 0..1.
func EnvelopeExpo(Context) []float64 {
	out := mathutil.Linspace(0, 1, CurveSize)
	for i, x := range out {
		out[i] = math.Exp(envExpoRate * x)
	}
	lo := floats.Min(out)
	floats.AddConst(-lo, out)
	floats.Scale(1/floats.Max(out), out)
	return out
}

// EnvelopeLog returns 1-exp(-4x) rescaled to peak at 1.
func EnvelopeLog(Context) []float64 {
	out := mathutil.Linspace(0, 1, CurveSize)
	for i, x := range out {
		out[i] = 1 - math.Exp(-envLogRate*x)
	}
	floats.Scale(1/floats.Max(out), out)
	return out
}
