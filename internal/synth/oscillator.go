package synth

import (
	"math"

	"github.com/tphakala/go-lutgen/internal/mathutil"
)

// OscillatorIncrements returns phase increments for one octave of pitch
// starting at the highest usable MIDI note, in 1/8 semitone steps.
//
// The runtime shifts these down by whole octaves for lower notes, so the
// octave sits at the top of the audible range.
func OscillatorIncrements(ctx Context) []float64 {
	base := float64(ctx.MaxMIDINote * mathutil.PitchFractions)
	out := make([]float64, OscillatorIncrementsSize)
	for i := range out {
		pitch := base + float64(i*oscillatorPitchStep)
		out[i] = ctx.Increment(mathutil.FineToFrequency(pitch))
	}
	return out
}

// LFOIncrements returns phase increments from 1/32 Hz to 160 Hz with a
// constant ratio between neighbours.
func LFOIncrements(ctx Context) []float64 {
	return mathutil.Logspace(
		ctx.Increment(lfoMinFrequency),
		ctx.Increment(lfoMaxFrequency),
		LFOIncrementsSize,
	)
}

// EnvelopeIncrements returns envelope phase increments from the fastest
// segment (three samples) down to one lasting maxTime seconds.
//
// The axis is linear in increment^-gamma, which crowds the table toward
// short times where the ear is most sensitive.
func EnvelopeIncrements(ctx Context, maxTime float64) []float64 {
	minTime := envelopeMinSamples / ctx.rate()
	minIncrement := ctx.Excursion / (maxTime * ctx.rate())
	maxIncrement := ctx.Excursion / (minTime * ctx.rate())

	rates := mathutil.Linspace(
		math.Pow(maxIncrement, -envelopeGamma),
		math.Pow(minIncrement, -envelopeGamma),
		EnvelopeIncrementsSize,
	)
	for i, r := range rates {
		rates[i] = math.Pow(r, -1/envelopeGamma)
	}
	return rates
}

// VCODetune returns a pitch correction curve, in 1/128 semitone, that
// mimics an analog oscillator going flat at high frequencies. Entry i is
// MIDI note i/2; entry 120 (middle C) is left untouched.
func VCODetune(Context) []float64 {
	out := make([]float64, CurveSize)
	for i := range out {
		frequency := mathutil.MIDIToFrequency(float64(i) / 2)
		frequency -= vcoOffsetCurrent

		period := 1/frequency + vcoResetTime
		frequency = 1 / period

		pitch := mathutil.PitchFractions * mathutil.FrequencyToMIDI(frequency)
		out[i] = math.Max(pitch, 0)
	}

	offset := vcoAnchorPitch - out[vcoAnchorIndex]
	for i := range out {
		out[i] += offset
	}
	return out
}
