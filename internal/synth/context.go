// Package synth evaluates the closed-form curves behind every lookup table.
//
// Each generator is a pure function of a Context and returns float samples
// in the table's natural units; quantization happens elsewhere.
package synth

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tphakala/go-lutgen/internal/mathutil"
)

// ErrUnsupportedSampleRate indicates a sample rate outside the firmware build set.
var ErrUnsupportedSampleRate = errors.New("unsupported sample rate")

// supportedSampleRates lists the rates the firmware can be built for.
var supportedSampleRates = []int{8000, 11025, 16000, 22050, 32000, 44100, 48000, 96000}

// SupportedSampleRates returns a copy of the firmware build rates.
func SupportedSampleRates() []int {
	return slices.Clone(supportedSampleRates)
}

// IsSupportedSampleRate reports whether the firmware can be built for rate.
func IsSupportedSampleRate(rate int) bool {
	return slices.Contains(supportedSampleRates, rate)
}

// Context carries the sample rate and the constants derived from it.
type Context struct {
	// SampleRate is the engine's sample rate in Hz.
	SampleRate int

	// Nyquist is SampleRate / 2.
	Nyquist float64

	// Excursion is the full scale of the 32-bit phase accumulator.
	Excursion float64

	// MaxMIDINote is the highest whole note at or below Nyquist, capped at 128.
	MaxMIDINote int
}

// NewContext derives a Context from sampleRate.
func NewContext(sampleRate int) (Context, error) {
	if !IsSupportedSampleRate(sampleRate) {
		return Context{}, fmt.Errorf("%w: %d Hz (supported: %v)",
			ErrUnsupportedSampleRate, sampleRate, supportedSampleRates)
	}

	nyquist := float64(sampleRate) / 2
	return Context{
		SampleRate:  sampleRate,
		Nyquist:     nyquist,
		Excursion:   mathutil.Excursion,
		MaxMIDINote: mathutil.HighestMIDINote(nyquist),
	}, nil
}

// rate returns the sample rate as a float.
func (c Context) rate() float64 {
	return float64(c.SampleRate)
}

// Increment converts a frequency to a phase increment at this sample rate.
func (c Context) Increment(frequency float64) float64 {
	return c.Excursion / c.rate() * frequency
}

// Samples returns the whole number of samples spanning seconds.
func (c Context) Samples(seconds float64) int {
	return int(c.rate() * seconds)
}
