// Package mathutil provides the pitch, spacing and window helpers shared by
// the table synthesizers.
package mathutil

import "math"

// MIDIToFrequency converts a (possibly fractional) MIDI note number to a
// frequency in Hz using 12-tone equal temperament around A4 = 440 Hz.
func MIDIToFrequency(note float64) float64 {
	return A4Frequency * math.Pow(2, (note-A4MIDINote)/semitonesPerOctave)
}

// FineToFrequency converts a pitch expressed in 1/128 semitone units to Hz.
//
//	f = 440 * 2^((pitch - 69*128) / (128*12))
func FineToFrequency(pitch float64) float64 {
	return A4Frequency * math.Pow(2, (pitch-A4MIDINote*PitchFractions)/(PitchFractions*semitonesPerOctave))
}

// FrequencyToMIDI converts a frequency in Hz to a fractional MIDI note number.
func FrequencyToMIDI(frequency float64) float64 {
	return A4MIDINote + semitonesPerOctave*math.Log2(frequency/A4Frequency)
}

// HighestMIDINote returns the highest whole MIDI note whose frequency does
// not exceed the given limit (usually the Nyquist frequency), capped at
// MaxMIDINote.
func HighestMIDINote(limit float64) int {
	note := int(math.Floor(FrequencyToMIDI(limit)))
	return min(note, MaxMIDINote)
}
