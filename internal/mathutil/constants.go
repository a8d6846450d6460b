package mathutil

// Equal-temperament pitch reference.
// MIDI note 69 is A4 = 440 Hz; 12 notes per octave.
const (
	A4Frequency = 440.0 // Hz
	A4MIDINote  = 69

	semitonesPerOctave = 12.0

	// Highest MIDI note any pitch axis may reach.
	MaxMIDINote = 128
)

// Fractional pitch resolution used by the oscillator tables.
const (
	// PitchFractions is the number of pitch steps per semitone (7 fractional bits).
	PitchFractions = 128
)

// Phase accumulator constants.
const (
	// Excursion is the full-scale value of a 32-bit phase accumulator (2^32).
	Excursion = 65536.0 * 65536.0
)

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)
