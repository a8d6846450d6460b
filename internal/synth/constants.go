package synth

// Oscillator pitch table.
const (
	// oscillatorPitchStep is the axis step in 1/128 semitone (1/8 semitone).
	oscillatorPitchStep = 16

	// OscillatorIncrementsSize covers one octave in 1/8 semitone steps, inclusive.
	OscillatorIncrementsSize = 12*128/oscillatorPitchStep + 1
)

// LFO increments.
const (
	LFOIncrementsSize = 257

	lfoMinFrequency = 1.0 / 32.0 // Hz
	lfoMaxFrequency = 160.0      // Hz
)

// Envelope increments.
const (
	EnvelopeIncrementsSize = 128

	// Shortest envelope segment, in samples.
	envelopeMinSamples = 3.0

	// Power-law warp of the rate axis.
	envelopeGamma = 0.7
)

// EnvelopeMaxTimes lists the maximum durations of the envelope-speed tables.
var EnvelopeMaxTimes = []struct {
	Name    string
	Seconds float64
}{
	{"10seconds", 10.0},
	{"5seconds", 5.0},
	{"2seconds", 2.0},
	{"1seconds", 1.0},
	{"half_second", 0.5},
	{"quarter_second", 0.25},
}

// Shared 257-point axes.
const (
	CurveSize = 257

	// curveHalf maps index 128 to the center of a [-1, 1] axis.
	curveHalf = 128.0
)

// Waveshaper drive factors.
const (
	moderateDrive = 2.0
	overdrive     = 5.0
	violentDrive  = 8.0
	extremeDrive  = 20.0

	stepDrive        = 5.0
	violentStepDrive = 8.0
	extremeStepDrive = 100.0

	// Horizontal offset of the two tanh curves in a step overdrive.
	stepShift = 0.5

	// Vertical offset of each half-height tanh curve.
	stepLevel = 0.5
)

// Wavefolders.
const (
	triFoldLinear = 3.0
	triFoldCubic  = 2.0

	sineFoldCycles      = 8.0
	sineFoldAtanGain    = 3.0
	sineFoldWindowWidth = 4.0
	sineFoldWindowPower = 1.5
)

// Granular synthesis.
const (
	GranularEnvelopeSize  = 513
	granularEnvelopeHann  = 257
	granularRateOctaveDiv = 64.0
	granularRateBase      = 1 << 14
	granularRateDivisor   = 8.0
)

// Physical modelling envelopes.
const (
	// Envelopes are rendered every fourth sample.
	envelopeDecimation = 4.0

	// Guard samples appended after the final decay value.
	EnvelopeGuardSize = 32

	bowingAttackSeconds = 0.025
	bowingDecaySeconds  = 0.005
	bowingAmplitude     = 0.2 * 32768
	bowingSustain       = 0.8

	bowingFrictionDiv    = 64.0
	bowingFrictionOffset = 0.75
	bowingFrictionPower  = 4.0

	blowingAttackSeconds = 0.005
	blowingDecaySeconds  = 0.01
	blowingAmplitude     = 1.3 * 16384
	blowingSustain       = 0.8

	blowingJetDiv = 128.0

	FluteBodyFilterSize = 128
	fluteBodyMax        = 0.7
	fluteBodyGain       = 0.4
	fluteBodyScale      = 4096.0
)

// VCO detuning model.
const (
	// vcoOffsetCurrent models an offset current in the integrator, in Hz.
	vcoOffsetCurrent = 0.6

	// vcoResetTime models the integrator capacitor reset time, in seconds.
	vcoResetTime = 9e-6

	// vcoAnchorIndex is the entry (half-semitone steps) pinned to middle C.
	vcoAnchorIndex = 120

	vcoAnchorPitch = 60 << 7
)

// Bell envelope.
const (
	BellSize  = 256
	BellRatio = 16
)

// Envelope curves.
const (
	envExpoRate = 5.0
	envLogRate  = 4.0
)

// FM frequency ratio quantizer.
const (
	// fmReplicas is how many copies of each ratio seed the table.
	fmReplicas = 3

	// fmCentsPerOctave is the log2 scaling of the table (256 steps per semitone).
	fmCentsPerOctave = 256 * 12

	// fmOffset centers ratio 1.0 in the table's unsigned range.
	fmOffset = 16384.0
)

// Single-cycle waveforms.
const (
	// WaveformSize is one cycle plus a guard sample equal to the phase-1 value.
	WaveformSize = 257

	// waveformCycle is the number of samples per cycle.
	waveformCycle = 256.0
)
