package filter

// Resonator (two-pole bandpass) design.
const (
	// ResonatorSize is one coefficient per MIDI note 0..128.
	ResonatorSize = 129

	// resonatorMaxCutoff bounds the cutoff relative to Nyquist. At 0.25 the
	// pole angle is π/2 and the recursion coefficient is zero.
	resonatorMaxCutoff = 0.25

	// resonatorMaxResonance is the pole radius used to measure peak gain.
	resonatorMaxResonance = 0.99985

	// resonatorImpulseLength is the number of response samples inspected.
	resonatorImpulseLength = 2000

	// resonatorGainTarget is the headroom the scale factor normalizes to.
	resonatorGainTarget = 16384.0

	// Scale factor bounds keep the fixed-point recursion from overflowing.
	ResonatorMinScale = 1.0
	ResonatorMaxScale = 256.0

	// resonatorCoefficientBound is |2cos(θ)|.
	resonatorCoefficientBound = 2.0
)

// State-variable filter design.
const (
	// SVFSize is one entry per cutoff note / resonance step 0..256.
	SVFSize = 257

	// svfMaxCutoff bounds the cutoff relative to the sample rate.
	svfMaxCutoff = 1.0 / 8.0

	// svfResonanceDivisor maps index i to resonance i/260 (< 1 at i = 256).
	svfResonanceDivisor = 260.0

	// svfResonanceExponent shapes the damping response.
	svfResonanceExponent = 0.25

	// svfMaxDamp is the damping of a fully open (non-resonant) filter.
	svfMaxDamp = 2.0

	halfDivisor = 2.0
)
