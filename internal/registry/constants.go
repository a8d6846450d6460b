package registry

// Storage widths handled by MarshalBinary.
const (
	bytes16 = 2
	bytes32 = 4
)

// unitScale stores values that are already integers in their final units.
const unitScale = 1.0

// Prefixes of generated table names.
const (
	envIncrementsPrefix = "env_increments_"
	windowPrefix        = "window_hanning_"
	waveformPrefix      = "wav_"
)
