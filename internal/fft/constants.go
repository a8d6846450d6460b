package fft

// Transform size bounds. Every power of two between them is canonical.
const (
	MinSize = 16
	MaxSize = 2048

	// HalfMaxSize is the length of the shared bit-reversal table.
	HalfMaxSize = MaxSize / 2

	// MaxBits is the index width of the shared bit-reversal table.
	MaxBits = 10
)

// Window quantization.
const (
	// windowScale maps the unit window onto signed 16-bit.
	windowScale = 32767.0

	// q15Shift is the fixed-point shift applied when windowing samples.
	q15Shift = 15
)
