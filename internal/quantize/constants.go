package quantize

// Storage widths.
const (
	bits16 = 16
	bits32 = 32

	bitsPerByte = 8
)

// Common full-scale factors.
const (
	// Q15 is the unit of a symmetric signed 16-bit table.
	Q15 = 32767.0

	// Q15Exact is 2^15, used by tables whose unit is one past the signed limit.
	Q15Exact = 32768.0

	// FullScale16 is the unit of an unsigned 16-bit table spanning [0, 1].
	FullScale16 = 65535.0

	// WaveshaperScale leaves one code of headroom at both rails.
	WaveshaperScale = 32766.0
)
