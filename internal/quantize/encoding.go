// Package quantize maps floating-point curves onto the integer encodings
// embedded in firmware constant tables.
package quantize

import (
	"fmt"
	"math"
)

// Encoding is the integer representation of a table element.
type Encoding int

const (
	// Signed16 is a symmetric Q15 encoding in [-32767, 32767].
	Signed16 Encoding = iota

	// Unsigned16 covers [0, 65535].
	Unsigned16

	// Signed32 covers the full int32 range.
	Signed32

	// Unsigned32 covers [0, 2^32-1]; used for phase increments.
	Unsigned32
)

// Range returns the smallest and largest representable values.
func (e Encoding) Range() (lo, hi int64) {
	switch e {
	case Signed16:
		return -math.MaxInt16, math.MaxInt16
	case Unsigned16:
		return 0, math.MaxUint16
	case Signed32:
		return math.MinInt32, math.MaxInt32
	case Unsigned32:
		return 0, math.MaxUint32
	default:
		return 0, 0
	}
}

// Bits returns the storage width in bits.
func (e Encoding) Bits() int {
	switch e {
	case Signed16, Unsigned16:
		return bits16
	case Signed32, Unsigned32:
		return bits32
	default:
		return 0
	}
}

// Signed reports whether the encoding carries a sign.
func (e Encoding) Signed() bool {
	return e == Signed16 || e == Signed32
}

// Valid reports whether e is a known encoding.
func (e Encoding) Valid() bool {
	return e >= Signed16 && e <= Unsigned32
}

func (e Encoding) String() string {
	switch e {
	case Signed16:
		return "s16"
	case Unsigned16:
		return "u16"
	case Signed32:
		return "s32"
	case Unsigned32:
		return "u32"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Bytes returns the storage width in bytes.
func (e Encoding) Bytes() int {
	return e.Bits() / bitsPerByte
}
