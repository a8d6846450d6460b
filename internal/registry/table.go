package registry

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/tphakala/go-lutgen/internal/quantize"
)

// Table is a generated, quantized lookup table.
type Table struct {
	Name     string
	Group    Group
	Encoding quantize.Encoding
	Values   []int64
}

// Len returns the number of elements.
func (t Table) Len() int {
	return len(t.Values)
}

// Min returns the smallest element, or 0 for an empty table.
func (t Table) Min() int64 {
	if len(t.Values) == 0 {
		return 0
	}
	return slices.Min(t.Values)
}

// Max returns the largest element, or 0 for an empty table.
func (t Table) Max() int64 {
	if len(t.Values) == 0 {
		return 0
	}
	return slices.Max(t.Values)
}

// MarshalBinary returns the little-endian image of the table at the
// encoding's storage width, as it would sit in firmware memory.
func (t Table) MarshalBinary() ([]byte, error) {
	width := t.Encoding.Bytes()
	buf := make([]byte, len(t.Values)*width)

	switch width {
	case bytes16:
		for i, v := range t.Values {
			binary.LittleEndian.PutUint16(buf[i*width:], uint16(v))
		}
	case bytes32:
		for i, v := range t.Values {
			binary.LittleEndian.PutUint32(buf[i*width:], uint32(v))
		}
	default:
		return nil, fmt.Errorf("%w: table %s has encoding %s",
			quantize.ErrInvalidSpec, t.Name, t.Encoding)
	}
	return buf, nil
}
