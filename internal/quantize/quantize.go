package quantize

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-lutgen/internal/mathutil"
)

// Common errors returned by Quantize.
var (
	// ErrRangeOverflow indicates a scaled value outside the encoding range.
	ErrRangeOverflow = errors.New("quantized value out of range")

	// ErrNonFinite indicates a NaN or infinite input sample.
	ErrNonFinite = errors.New("non-finite sample")

	// ErrInvalidSpec indicates an unusable quantization spec.
	ErrInvalidSpec = errors.New("invalid quantization spec")
)

// Spec declares how a float curve maps onto integers.
type Spec struct {
	// Encoding is the target integer representation.
	Encoding Encoding

	// Scale multiplies every sample after centering and normalization.
	Scale float64

	// Center subtracts the mean before scaling. Used for waveshapers whose
	// transfer curve should sit symmetrically around zero. Coefficient and
	// envelope tables leave it off so that zero stays zero.
	Center bool

	// Normalize divides by the peak absolute value so the curve spans
	// exactly [-Scale, Scale].
	Normalize bool
}

// Validate checks the spec.
func (s Spec) Validate() error {
	if !s.Encoding.Valid() {
		return fmt.Errorf("%w: unknown encoding %d", ErrInvalidSpec, int(s.Encoding))
	}
	if s.Scale <= 0 || math.IsNaN(s.Scale) || math.IsInf(s.Scale, 0) {
		return fmt.Errorf("%w: scale must be positive and finite, got %v", ErrInvalidSpec, s.Scale)
	}
	return nil
}

// Quantize converts values to integers under spec.
//
// Samples are rounded to the nearest integer (ties to even). A value that
// does not fit the encoding after scaling is an error; nothing is clamped.
// The input slice is not modified.
func Quantize(values []float64, spec Spec) ([]int64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: index %d is %v", ErrNonFinite, i, v)
		}
	}

	buf := make([]float64, len(values))
	copy(buf, values)

	if spec.Center && len(buf) > 0 {
		m := mean(buf)
		for i := range buf {
			buf[i] -= m
		}
	}

	if spec.Normalize {
		if peak := mathutil.MaxAbs(buf); peak > 0 {
			f64.Scale(buf, buf, 1/peak)
		}
	}

	f64.Scale(buf, buf, spec.Scale)

	lo, hi := spec.Encoding.Range()
	out := make([]int64, len(buf))
	for i, v := range buf {
		r := math.RoundToEven(v)
		if r < float64(lo) || r > float64(hi) {
			return nil, fmt.Errorf("%w: index %d = %.3f, %s range is [%d, %d]",
				ErrRangeOverflow, i, r, spec.Encoding, lo, hi)
		}
		out[i] = int64(r)
	}

	return out, nil
}

// mean averages s with a compensated sum in a fixed order, so the result
// does not depend on which vector unit the host has.
func mean(s []float64) float64 {
	return floats.SumCompensated(s) / float64(len(s))
}
