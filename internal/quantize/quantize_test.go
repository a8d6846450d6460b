package quantize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-lutgen/internal/testutil"
)

func TestEncoding_Range(t *testing.T) {
	tests := []struct {
		enc    Encoding
		lo, hi int64
		bytes  int
		signed bool
	}{
		{Signed16, -32767, 32767, 2, true},
		{Unsigned16, 0, 65535, 2, false},
		{Signed32, -2147483648, 2147483647, 4, true},
		{Unsigned32, 0, 4294967295, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.enc.String(), func(t *testing.T) {
			lo, hi := tt.enc.Range()
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
			assert.Equal(t, tt.bytes, tt.enc.Bytes())
			assert.Equal(t, tt.signed, tt.enc.Signed())
			assert.True(t, tt.enc.Valid())
		})
	}

	assert.False(t, Encoding(42).Valid())
	assert.Equal(t, "Encoding(42)", Encoding(42).String())
}

// TestQuantize_RoundsToNearest tests rounding instead of truncation.
func TestQuantize_RoundsToNearest(t *testing.T) {
	got, err := Quantize([]float64{0.4, 0.6, 1.5, 2.5, -0.6, 99.99}, Spec{Encoding: Signed16, Scale: 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 2, -1, 100}, got)
}

// TestQuantize_Scale tests direct scaling without recentring.
func TestQuantize_Scale(t *testing.T) {
	got, err := Quantize([]float64{0, 0.5, 1}, Spec{Encoding: Unsigned16, Scale: Q15})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 16384, 32767}, got)
}

// TestQuantize_CenterNormalize tests the waveshaper mapping onto ±32766.
func TestQuantize_CenterNormalize(t *testing.T) {
	values := []float64{1, 2, 3}
	got, err := Quantize(values, Spec{Encoding: Signed16, Scale: WaveshaperScale, Center: true, Normalize: true})
	require.NoError(t, err)
	assert.Equal(t, []int64{-32766, 0, 32766}, got)
	assert.Equal(t, []float64{1, 2, 3}, values, "input must not be modified")
}

// TestQuantize_NormalizeWithoutCenter keeps the offset.
func TestMean_OrderIndependent(t *testing.T) {
	orders := [][]float64{
		{1e16, 1, -1e16, 1},
		{1, 1e16, 1, -1e16},
		{1, -1e16, 1, 1e16},
		{-1e16, 1e16, 1, 1},
	}
	for _, s := range orders {
		assert.InDelta(t, 0.5, mean(s), 0, "order %v", s)
	}
}

func TestQuantize_CenterIsReproducible(t *testing.T) {
	values := make([]float64, 257)
	for i := range values {
		values[i] = math.Tanh(5 * (float64(i)/128 - 1))
	}
	spec := Spec{Encoding: Signed16, Scale: 32766, Center: true, Normalize: true}

	first, err := Quantize(values, spec)
	require.NoError(t, err)
	for range 8 {
		again, err := Quantize(values, spec)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestQuantize_NormalizeWithoutCenter(t *testing.T) {
	got, err := Quantize([]float64{-0.5, 0.25, 0.5}, Spec{Encoding: Signed16, Scale: 100, Normalize: true})
	require.NoError(t, err)
	assert.Equal(t, []int64{-100, 50, 100}, got)
}

// TestQuantize_NormalizeZero leaves an all-zero curve at zero.
func TestQuantize_NormalizeZero(t *testing.T) {
	got, err := Quantize([]float64{0, 0, 0}, Spec{Encoding: Signed16, Scale: Q15, Center: true, Normalize: true})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, got)
}

// TestQuantize_Overflow tests that out-of-range values fail for every encoding.
func TestQuantize_Overflow(t *testing.T) {
	tests := []struct {
		name  string
		enc   Encoding
		value float64
	}{
		{"s16 high", Signed16, 32767.6},
		{"s16 low", Signed16, -32768},
		{"u16 high", Unsigned16, 65536},
		{"u16 negative", Unsigned16, -1},
		{"s32 high", Signed32, 2147483648},
		{"s32 low", Signed32, -2147483649},
		{"u32 high", Unsigned32, 4294967296},
		{"u32 negative", Unsigned32, -0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Quantize([]float64{0, tt.value}, Spec{Encoding: tt.enc, Scale: 1})
			require.ErrorIs(t, err, ErrRangeOverflow)
			assert.Contains(t, err.Error(), "index 1")
		})
	}
}

// TestQuantize_Limits tests the extreme representable values pass.
func TestQuantize_Limits(t *testing.T) {
	for _, enc := range []Encoding{Signed16, Unsigned16, Signed32, Unsigned32} {
		lo, hi := enc.Range()
		got, err := Quantize([]float64{float64(lo), float64(hi)}, Spec{Encoding: enc, Scale: 1})
		require.NoError(t, err, enc.String())
		assert.Equal(t, []int64{lo, hi}, got)
	}
}

func TestQuantize_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Quantize([]float64{1, v}, Spec{Encoding: Signed32, Scale: 1})
		require.ErrorIs(t, err, ErrNonFinite)
	}
}

func TestQuantize_InvalidSpec(t *testing.T) {
	_, err := Quantize([]float64{1}, Spec{Encoding: Unsigned16, Scale: 0})
	require.ErrorIs(t, err, ErrInvalidSpec)

	_, err = Quantize([]float64{1}, Spec{Encoding: Encoding(-1), Scale: 1})
	require.ErrorIs(t, err, ErrInvalidSpec)
}

func TestQuantize_Empty(t *testing.T) {
	got, err := Quantize(nil, Spec{Encoding: Signed16, Scale: Q15, Center: true, Normalize: true})
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestQuantize_Sine tests a full-scale Q15 sine stays in range.
func TestQuantize_Sine(t *testing.T) {
	values := make([]float64, 257)
	for i := range values {
		values[i] = math.Sin(2 * math.Pi * float64(i) / 256)
	}
	got, err := Quantize(values, Spec{Encoding: Signed16, Scale: Q15})
	require.NoError(t, err)
	testutil.AssertIntsInRange(t, got, -32767, 32767)
	assert.Equal(t, int64(32767), got[64])
	assert.Equal(t, int64(-32767), got[192])
}

func BenchmarkQuantize_257(b *testing.B) {
	values := make([]float64, 257)
	for i := range values {
		values[i] = math.Tanh(float64(i)/128 - 1)
	}
	spec := Spec{Encoding: Signed16, Scale: WaveshaperScale, Center: true, Normalize: true}
	for b.Loop() {
		_, _ = Quantize(values, spec)
	}
}
