package fft

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-lutgen/internal/testutil"
)

func TestHanningWindow(t *testing.T) {
	for _, size := range CanonicalSizes() {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			w, err := HanningWindow(size)
			require.NoError(t, err)
			require.Len(t, w, size)
			testutil.AssertAllInRange(t, w, 0, 1)
			assert.InDelta(t, 0.0, w[0], 1e-15)
			assert.InDelta(t, 1.0, w[size/2], 1e-15)
			for i := 1; i < size/2; i++ {
				assert.InDelta(t, w[i], w[size-i], testutil.WindowTolerance, "periodic symmetry at %d", i)
			}
		})
	}

	_, err := HanningWindow(100)
	require.ErrorIs(t, err, ErrNonCanonicalSize)
}

func TestWindowBank(t *testing.T) {
	bank, err := NewWindowBank()
	require.NoError(t, err)

	for _, size := range CanonicalSizes() {
		w, err := bank.Window(size)
		require.NoError(t, err)
		require.Len(t, w, size)
		testutil.AssertIntsInRange(t, w, 0, 32767)
		assert.Equal(t, int16(32767), w[size/2])
		assert.Equal(t, int16(0), w[0])

		want := int16(math.RoundToEven(0.5 * (1 - math.Cos(2*math.Pi*float64(size/4)/float64(size))) * windowScale))
		assert.Equal(t, want, w[size/4], "quarter point of %d", size)
	}
}

// TestWindowBank_Apply tests length dispatch and the Q15 product.
func TestWindowBank_Apply(t *testing.T) {
	bank, err := NewWindowBank()
	require.NoError(t, err)

	buf := make([]int16, 64)
	for i := range buf {
		buf[i] = 32767
	}
	require.NoError(t, bank.Apply(buf))

	w, err := bank.Window(64)
	require.NoError(t, err)
	for i := range buf {
		assert.Equal(t, int16((int32(32767)*int32(w[i]))>>15), buf[i])
	}
	assert.Equal(t, int16(0), buf[0])
	assert.Equal(t, int16(32766), buf[32])
}

func TestWindowBank_ApplyNonCanonical(t *testing.T) {
	bank, err := NewWindowBank()
	require.NoError(t, err)

	buf := []int16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	err = bank.Apply(buf)
	require.ErrorIs(t, err, ErrNonCanonicalSize)
	assert.Equal(t, []int16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, buf)

	_, err = bank.Window(4096)
	require.ErrorIs(t, err, ErrNonCanonicalSize)
}
