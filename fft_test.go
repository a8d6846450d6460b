package lutgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitReversalStride(t *testing.T) {
	table := BitReversalTable()
	require.Len(t, table, 1024)

	s, err := BitReversalStride(16)
	require.NoError(t, err)
	assert.Equal(t, Stride{First: 0, Step: 128, Count: 8}, s)

	want := []int{0, 4, 2, 6, 1, 5, 3, 7}
	for k := range s.Count {
		assert.Equal(t, want[k], s.Index(table, k), "k=%d", k)
	}

	_, err = BitReversalStride(100)
	require.ErrorIs(t, err, ErrNonCanonicalSize)
}

func TestWindowBank_Apply(t *testing.T) {
	bank, err := NewWindowBank()
	require.NoError(t, err)

	buf := make([]int16, 256)
	for i := range buf {
		buf[i] = 10000
	}
	require.NoError(t, bank.Apply(buf))
	assert.Equal(t, int16(0), buf[0])
	assert.InDelta(t, 10000, buf[128], 1)

	odd := []int16{1, 2, 3}
	require.ErrorIs(t, bank.Apply(odd), ErrNonCanonicalSize)
	assert.Equal(t, []int16{1, 2, 3}, odd)
}
