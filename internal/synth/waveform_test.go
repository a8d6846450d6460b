package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-lutgen/internal/testutil"
)

const waveformTolerance = 1e-12

func TestWaveforms_LengthAndRange(t *testing.T) {
	shapes := map[string]func(Context) []float64{
		"sine":          Sine,
		"cosine":        Cosine,
		"triangle":      Triangle,
		"sawtooth":      Sawtooth,
		"sine_lfo":      SineLFO,
		"triangle_lfo":  TriangleLFO,
		"ramp_up_lfo":   RampUpLFO,
		"ramp_down_lfo": RampDownLFO,
	}

	for name, fn := range shapes {
		t.Run(name, func(t *testing.T) {
			y := fn(Context{})
			require.Len(t, y, WaveformSize)
			testutil.AssertNoNaNOrInf(t, y)
			testutil.AssertAllInRange(t, y, -1, 1)
		})
	}
}

// TestWaveforms_GuardWraps checks the guard sample repeats the start of
// the cycle for every periodic shape.
func TestWaveforms_GuardWraps(t *testing.T) {
	for _, fn := range []func(Context) []float64{Sine, Cosine, Triangle, Sawtooth, SineLFO, TriangleLFO} {
		y := fn(Context{})
		assert.InDelta(t, y[0], y[WaveformSize-1], waveformTolerance)
	}
}

func TestSine_Symmetry(t *testing.T) {
	sine := Sine(Context{})
	cosine := Cosine(Context{})

	assert.InDelta(t, 1.0, sine[64], waveformTolerance)
	assert.InDelta(t, -1.0, sine[192], waveformTolerance)

	for i := range 257 {
		require.InDelta(t, -sine[256-i], sine[i], waveformTolerance, "sine odd at %d", i)
		require.InDelta(t, cosine[256-i], cosine[i], waveformTolerance, "cosine even at %d", i)
		require.InDelta(t, sine[(i+64)%256], cosine[i], waveformTolerance, "quarter cycle shift at %d", i)
	}
}

func TestTriangle(t *testing.T) {
	y := Triangle(Context{})
	assert.InDelta(t, 0.0, y[0], 0)
	assert.InDelta(t, 1.0, y[64], 0)
	assert.InDelta(t, 0.0, y[128], 0)
	assert.InDelta(t, -1.0, y[192], 0)

	testutil.AssertMonotonic(t, y[:65])
	for i := range 257 {
		require.InDelta(t, -y[256-i], y[i], waveformTolerance, "index %d", i)
	}
}

func TestSawtooth(t *testing.T) {
	y := Sawtooth(Context{})
	assert.InDelta(t, 0.0, y[0], 0)
	assert.InDelta(t, 254.0/256, y[127], 0)
	assert.InDelta(t, -1.0, y[128], 0, "drops at half cycle")

	testutil.AssertMonotonic(t, y[:128])
	testutil.AssertMonotonic(t, y[128:])
	for i := range 257 {
		if i == 128 {
			continue
		}
		require.InDelta(t, -y[256-i], y[i], waveformTolerance, "index %d", i)
	}
}

func TestLFOShapes(t *testing.T) {
	sine := SineLFO(Context{})
	assert.InDelta(t, -1.0, sine[0], 0)
	assert.InDelta(t, 1.0, sine[128], 0)
	testutil.AssertMonotonic(t, sine[:129])

	tri := TriangleLFO(Context{})
	assert.InDelta(t, -1.0, tri[0], 0)
	assert.InDelta(t, 0.0, tri[64], 0)
	assert.InDelta(t, 1.0, tri[128], 0)
	testutil.AssertMonotonic(t, tri[:129])

	up := RampUpLFO(Context{})
	down := RampDownLFO(Context{})
	assert.InDelta(t, -1.0, up[0], 0)
	assert.InDelta(t, 0.0, up[128], 0)
	assert.InDelta(t, 1.0, up[256], 0)
	testutil.AssertMonotonic(t, up)
	for i := range up {
		require.InDelta(t, -up[i], down[i], 0, "index %d", i)
	}
}
