package synth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-lutgen/internal/mathutil"
	"github.com/tphakala/go-lutgen/internal/testutil"
)

// TestOscillatorIncrements tests the one-octave pitch axis at every rate.
func TestOscillatorIncrements(t *testing.T) {
	for _, ctx := range allContexts(t) {
		t.Run(fmt.Sprint(ctx.SampleRate), func(t *testing.T) {
			inc := OscillatorIncrements(ctx)
			require.Len(t, inc, OscillatorIncrementsSize)
			testutil.AssertNoNaNOrInf(t, inc)
			testutil.AssertMonotonic(t, inc)

			// The last entry is exactly one octave above the first.
			testutil.AssertRelativeError(t, 2*inc[0], inc[len(inc)-1], 1e-12)

			// Every increment fits an unsigned 32-bit accumulator.
			testutil.AssertAllInRange(t, inc, 0, ctx.Excursion-1)

			f0 := mathutil.MIDIToFrequency(float64(ctx.MaxMIDINote))
			testutil.AssertRelativeError(t, ctx.Increment(f0), inc[0], 1e-12)
		})
	}
}

func TestOscillatorIncrementsSize(t *testing.T) {
	assert.Equal(t, 97, OscillatorIncrementsSize)
}

// TestLFOIncrements tests the log-spaced LFO range.
func TestLFOIncrements(t *testing.T) {
	ctx := mustContext(t, 48000)
	inc := LFOIncrements(ctx)
	require.Len(t, inc, LFOIncrementsSize)
	testutil.AssertMonotonic(t, inc)

	testutil.AssertRelativeError(t, ctx.Excursion/32/48000, inc[0], 1e-12)
	testutil.AssertRelativeError(t, ctx.Excursion*160/48000, inc[len(inc)-1], 1e-12)

	// Constant ratio: log-frequency stepping, not linear Hz.
	ratio := inc[1] / inc[0]
	for i := 2; i < len(inc); i++ {
		testutil.AssertRelativeError(t, ratio, inc[i]/inc[i-1], 1e-9)
	}
}

// TestEnvelopeIncrements tests the gamma-warped envelope-speed axis.
func TestEnvelopeIncrements(t *testing.T) {
	for _, ctx := range allContexts(t) {
		for _, mt := range EnvelopeMaxTimes {
			t.Run(fmt.Sprintf("%d/%s", ctx.SampleRate, mt.Name), func(t *testing.T) {
				inc := EnvelopeIncrements(ctx, mt.Seconds)
				require.Len(t, inc, EnvelopeIncrementsSize)
				testutil.AssertNoNaNOrInf(t, inc)

				fastest := ctx.Excursion / envelopeMinSamples
				slowest := ctx.Excursion / (mt.Seconds * float64(ctx.SampleRate))
				testutil.AssertRelativeError(t, fastest, inc[0], 1e-9)
				testutil.AssertRelativeError(t, slowest, inc[len(inc)-1], 1e-9)

				for i := 1; i < len(inc); i++ {
					require.Less(t, inc[i], inc[i-1], "increments must fall at %d", i)
				}
			})
		}
	}
}

// TestEnvelopeIncrements_DenseNearShortTimes tests the warp spends more
// entries on short durations than a linear-in-time axis would.
func TestEnvelopeIncrements_DenseNearShortTimes(t *testing.T) {
	ctx := mustContext(t, 48000)
	inc := EnvelopeIncrements(ctx, 10)

	// Segment duration in samples is Excursion/increment.
	mid := ctx.Excursion / inc[EnvelopeIncrementsSize/2]
	longest := ctx.Excursion / inc[EnvelopeIncrementsSize-1]
	assert.Less(t, mid, longest/2, "a linear time axis would put the midpoint at half the range")
}

// TestVCODetune tests the anchor and the flattening at high notes.
func TestVCODetune(t *testing.T) {
	ctx := mustContext(t, 48000)
	d := VCODetune(ctx)
	require.Len(t, d, CurveSize)
	testutil.AssertNoNaNOrInf(t, d)
	testutil.AssertMonotonic(t, d)

	assert.InDelta(t, float64(60<<7), d[vcoAnchorIndex], 1e-9)
	testutil.AssertAllInRange(t, d, 0, 65535)

	// Above middle C the oscillator runs flat of ideal pitch (i/2 * 128).
	assert.Less(t, d[256], float64(128*128))
}
