package synth

import (
	"container/heap"
	"math"
	"math/bits"
	"slices"
)

// fmFrequencyRatios are the operator ratios the FM quantizer snaps to.
var fmFrequencyRatios = []float64{
	0.125, 0.25, 0.5, 0.5 * math.Pow(2, 16/1200.0),
	math.Sqrt2 / 2, math.Pi / 4, 1.0, 1.0 * math.Pow(2, 16/1200.0), math.Sqrt2,
	math.Pi / 2, 7.0 / 4, 2, 2 * math.Pow(2, 16/1200.0), 9.0 / 4, 11.0 / 4,
	2 * math.Sqrt2, 3, math.Pi, math.Sqrt(3) * 2, 4, math.Sqrt2 * 3,
	math.Pi * 3 / 2, 5, math.Sqrt2 * 4, 8,
}

// FMRatioToPitch maps a frequency ratio to the quantizer's log scale:
// 256 steps per semitone, ratio 1.0 at 16384.
func FMRatioToPitch(ratio float64) float64 {
	return fmCentsPerOctave*math.Log2(ratio) + fmOffset
}

// FMFrequencyQuantizer returns a monotonic breakpoint table that snaps a
// linear-interpolation lookup to the nearest musical FM ratio.
//
// Every ratio is repeated three times so that interpolation dwells on it,
// then the widest gap between neighbours is bisected until the length is a
// power of two.
func FMFrequencyQuantizer(Context) []float64 {
	seed := make([]float64, 0, len(fmFrequencyRatios)*fmReplicas)
	for _, ratio := range fmFrequencyRatios {
		p := FMRatioToPitch(ratio)
		for range fmReplicas {
			seed = append(seed, p)
		}
	}
	return bisectToPowerOfTwo(seed)
}

// FMFrequencyQuantizerSize is the table length for the built-in ratio list.
func FMFrequencyQuantizerSize() int {
	return nextPowerOfTwo(len(fmFrequencyRatios) * fmReplicas)
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// gap is the interval between two neighbouring breakpoints.
type gap struct {
	lo, hi float64
}

func (g gap) width() float64 { return g.hi - g.lo }

// gapHeap pops the widest gap. Breakpoints are sorted, so among gaps of
// equal non-zero width the smallest lo is the leftmost one.
type gapHeap []gap

func (h gapHeap) Len() int { return len(h) }

func (h gapHeap) Less(i, j int) bool {
	wi, wj := h[i].width(), h[j].width()
	if wi != wj {
		return wi > wj
	}
	return h[i].lo < h[j].lo
}

func (h gapHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *gapHeap) Push(x any) { *h = append(*h, x.(gap)) }

func (h *gapHeap) Pop() any {
	old := *h
	n := len(old)
	g := old[n-1]
	*h = old[:n-1]
	return g
}

// bisectToPowerOfTwo inserts midpoints into the widest gaps of the sorted
// breakpoints until their count is a power of two. Every insertion adds
// exactly one point, so the loop runs target-len(points) times.
func bisectToPowerOfTwo(points []float64) []float64 {
	out := append([]float64(nil), points...)
	target := nextPowerOfTwo(len(points))
	if len(points) < 2 || len(points) == target {
		return out
	}

	h := make(gapHeap, 0, target)
	for i := 1; i < len(points); i++ {
		h = append(h, gap{lo: points[i-1], hi: points[i]})
	}
	heap.Init(&h)

	for len(out) < target {
		g := heap.Pop(&h).(gap)
		mid := (g.lo + g.hi) / 2
		heap.Push(&h, gap{lo: g.lo, hi: mid})
		heap.Push(&h, gap{lo: mid, hi: g.hi})
		out = append(out, mid)
	}

	// A midpoint always lands between its neighbours, so sorting restores
	// the insertion order.
	slices.Sort(out)
	return out
}
