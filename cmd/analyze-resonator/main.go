// Command analyze-resonator prints the resonator design for every MIDI note
// at one sample rate: cutoff, recursion coefficient, peak gain and the
// gain compensation stored in the scale table.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tphakala/go-lutgen/internal/filter"
	"github.com/tphakala/go-lutgen/internal/quantize"
	"github.com/tphakala/go-lutgen/internal/synth"
)

const (
	defaultSampleRate = 48000
	defaultNoteStep   = 12
	maxNote           = filter.ResonatorSize - 1
)

func main() {
	rate := flag.Int("rate", defaultSampleRate, "Sample rate in Hz")
	step := flag.Int("step", defaultNoteStep, "Print every Nth note")
	flag.Parse()

	if *step < 1 {
		log.Fatalf("step must be at least 1, got %d", *step)
	}

	ctx, err := synth.NewContext(*rate)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Resonator Design ===")
	fmt.Printf("Sample rate: %d Hz (Nyquist %.0f Hz, highest note %d)\n\n",
		ctx.SampleRate, ctx.Nyquist, ctx.MaxMIDINote)
	fmt.Printf("%4s  %9s  %10s  %8s  %12s  %8s  %6s\n",
		"note", "cutoff", "2cos(θ)", "coef", "peak gain", "scale", "clamp")

	clamped := 0
	for note := 0; note <= maxNote; note += *step {
		d := filter.DesignResonator(ctx, note)
		mark := ""
		if d.Scale == filter.ResonatorMinScale || d.Scale == filter.ResonatorMaxScale {
			mark = "*"
			clamped++
		}
		fmt.Printf("%4d  %9.6f  %10.6f  %8.0f  %12.3f  %8.3f  %6s\n",
			d.Note, d.Cutoff, d.Coefficient, d.Coefficient*quantize.Q15, d.PeakGain, d.Scale, mark)
	}

	fmt.Printf("\n%d of the printed notes hit the scale clamp [%.0f, %.0f]\n",
		clamped, filter.ResonatorMinScale, filter.ResonatorMaxScale)
}
