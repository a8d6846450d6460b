package registry

import (
	"strconv"

	"github.com/tphakala/go-lutgen/internal/fft"
	"github.com/tphakala/go-lutgen/internal/filter"
	"github.com/tphakala/go-lutgen/internal/mathutil"
	"github.com/tphakala/go-lutgen/internal/quantize"
	"github.com/tphakala/go-lutgen/internal/synth"
)

// Quantization presets shared by several tables.
var (
	u16Unit  = quantize.Spec{Encoding: quantize.Unsigned16, Scale: unitScale}
	u16Q15   = quantize.Spec{Encoding: quantize.Unsigned16, Scale: quantize.Q15}
	u16Exact = quantize.Spec{Encoding: quantize.Unsigned16, Scale: quantize.Q15Exact}
	u16Full  = quantize.Spec{Encoding: quantize.Unsigned16, Scale: quantize.FullScale16}
	s16Q15   = quantize.Spec{Encoding: quantize.Signed16, Scale: quantize.Q15}
	u32Unit  = quantize.Spec{Encoding: quantize.Unsigned32, Scale: unitScale}

	shaper = quantize.Spec{
		Encoding:  quantize.Signed16,
		Scale:     quantize.WaveshaperScale,
		Center:    true,
		Normalize: true,
	}

	// Sine fold is already symmetric; centering would shift its zero.
	shaperUncentered = quantize.Spec{
		Encoding:  quantize.Signed16,
		Scale:     quantize.WaveshaperScale,
		Normalize: true,
	}
)

// Standard returns the full table set for the firmware at ctx's sample rate.
func Standard(ctx synth.Context) (*Registry, error) {
	specs := make([]TableSpec, 0, 64)
	specs = append(specs, lookupSpecs(ctx)...)
	specs = append(specs, signedSpecs()...)
	specs = append(specs, incrementSpecs()...)
	specs = append(specs, waveshaperSpecs()...)
	specs = append(specs, waveformSpecs()...)
	specs = append(specs, fftSpecs()...)
	return New(specs...)
}

func lookupSpecs(ctx synth.Context) []TableSpec {
	lookup := func(name string, length int, q quantize.Spec, fn func(synth.Context) []float64) TableSpec {
		return TableSpec{Name: name, Group: GroupLookup, Length: length, Quant: q, Synth: fn}
	}

	return []TableSpec{
		lookup("resonator_coefficient", filter.ResonatorSize, u16Q15, filter.ResonatorCoefficients),
		lookup("resonator_scale", filter.ResonatorSize, u16Unit, filter.ResonatorScales),
		lookup("svf_cutoff", filter.SVFSize, u16Q15, filter.SVFCutoff),
		lookup("svf_damp", filter.SVFSize, u16Q15, filter.SVFDamp),
		lookup("svf_scale", filter.SVFSize, u16Q15, filter.SVFScale),
		lookup("granular_envelope", synth.GranularEnvelopeSize, u16Q15, synth.GranularEnvelope),
		lookup("granular_envelope_rate", synth.CurveSize, u16Unit, synth.GranularEnvelopeRate),
		lookup("bowing_envelope", synth.BowingEnvelopeSize(ctx), u16Unit, synth.BowingEnvelope),
		lookup("bowing_friction", synth.CurveSize, u16Exact, synth.BowingFriction),
		lookup("blowing_envelope", synth.BlowingEnvelopeSize(ctx), u16Unit, synth.BlowingEnvelope),
		lookup("flute_body_filter", synth.FluteBodyFilterSize, u16Unit, synth.FluteBodyFilter),
		lookup("fm_frequency_quantizer", synth.FMFrequencyQuantizerSize(), u16Unit, synth.FMFrequencyQuantizer),
		lookup("vco_detune", synth.CurveSize, u16Unit, synth.VCODetune),
		lookup("bell", synth.BellSize+1, u16Full, synth.BellEnvelope),
		lookup("env_linear", synth.CurveSize, u16Full, synth.EnvelopeLinear),
		lookup("env_expo", synth.CurveSize, u16Full, synth.EnvelopeExpo),
		lookup("env_log", synth.CurveSize, u16Full, synth.EnvelopeLog),
	}
}

func signedSpecs() []TableSpec {
	return []TableSpec{
		{Name: "blowing_jet", Group: GroupLookupSigned, Length: synth.CurveSize, Quant: s16Q15, Synth: synth.BlowingJet},
		{Name: "tanh", Group: GroupLookupSigned, Length: synth.CurveSize, Quant: s16Q15, Synth: synth.Tanh},
	}
}

func incrementSpecs() []TableSpec {
	specs := []TableSpec{
		{Name: "oscillator_increments", Group: GroupLookup32, Length: synth.OscillatorIncrementsSize, Quant: u32Unit, Synth: synth.OscillatorIncrements},
		{Name: "lfo_increments", Group: GroupLookup32, Length: synth.LFOIncrementsSize, Quant: u32Unit, Synth: synth.LFOIncrements},
	}
	for _, mt := range synth.EnvelopeMaxTimes {
		seconds := mt.Seconds
		specs = append(specs, TableSpec{
			Name:   envIncrementsPrefix + mt.Name,
			Group:  GroupLookup32,
			Length: synth.EnvelopeIncrementsSize,
			Quant:  u32Unit,
			Synth: func(ctx synth.Context) []float64 {
				return synth.EnvelopeIncrements(ctx, seconds)
			},
		})
	}
	return specs
}

func waveshaperSpecs() []TableSpec {
	shape := func(name string, q quantize.Spec, fn func(synth.Context) []float64) TableSpec {
		return TableSpec{Name: name, Group: GroupWaveshaper, Length: synth.CurveSize, Quant: q, Synth: fn}
	}

	return []TableSpec{
		shape("moderate_overdrive", shaper, synth.ModerateOverdrive),
		shape("overdrive", shaper, synth.Overdrive),
		shape("violent_overdrive", shaper, synth.ViolentOverdrive),
		shape("extreme_overdrive", shaper, synth.ExtremeOverdrive),
		shape("step_overdrive", shaper, synth.StepOverdrive),
		shape("violent_step_overdrive", shaper, synth.ViolentStepOverdrive),
		shape("extreme_step_overdrive", shaper, synth.ExtremeStepOverdrive),
		shape("sine_fold", shaperUncentered, synth.SineFold),
		shape("tri_fold", shaper, synth.TriangleFold),
	}
}

func waveformSpecs() []TableSpec {
	wave := func(name string, fn func(synth.Context) []float64) TableSpec {
		return TableSpec{Name: waveformPrefix + name, Group: GroupWaveform, Length: synth.WaveformSize, Quant: s16Q15, Synth: fn}
	}

	return []TableSpec{
		wave("sine", synth.Sine),
		wave("cos", synth.Cosine),
		wave("sawtooth", synth.Sawtooth),
		wave("triangle", synth.Triangle),
		wave("sine_lfo", synth.SineLFO),
		wave("triangle_lfo", synth.TriangleLFO),
		wave("ramp_up_lfo", synth.RampUpLFO),
		wave("ramp_down_lfo", synth.RampDownLFO),
	}
}

func fftSpecs() []TableSpec {
	specs := []TableSpec{{
		Name:   "bitrev_table",
		Group:  GroupFFT,
		Length: fft.HalfMaxSize,
		Quant:  u16Unit,
		Synth: func(synth.Context) []float64 {
			table := fft.BitReversalTable()
			out := make([]float64, len(table))
			for i, v := range table {
				out[i] = float64(v)
			}
			return out
		},
	}}

	for _, size := range fft.CanonicalSizes() {
		specs = append(specs, TableSpec{
			Name:   windowPrefix + strconv.Itoa(size),
			Group:  GroupFFT,
			Length: size,
			Quant:  fft.WindowSpec,
			Synth: func(synth.Context) []float64 {
				return mathutil.PeriodicHann(size)
			},
		})
	}
	return specs
}
