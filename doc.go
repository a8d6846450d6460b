// Package lutgen generates the fixed-point lookup tables embedded in a
// real-time DSP synthesizer engine.
//
// Every continuous formula the engine would otherwise evaluate per sample
// (oscillator phase increments, envelope speeds, filter coefficients,
// waveshaper transfer curves, single-cycle waveforms, FFT permutations and
// windows) is computed offline, quantized to an exact integer encoding and
// handed to an [Emitter] that writes it out as a constant.
//
// # Quick Start
//
// Generate every table for a 48 kHz build:
//
//	tables, err := lutgen.GenerateAt(lutgen.Rate48k)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, t := range tables {
//	    fmt.Println(t.Name, t.Encoding, len(t.Values))
//	}
//
// Stream a subset to an emitter:
//
//	cfg := &lutgen.Config{
//	    SampleRate: lutgen.Rate32k,
//	    Tables:     []string{"svf_cutoff", "svf_damp", "svf_scale"},
//	}
//	err := lutgen.Run(cfg, lutgen.EmitterFunc(func(t lutgen.Table) error {
//	    return writeConstant(t)
//	}))
//
// # Sample Rates
//
// Tables depend on the sample rate only through a small set of derived
// values (Nyquist frequency, highest MIDI note below Nyquist, phase
// increment per Hz). The firmware is built for a fixed set of rates;
// [SupportedSampleRates] lists them and any other rate is rejected.
//
// # Encodings
//
//   - [Signed16]: symmetric Q15 in [-32767, 32767]. Waveshapers, windows.
//   - [Unsigned16]: [0, 65535]. Coefficients, envelopes, the FM quantizer.
//   - [Unsigned32]: phase increments, which exceed the signed 32-bit range.
//
// Values are rounded to nearest with ties to even. A value that does not
// fit its encoding aborts generation; nothing is ever clamped silently.
//
// # Determinism
//
// Generation is a pure function of the configuration. Setting
// [Config.Parallel] computes tables concurrently but yields byte-identical
// output in the same order.
//
// # FFT Support
//
// The shared bit-reversal table covers the largest transform. Smaller
// transforms walk it with the stride returned by [BitReversalStride].
// [NewWindowBank] precomputes a Hanning window per transform size and
// applies the right one based on buffer length.
package lutgen
