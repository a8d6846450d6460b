package lutgen

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-lutgen/internal/config"
	"github.com/tphakala/go-lutgen/internal/quantize"
	"github.com/tphakala/go-lutgen/internal/registry"
	"github.com/tphakala/go-lutgen/internal/synth"
)

// Table is a generated lookup table: a name, its group, its integer
// encoding and the encoded values.
type Table = registry.Table

// Group is the family a table belongs to.
type Group = registry.Group

// Table groups.
const (
	GroupLookup       = registry.GroupLookup
	GroupLookupSigned = registry.GroupLookupSigned
	GroupLookup32     = registry.GroupLookup32
	GroupWaveshaper   = registry.GroupWaveshaper
	GroupWaveform     = registry.GroupWaveform
	GroupFFT          = registry.GroupFFT
)

// Encoding is the integer representation of a table element.
type Encoding = quantize.Encoding

// Supported encodings.
const (
	Signed16   = quantize.Signed16
	Unsigned16 = quantize.Unsigned16
	Signed32   = quantize.Signed32
	Unsigned32 = quantize.Unsigned32
)

// Common errors returned by the generator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrUnsupportedSampleRate indicates a rate outside [SupportedSampleRates].
	ErrUnsupportedSampleRate = synth.ErrUnsupportedSampleRate

	// ErrRangeOverflow indicates a table value that does not fit its encoding.
	ErrRangeOverflow = quantize.ErrRangeOverflow

	// ErrUnknownTable indicates a requested table name that does not exist.
	ErrUnknownTable = registry.ErrUnknownTable
)

// SupportedSampleRates returns the rates the firmware can be built for.
func SupportedSampleRates() []int {
	return synth.SupportedSampleRates()
}

// Config holds generator configuration.
type Config struct {
	// SampleRate is the engine's sample rate in Hz.
	SampleRate int

	// Tables restricts generation to the named tables. Empty means all.
	Tables []string

	// Parallel computes tables concurrently. Output is unchanged.
	Parallel bool

	// Workers bounds concurrency when Parallel is set. Zero means GOMAXPROCS.
	Workers int
}

// ConfigFromEnv reads SAMPLE_RATE, LUTGEN_PARALLEL, LUTGEN_WORKERS and
// LUTGEN_TABLES.
func ConfigFromEnv() (*Config, error) {
	env, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &Config{
		SampleRate: env.SampleRate,
		Tables:     env.Tables,
		Parallel:   env.Parallel,
		Workers:    env.Workers,
	}, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}
	if !synth.IsSupportedSampleRate(c.SampleRate) {
		return fmt.Errorf("%w: %w: %d Hz", ErrInvalidConfig, ErrUnsupportedSampleRate, c.SampleRate)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Emitter receives generated tables in registry order.
type Emitter interface {
	Emit(t Table) error
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(t Table) error

// Emit calls f(t).
func (f EmitterFunc) Emit(t Table) error {
	return f(t)
}

// Generate computes the configured tables.
func Generate(cfg *Config) ([]Table, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, reg, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	return reg.Generate(ctx, registry.Options{
		Parallel: cfg.Parallel,
		Workers:  cfg.Workers,
	})
}

// Run generates every configured table and then hands each one to e.
// Nothing is emitted unless every table generated successfully.
func Run(cfg *Config, e Emitter) error {
	if e == nil {
		return fmt.Errorf("%w: emitter is nil", ErrInvalidConfig)
	}

	tables, err := Generate(cfg)
	if err != nil {
		return err
	}

	for _, t := range tables {
		if err := e.Emit(t); err != nil {
			return fmt.Errorf("emit %s: %w", t.Name, err)
		}
	}
	return nil
}

// TableNames lists the tables generated at sampleRate, in emit order.
func TableNames(sampleRate int) ([]string, error) {
	cfg := &Config{SampleRate: sampleRate}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	_, reg, err := prepare(cfg)
	if err != nil {
		return nil, err
	}
	return reg.Names(), nil
}

// prepare builds the context and the (possibly restricted) registry.
func prepare(cfg *Config) (synth.Context, *registry.Registry, error) {
	ctx, err := synth.NewContext(cfg.SampleRate)
	if err != nil {
		return synth.Context{}, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	reg, err := registry.Standard(ctx)
	if err != nil {
		return synth.Context{}, nil, err
	}

	if len(cfg.Tables) > 0 {
		reg, err = reg.Select(cfg.Tables...)
		if err != nil {
			return synth.Context{}, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return ctx, reg, nil
}
