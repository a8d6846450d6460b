// Package registry declares every lookup table and drives their generation.
package registry

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/tphakala/go-lutgen/internal/quantize"
	"github.com/tphakala/go-lutgen/internal/synth"
)

// Common errors returned by the registry.
var (
	// ErrDuplicateName indicates two specs share a table name.
	ErrDuplicateName = errors.New("duplicate table name")

	// ErrUnknownTable indicates a selected name has no spec.
	ErrUnknownTable = errors.New("unknown table")

	// ErrLengthMismatch indicates a generator returned the wrong number of samples.
	ErrLengthMismatch = errors.New("table length mismatch")

	// ErrInvalidTableSpec indicates a spec without a name or generator.
	ErrInvalidTableSpec = errors.New("invalid table spec")
)

// Group is the family a table belongs to. Emitters use it to pick the
// declaration style of the generated constant.
type Group string

// Table groups.
const (
	GroupLookup       Group = "lookup"
	GroupLookupSigned Group = "lookup_signed"
	GroupLookup32     Group = "lookup_32"
	GroupWaveshaper   Group = "waveshaper"
	GroupWaveform     Group = "waveform"
	GroupFFT          Group = "fft"
)

// TableSpec declares one table: its curve, expected length and quantization.
type TableSpec struct {
	Name   string
	Group  Group
	Length int
	Quant  quantize.Spec
	Synth  func(synth.Context) []float64
}

func (s TableSpec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTableSpec)
	}
	if s.Synth == nil {
		return fmt.Errorf("%w: %s has no generator", ErrInvalidTableSpec, s.Name)
	}
	if s.Length <= 0 {
		return fmt.Errorf("%w: %s has length %d", ErrInvalidTableSpec, s.Name, s.Length)
	}
	if err := s.Quant.Validate(); err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	return nil
}

// Registry is an ordered, name-unique set of table specs.
type Registry struct {
	specs []TableSpec
	index map[string]int
}

// New builds a registry from specs, keeping their order.
func New(specs ...TableSpec) (*Registry, error) {
	r := &Registry{
		specs: make([]TableSpec, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}
	for _, s := range specs {
		if err := s.validate(); err != nil {
			return nil, err
		}
		if _, ok := r.index[s.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, s.Name)
		}
		r.index[s.Name] = len(r.specs)
		r.specs = append(r.specs, s)
	}
	return r, nil
}

// Len returns the number of specs.
func (r *Registry) Len() int {
	return len(r.specs)
}

// Names returns the table names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.specs))
	for i, s := range r.specs {
		names[i] = s.Name
	}
	return names
}

// Spec returns the spec registered under name.
func (r *Registry) Spec(name string) (TableSpec, bool) {
	i, ok := r.index[name]
	if !ok {
		return TableSpec{}, false
	}
	return r.specs[i], true
}

// Select returns a registry restricted to names. Registry order is kept
// regardless of the order of names.
func (r *Registry) Select(names ...string) (*Registry, error) {
	keep := make([]int, 0, len(names))
	for _, name := range names {
		i, ok := r.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
		}
		if !slices.Contains(keep, i) {
			keep = append(keep, i)
		}
	}
	slices.Sort(keep)

	specs := make([]TableSpec, len(keep))
	for j, i := range keep {
		specs[j] = r.specs[i]
	}
	return New(specs...)
}

// Options configures a generation run.
type Options struct {
	// Parallel computes tables concurrently.
	Parallel bool

	// Workers bounds concurrency when Parallel is set. Zero means GOMAXPROCS.
	Workers int
}

// Generate synthesizes and quantizes every table. Results are returned in
// registry order and do not depend on Options.
func (r *Registry) Generate(ctx synth.Context, opts Options) ([]Table, error) {
	out := make([]Table, len(r.specs))

	if !opts.Parallel {
		for i, s := range r.specs {
			t, err := build(ctx, s)
			if err != nil {
				return nil, err
			}
			out[i] = t
		}
		return out, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i, s := range r.specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := build(ctx, s)
			if err != nil {
				return err
			}
			out[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// build runs one spec end to end.
func build(ctx synth.Context, s TableSpec) (Table, error) {
	values := s.Synth(ctx)
	if len(values) != s.Length {
		return Table{}, fmt.Errorf("table %s: %w: got %d samples, want %d",
			s.Name, ErrLengthMismatch, len(values), s.Length)
	}

	q, err := quantize.Quantize(values, s.Quant)
	if err != nil {
		return Table{}, fmt.Errorf("table %s: %w", s.Name, err)
	}

	return Table{
		Name:     s.Name,
		Group:    s.Group,
		Encoding: s.Quant.Encoding,
		Values:   q,
	}, nil
}
