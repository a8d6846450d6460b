package lutgen

import "fmt"

// GenerateAt computes every table for sampleRate.
func GenerateAt(sampleRate int) ([]Table, error) {
	return Generate(&Config{SampleRate: sampleRate})
}

// GenerateParallelAt is GenerateAt with concurrent table generation.
func GenerateParallelAt(sampleRate int) ([]Table, error) {
	return Generate(&Config{SampleRate: sampleRate, Parallel: true})
}

// GenerateTable computes a single named table.
func GenerateTable(sampleRate int, name string) (Table, error) {
	tables, err := Generate(&Config{SampleRate: sampleRate, Tables: []string{name}})
	if err != nil {
		return Table{}, err
	}
	if len(tables) != 1 {
		return Table{}, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return tables[0], nil
}

// Collect returns an Emitter that appends every table to dst.
func Collect(dst *[]Table) Emitter {
	return EmitterFunc(func(t Table) error {
		*dst = append(*dst, t)
		return nil
	})
}
