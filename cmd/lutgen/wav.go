package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	lutgen "github.com/tphakala/go-lutgen"
)

// wavEmitter writes each table as a mono PCM file so curves can be
// auditioned or plotted in an audio editor.
type wavEmitter struct {
	dir        string
	sampleRate int
}

func newWAVEmitter(dir string, sampleRate int) (*wavEmitter, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &wavEmitter{dir: dir, sampleRate: sampleRate}, nil
}

func (w *wavEmitter) Emit(t lutgen.Table) error {
	path := filepath.Join(w.dir, t.Name+wavExtension)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	bitDepth := t.Encoding.Bits()
	enc := wav.NewEncoder(f, w.sampleRate, bitDepth, wavMonoChannels, wavPCMFormat)
	buf := &audio.IntBuffer{
		Data: pcmSamples(t),
		Format: &audio.Format{
			NumChannels: wavMonoChannels,
			SampleRate:  w.sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return f.Close()
}

// pcmSamples maps table values onto signed PCM. Unsigned encodings are
// shifted down by half their range so the waveform keeps its shape.
func pcmSamples(t lutgen.Table) []int {
	var offset int64
	switch t.Encoding {
	case lutgen.Unsigned16:
		offset = unsigned16Offset
	case lutgen.Unsigned32:
		offset = unsigned32Offset
	}

	out := make([]int, len(t.Values))
	for i, v := range t.Values {
		out[i] = int(v - offset)
	}
	return out
}
