package main

import (
	"fmt"
	"hash/crc32"
	"io"
	"text/tabwriter"

	lutgen "github.com/tphakala/go-lutgen"
)

// summaryEmitter prints one line per table: name, group, encoding, length,
// value range and the CRC-32 of the little-endian image.
type summaryEmitter struct {
	w      io.Writer
	tw     *tabwriter.Writer
	header bool
	count  int
}

func newSummaryEmitter(w io.Writer, format string) *summaryEmitter {
	s := &summaryEmitter{w: w}
	if format == formatTable {
		s.tw = tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPadChar, 0)
		s.w = s.tw
	}
	return s
}

func (s *summaryEmitter) Emit(t lutgen.Table) error {
	if !s.header {
		if _, err := fmt.Fprintln(s.w, "name\tgroup\tencoding\tlength\tmin\tmax\tcrc32"); err != nil {
			return err
		}
		s.header = true
	}

	image, err := t.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(s.w, "%s\t%s\t%s\t%d\t%d\t%d\t%08x\n",
		t.Name, t.Group, t.Encoding, t.Len(), t.Min(), t.Max(), crc32.ChecksumIEEE(image))
	if err != nil {
		return err
	}
	s.count++
	return nil
}

// Flush writes buffered aligned output.
func (s *summaryEmitter) Flush() error {
	if s.tw == nil {
		return nil
	}
	return s.tw.Flush()
}
