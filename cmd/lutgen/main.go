// Command lutgen generates the fixed-point lookup tables for one firmware
// sample rate and prints a summary of each table.
//
// Usage:
//
//	SAMPLE_RATE=48000 lutgen
//	lutgen -rate 32000 -tables svf_cutoff,svf_damp
//	lutgen -rate 48000 -wav out/          # also write each table as a WAV file
//	lutgen -rate 48000 -format tsv        # machine-readable summary
//	lutgen -rate 48000 -list              # print table names only
//
// The sample rate comes from the SAMPLE_RATE environment variable unless
// -rate is given. Any error aborts before a single table is written.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tphakala/simd/cpu"
	"golang.org/x/term"

	lutgen "github.com/tphakala/go-lutgen"
	"github.com/tphakala/go-lutgen/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", 0, "Sample rate in Hz (overrides SAMPLE_RATE)")
	tables := flag.String("tables", "", "Comma-separated table names (default: all)")
	parallel := flag.Bool("parallel", false, "Generate tables concurrently")
	workers := flag.Int("workers", 0, "Concurrency bound for -parallel (0 = GOMAXPROCS)")
	wavDir := flag.String("wav", "", "Directory to write one WAV file per table")
	format := flag.String("format", formatAuto, "Summary format: auto, table, tsv")
	list := flag.Bool("list", false, "Print table names and exit")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	cfg, err := loadConfig(*rate)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tables":
			cfg.Tables = splitList(*tables)
		case "parallel":
			cfg.Parallel = *parallel
		case "workers":
			cfg.Workers = *workers
		}
	})

	if *list {
		names, err := lutgen.TableNames(cfg.SampleRate)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(names, "\n"))
		return nil
	}

	summaryFormat, err := resolveFormat(*format, os.Stdout)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Sample rate: %d Hz", cfg.SampleRate)
		if len(cfg.Tables) > 0 {
			log.Printf("Tables: %s", strings.Join(cfg.Tables, ", "))
		} else {
			log.Printf("Tables: all")
		}
		if cfg.Parallel {
			log.Printf("Parallel: enabled (workers=%d)", cfg.Workers)
		} else {
			log.Printf("Parallel: disabled")
		}
		log.Printf("SIMD: %s", cpu.Info())
	}

	summary := newSummaryEmitter(os.Stdout, summaryFormat)
	emitters := multiEmitter{summary}
	if *wavDir != "" {
		w, err := newWAVEmitter(*wavDir, cfg.SampleRate)
		if err != nil {
			return err
		}
		emitters = append(emitters, w)
	}

	start := time.Now()
	if err := lutgen.Run(cfg, emitters); err != nil {
		return err
	}
	if err := summary.Flush(); err != nil {
		return err
	}

	if *verbose {
		log.Printf("Generated %d tables in %v", summary.count, time.Since(start).Round(time.Microsecond))
		if *wavDir != "" {
			log.Printf("WAV files written to %s", *wavDir)
		}
	}
	return nil
}

// loadConfig reads the environment. A positive rate from -rate replaces
// SAMPLE_RATE, which is then ignored even when malformed.
func loadConfig(rate int) (*lutgen.Config, error) {
	env, err := config.LoadWithRate(rate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", lutgen.ErrInvalidConfig, err)
	}
	return &lutgen.Config{
		SampleRate: env.SampleRate,
		Tables:     env.Tables,
		Parallel:   env.Parallel,
		Workers:    env.Workers,
	}, nil
}

// resolveFormat picks the summary layout. Auto aligns columns for a
// terminal and falls back to TSV when output is piped.
func resolveFormat(format string, out *os.File) (string, error) {
	switch format {
	case formatTable, formatTSV:
		return format, nil
	case formatAuto:
		if term.IsTerminal(int(out.Fd())) {
			return formatTable, nil
		}
		return formatTSV, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatAuto, formatTable, formatTSV)
	}
}

func splitList(s string) []string {
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// multiEmitter fans each table out to several emitters in order.
type multiEmitter []lutgen.Emitter

func (m multiEmitter) Emit(t lutgen.Table) error {
	for _, e := range m {
		if err := e.Emit(t); err != nil {
			return err
		}
	}
	return nil
}
