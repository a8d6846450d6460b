// Package config loads generator settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvSampleRate = "SAMPLE_RATE"
	EnvParallel   = "LUTGEN_PARALLEL"
	EnvWorkers    = "LUTGEN_WORKERS"
	EnvTables     = "LUTGEN_TABLES"
)

var (
	// ErrMissingSampleRate indicates SAMPLE_RATE is unset or empty.
	ErrMissingSampleRate = errors.New("SAMPLE_RATE is not set")

	// ErrInvalidValue indicates an environment variable that does not parse.
	ErrInvalidValue = errors.New("invalid environment value")
)

// Config holds generator settings read from the environment.
type Config struct {
	SampleRate int      // Hz, required
	Parallel   bool     // generate tables concurrently
	Workers    int      // concurrency bound, 0 for GOMAXPROCS
	Tables     []string // subset of tables to generate, empty for all
}

// Load reads the configuration. SAMPLE_RATE is required; the other
// variables fall back to sequential generation of every table.
func Load() (Config, error) {
	return LoadWithRate(0)
}

// LoadWithRate is Load with a sample rate chosen by the caller. A positive
// rate replaces SAMPLE_RATE, which is then not read at all.
func LoadWithRate(rate int) (Config, error) {
	if rate <= 0 {
		var err error
		if rate, err = envSampleRate(); err != nil {
			return Config{}, err
		}
	}

	parallel, err := envBool(EnvParallel, false)
	if err != nil {
		return Config{}, err
	}
	workers, err := envInt(EnvWorkers, 0)
	if err != nil {
		return Config{}, err
	}

	return Config{
		SampleRate: rate,
		Parallel:   parallel,
		Workers:    workers,
		Tables:     envList(EnvTables),
	}, nil
}

func envSampleRate() (int, error) {
	raw := os.Getenv(EnvSampleRate)
	if raw == "" {
		return 0, ErrMissingSampleRate
	}
	rate, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvSampleRate, raw)
	}
	return rate, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	return b, nil
}

// envList splits a comma-separated variable, dropping empty items.
func envList(key string) []string {
	var out []string
	for item := range strings.SplitSeq(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
