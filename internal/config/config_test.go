package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvSampleRate, EnvParallel, EnvWorkers, EnvTables} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSampleRate, "48000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 48000, cfg.SampleRate)
	assert.False(t, cfg.Parallel)
	assert.Zero(t, cfg.Workers)
	assert.Empty(t, cfg.Tables)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSampleRate, " 32000 ")
	t.Setenv(EnvParallel, "true")
	t.Setenv(EnvWorkers, "4")
	t.Setenv(EnvTables, "bell, tanh,,svf_damp ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 32000, cfg.SampleRate)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"bell", "tanh", "svf_damp"}, cfg.Tables)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{"missing rate", map[string]string{}, ErrMissingSampleRate},
		{"bad rate", map[string]string{EnvSampleRate: "48k"}, ErrInvalidValue},
		{"bad parallel", map[string]string{EnvSampleRate: "48000", EnvParallel: "maybe"}, ErrInvalidValue},
		{"bad workers", map[string]string{EnvSampleRate: "48000", EnvWorkers: "four"}, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadWithRate(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"unset", ""},
		{"malformed", "abc"},
		{"different", "8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvSampleRate, tt.env)
			t.Setenv(EnvWorkers, "2")

			cfg, err := LoadWithRate(48000)
			require.NoError(t, err)
			assert.Equal(t, 48000, cfg.SampleRate)
			assert.Equal(t, 2, cfg.Workers)
		})
	}
}

func TestLoadWithRate_ZeroReadsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSampleRate, "abc")

	_, err := LoadWithRate(0)
	require.ErrorIs(t, err, ErrInvalidValue)
}
