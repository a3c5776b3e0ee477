package main

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "WARN", want: slog.LevelWarn},
		{in: "warn+2", want: slog.LevelWarn + 2},
		{in: "", want: slog.LevelInfo},
		{in: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestParseArgs(t *testing.T) {
	base := func() *Config {
		return &Config{Format: "text", Count: 1, Concurrency: 4}
	}

	t.Run("overrides", func(t *testing.T) {
		cfg := base()
		rest, err := parseArgs(cfg, []string{"--format=json", "--count=12", "--concurrency=2", "--strict"})
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, 12, cfg.Count)
		assert.Equal(t, 2, cfg.Concurrency)
		assert.True(t, cfg.Strict)
	})

	t.Run("keeps positional arguments", func(t *testing.T) {
		rest, err := parseArgs(base(), []string{"--format=json", "abc", "-", "--strict"})
		require.NoError(t, err)
		assert.Equal(t, []string{"abc", "-"}, rest)
	})

	t.Run("dash-prefixed verifier is positional", func(t *testing.T) {
		v := "----" + strings.Repeat("A", 39)
		rest, err := parseArgs(base(), []string{v})
		require.NoError(t, err)
		assert.Equal(t, []string{v}, rest)
	})

	t.Run("end of flags marker", func(t *testing.T) {
		rest, err := parseArgs(base(), []string{"--strict", "--", "--short", "--count=3"})
		require.NoError(t, err)
		assert.Equal(t, []string{"--short", "--count=3"}, rest)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			want string
		}{
			{name: "non-numeric count", args: []string{"--count=many"}, want: "invalid --count"},
			{name: "invalid format", args: []string{"--format=yaml"}, want: "config validation failed"},
			{name: "misspelled flag", args: []string{"--formt=json"}, want: "unknown flag: --formt=json"},
			{name: "space separated value", args: []string{"--count", "5"}, want: "unknown flag: --count"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := parseArgs(base(), tt.args)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.want)
			})
		}
	})
}
