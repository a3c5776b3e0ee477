package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("empty file uses defaults", func(t *testing.T) {
		cfg, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := Parse([]byte("format: json\ncount: 25\nconcurrency: 8\nstrict: true\n"))
		require.NoError(t, err)
		assert.Equal(t, &FileConfig{Format: "json", Count: 25, Concurrency: 8, Strict: true}, cfg)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("format: [json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})

	t.Run("collects all validation failures", func(t *testing.T) {
		_, err := Parse([]byte("format: xml\ncount: 0\nconcurrency: 100\n"))
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Len(t, ve.Errors, 3)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing optional file", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(dir, "absent.yaml"), true)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing required file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "absent.yaml"), false)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(dir, "pkcegen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("count: 3\n"), 0o600))

		cfg, err := LoadFile(path, false)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Count)
		assert.Equal(t, DefaultFormat, cfg.Format)
	})
}
