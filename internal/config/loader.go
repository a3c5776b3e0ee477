// Package config loads the optional pkcegen YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the file omits a key.
const (
	DefaultFormat      = "text"
	DefaultCount       = 1
	DefaultConcurrency = 4
)

// FileConfig represents the top-level pkcegen.yaml structure.
type FileConfig struct {
	Format      string `yaml:"format"`      // "text" or "json"
	Count       int    `yaml:"count"`       // default pair count
	Concurrency int    `yaml:"concurrency"` // batch worker limit
	Strict      bool   `yaml:"strict"`      // validate verifiers before hashing
}

// Default returns a FileConfig with every default applied.
func Default() *FileConfig {
	return &FileConfig{
		Format:      DefaultFormat,
		Count:       DefaultCount,
		Concurrency: DefaultConcurrency,
	}
}

// LoadFile reads, parses, and validates a YAML config file.
// A missing file yields the defaults when optional is true.
func LoadFile(path string, optional bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates YAML config data.
func Parse(data []byte) (*FileConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
