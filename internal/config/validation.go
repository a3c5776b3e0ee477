package config

import (
	"fmt"
	"strings"
)

const (
	maxCount       = 10000
	maxConcurrency = 64
)

// ValidationError holds all validation failures for a config file.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: %s", strings.Join(e.Errors, "; "))
}

// Validate checks cfg for correctness, reporting every failure at once.
func Validate(cfg *FileConfig) error {
	var errs []string

	if err := validateFormat(cfg.Format); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.Count < 1 || cfg.Count > maxCount {
		errs = append(errs, fmt.Sprintf("count: %d out of range [1, %d]", cfg.Count, maxCount))
	}
	if cfg.Concurrency < 1 || cfg.Concurrency > maxConcurrency {
		errs = append(errs, fmt.Sprintf("concurrency: %d out of range [1, %d]", cfg.Concurrency, maxConcurrency))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func validateFormat(f string) error {
	switch f {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("format: invalid value %q (must be text or json)", f)
	}
}
