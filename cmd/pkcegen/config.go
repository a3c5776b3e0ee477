package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/revittco/pkcegen/internal/config"
	"github.com/revittco/pkcegen/internal/pkce"
)

// Config holds the merged environment, file, and flag settings.
type Config struct {
	ConfigFile  string     // path to pkcegen.yaml
	Format      string     // "text" or "json"
	Count       int        // pairs emitted by `pair`
	Concurrency int        // batch worker limit
	Strict      bool       // reject non-RFC verifiers in `challenge`
	LogLevel    slog.Level // slog level
}

// defaultConfigPath returns ~/.pkcegen/pkcegen.yaml, falling back to
// a CWD-relative path if the home directory can't be resolved.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pkcegen.yaml"
	}
	return filepath.Join(home, ".pkcegen", "pkcegen.yaml")
}

func loadConfig() (*Config, error) {
	path, explicit := os.LookupEnv("PKCEGEN_CONFIG")
	if !explicit || path == "" {
		path, explicit = defaultConfigPath(), false
	}

	fc, err := config.LoadFile(path, !explicit)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ConfigFile:  path,
		Format:      envOr("PKCEGEN_FORMAT", fc.Format),
		Count:       fc.Count,
		Concurrency: fc.Concurrency,
		Strict:      fc.Strict,
		LogLevel:    parseLogLevel(envOr("PKCEGEN_LOG_LEVEL", "info")),
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// parseLogLevel accepts slog level names in any case, including offsets
// like "warn+2". Anything else falls back to info.
func parseLogLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// parseArgs applies --key=value flags to cfg, revalidates, and returns the
// remaining positional arguments. An argument counts as a flag only when it
// starts with "--" and either carries "=" or is shorter than any verifier or
// challenge; "=" is outside the base64url and RFC 7636 alphabets. Everything
// after a bare "--" is positional.
func parseArgs(cfg *Config, args []string) ([]string, error) {
	var rest []string
	for i, arg := range args {
		if arg == "--" {
			rest = append(rest, args[i+1:]...)
			break
		}
		if !isFlag(arg) {
			rest = append(rest, arg)
			continue
		}
		if err := applyFlag(cfg, arg); err != nil {
			return nil, err
		}
	}

	err := config.Validate(&config.FileConfig{
		Format:      cfg.Format,
		Count:       cfg.Count,
		Concurrency: cfg.Concurrency,
		Strict:      cfg.Strict,
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

func isFlag(arg string) bool {
	if !strings.HasPrefix(arg, "--") {
		return false
	}
	return strings.Contains(arg, "=") || len(arg) < pkce.EncodedLen
}

func applyFlag(cfg *Config, arg string) error {
	if v, ok := strings.CutPrefix(arg, "--format="); ok {
		cfg.Format = v
		return nil
	}
	if v, ok := strings.CutPrefix(arg, "--count="); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid --count: %w", err)
		}
		cfg.Count = n
		return nil
	}
	if v, ok := strings.CutPrefix(arg, "--concurrency="); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid --concurrency: %w", err)
		}
		cfg.Concurrency = n
		return nil
	}
	if arg == "--strict" {
		cfg.Strict = true
		return nil
	}
	return fmt.Errorf("unknown flag: %s (use --name=value, or -- before arguments starting with --)", arg)
}
