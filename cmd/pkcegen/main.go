package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pkcegen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	// Parse subcommand from args
	subcmd := "pair"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		subcmd = args[0]
		args = args[1:]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	args, err = parseArgs(cfg, args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	switch subcmd {
	case "verifier":
		return cmdVerifier(stdout)
	case "challenge":
		return cmdChallenge(cfg, args, stdin, stdout)
	case "pair":
		return cmdPair(cfg, stdout)
	case "verify":
		return cmdVerify(args, stdout)
	case "version":
		_, err := fmt.Fprintln(stdout, version)
		return err
	default:
		return fmt.Errorf("unknown command: %s\nUsage: pkcegen [verifier|challenge|pair|verify|version]", subcmd)
	}
}
