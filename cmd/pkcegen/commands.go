package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/revittco/pkcegen/internal/pkce"
)

var errChallengeMismatch = errors.New("code challenge does not match verifier")

func cmdVerifier(out io.Writer) error {
	v, err := pkce.GenerateCodeVerifier()
	if err != nil {
		return fmt.Errorf("generate verifier: %w", err)
	}
	_, err = fmt.Fprintln(out, v)
	return err
}

func cmdChallenge(cfg *Config, args []string, in io.Reader, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pkcegen challenge <verifier|->")
	}
	verifier := args[0]
	if verifier == "-" {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read verifier from stdin: %w", err)
		}
		verifier = strings.TrimRight(line, "\r\n")
	}

	if err := pkce.ValidateVerifier(verifier); err != nil {
		if cfg.Strict {
			return err
		}
		slog.Warn("verifier is not RFC 7636 compliant, hashing anyway", "err", err)
	}

	c, err := pkce.GenerateCodeChallenge(verifier)
	if err != nil {
		return fmt.Errorf("generate challenge: %w", err)
	}

	if cfg.Format == "json" {
		return writeJSON(out, map[string]string{
			"code_challenge":        c,
			"code_challenge_method": pkce.MethodS256,
		})
	}
	_, err = fmt.Fprintln(out, c)
	return err
}

func cmdPair(cfg *Config, out io.Writer) error {
	slog.Debug("generating pairs", "count", cfg.Count, "concurrency", cfg.Concurrency)

	pairs, err := pkce.GeneratePairs(context.Background(), pkce.New(), cfg.Count, cfg.Concurrency)
	if err != nil {
		return fmt.Errorf("generate pairs: %w", err)
	}

	// JSON is always an array, whatever the count.
	if cfg.Format == "json" {
		return writeJSON(out, pairs)
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(out, "code_verifier=%s\ncode_challenge=%s\ncode_challenge_method=%s\n",
			p.Verifier, p.Challenge, p.Method); err != nil {
			return err
		}
	}
	return nil
}

func cmdVerify(args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: pkcegen verify <verifier> <challenge>")
	}
	ok, err := pkce.VerifyChallenge(args[0], args[1])
	if err != nil {
		return fmt.Errorf("verify challenge: %w", err)
	}
	if !ok {
		return errChallengeMismatch
	}
	_, err = fmt.Fprintln(out, "OK")
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
