// Package pkce generates RFC 7636 code verifiers and S256 code challenges.
package pkce

import (
	"crypto"
	"crypto/rand"
	_ "crypto/sha256" // registers crypto.SHA256
	"encoding/base64"
	"fmt"
	"io"
)

const (
	// MethodS256 is the code_challenge_method value for SHA-256 challenges.
	MethodS256 = "S256"

	// VerifierBytes is the number of random bytes behind each verifier.
	VerifierBytes = 32

	// EncodedLen is the length of both a verifier and a challenge.
	EncodedLen = 43
)

// Generator produces code verifiers from a secure random source.
// It holds no mutable state and is safe for concurrent use as long as
// its random source is.
type Generator struct {
	rand io.Reader
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom replaces the random source. Only use a cryptographically
// secure reader outside of tests.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) { g.rand = r }
}

// New creates a Generator backed by crypto/rand unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{rand: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// GenerateCodeVerifier creates a 43-character random base64url string
// suitable for use as a PKCE code verifier.
func (g *Generator) GenerateCodeVerifier() (string, error) {
	b := make([]byte, VerifierBytes)
	if _, err := io.ReadFull(g.rand, b); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntropySource, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateCodeChallenge computes the S256 code challenge for verifier.
// The verifier is hashed as given; see ValidateVerifier for RFC checks.
func (g *Generator) GenerateCodeChallenge(verifier string) (string, error) {
	return GenerateCodeChallenge(verifier)
}

// GenerateCodeVerifier draws a verifier from crypto/rand.
func GenerateCodeVerifier() (string, error) {
	return defaultGenerator.GenerateCodeVerifier()
}

// GenerateCodeChallenge computes the S256 code challenge for verifier.
func GenerateCodeChallenge(verifier string) (string, error) {
	if !crypto.SHA256.Available() {
		return "", ErrCryptoUnavailable
	}
	h := crypto.SHA256.New()
	// hash.Hash writes never fail.
	_, _ = io.WriteString(h, verifier)
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil)), nil
}
