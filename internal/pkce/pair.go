package pkce

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Pair bundles a verifier with its challenge.
type Pair struct {
	ID        string `json:"id"`
	Verifier  string `json:"code_verifier"`
	Challenge string `json:"code_challenge"`
	Method    string `json:"code_challenge_method"`
}

// NewPair generates a verifier and derives its S256 challenge.
func (g *Generator) NewPair() (Pair, error) {
	v, err := g.GenerateCodeVerifier()
	if err != nil {
		return Pair{}, fmt.Errorf("generate verifier: %w", err)
	}
	c, err := g.GenerateCodeChallenge(v)
	if err != nil {
		return Pair{}, fmt.Errorf("generate challenge: %w", err)
	}
	return Pair{
		ID:        uuid.NewString(),
		Verifier:  v,
		Challenge: c,
		Method:    MethodS256,
	}, nil
}

// NewPair generates a pair from crypto/rand.
func NewPair() (Pair, error) {
	return defaultGenerator.NewPair()
}

// GeneratePairs creates n pairs using at most concurrency goroutines.
// Results keep index order. The first failure cancels remaining work.
func GeneratePairs(ctx context.Context, g *Generator, n, concurrency int) ([]Pair, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}
	if concurrency < 1 {
		concurrency = 1
	}

	pairs := make([]Pair, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	for i := range pairs {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := g.NewPair()
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			pairs[i] = p
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return pairs, nil
}
