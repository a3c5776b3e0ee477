package pkce

import "errors"

var (
	// ErrEntropySource indicates the secure random source failed or came up short.
	ErrEntropySource = errors.New("entropy source unavailable")

	// ErrCryptoUnavailable indicates the SHA-256 primitive is not linked in.
	ErrCryptoUnavailable = errors.New("sha256 unavailable")

	// ErrInvalidVerifier indicates a verifier outside RFC 7636 length or charset.
	ErrInvalidVerifier = errors.New("invalid code verifier")

	// ErrInvalidCount indicates a non-positive batch size.
	ErrInvalidCount = errors.New("count must be positive")
)
