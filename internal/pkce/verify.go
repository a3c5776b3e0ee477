package pkce

import (
	"crypto/subtle"
	"fmt"
)

const (
	minVerifierLen = 43
	maxVerifierLen = 128
)

// ValidateVerifier reports whether v satisfies RFC 7636 section 4.1:
// 43 to 128 characters from the unreserved set [A-Za-z0-9-._~].
func ValidateVerifier(v string) error {
	if n := len(v); n < minVerifierLen || n > maxVerifierLen {
		return fmt.Errorf("%w: length %d not in [%d, %d]",
			ErrInvalidVerifier, n, minVerifierLen, maxVerifierLen)
	}
	for i, r := range v {
		if r >= 0x80 || !isUnreserved(byte(r)) {
			return fmt.Errorf("%w: character %q at offset %d",
				ErrInvalidVerifier, r, i)
		}
	}
	return nil
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

// VerifyChallenge recomputes the S256 challenge for verifier and compares
// it to challenge in constant time.
func VerifyChallenge(verifier, challenge string) (bool, error) {
	want, err := GenerateCodeChallenge(verifier)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(challenge)) == 1, nil
}
