package fairness

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Algorithm names a keyed hash used for commitments.
type Algorithm string

const (
	// HMACSHA256 is HMAC with SHA-256; any key length is accepted.
	HMACSHA256 Algorithm = "hmac-sha256"
	// Blake2b256 is keyed BLAKE2b with a 256-bit output; keys are capped at
	// 64 bytes.
	Blake2b256 Algorithm = "blake2b-256"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = HMACSHA256

// ErrUnknownAlgorithm indicates an unsupported algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// Algorithms lists the supported algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{HMACSHA256, Blake2b256}
}

// ParseAlgorithm parses a case-insensitive algorithm name. An empty name
// selects DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if normalized == "" {
		return DefaultAlgorithm, nil
	}
	for _, alg := range Algorithms() {
		if alg == normalized {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Label returns the display name of the algorithm.
func (a Algorithm) Label() string {
	switch a {
	case HMACSHA256:
		return "HMAC-SHA256"
	case Blake2b256:
		return "BLAKE2b-256"
	default:
		return string(a)
	}
}

// MaxKeySize returns the largest accepted key in bytes, or 0 when unbounded.
func (a Algorithm) MaxKeySize() int {
	if a == Blake2b256 {
		return blake2b.Size
	}
	return 0
}

func (a Algorithm) newHash(key []byte) (hash.Hash, error) {
	switch a {
	case HMACSHA256:
		return hmac.New(sha256.New, key), nil
	case Blake2b256:
		h, err := blake2b.New256(key)
		if err != nil {
			return nil, fmt.Errorf("blake2b key: %w", err)
		}
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}
