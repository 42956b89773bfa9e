package fairness

import (
	"crypto/hmac"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/louisbranch/duel/internal/platform/errors"
	"github.com/louisbranch/duel/internal/random"
)

const (
	// KeySize is the default key length in bytes.
	KeySize = 32
	// MinKeySize is the shortest key accepted, 256 bits.
	MinKeySize = 32
)

var (
	// ErrEntropyUnavailable indicates the key source failed.
	ErrEntropyUnavailable = errors.New("commitment key source unavailable")
	// ErrKeyTooShort indicates a key below MinKeySize.
	ErrKeyTooShort = errors.New("commitment key is too short")
	// ErrKeyTooLong indicates a key above the algorithm's maximum.
	ErrKeyTooLong = errors.New("commitment key is too long for algorithm")
	// ErrDigestMismatch indicates a digest that does not match (key, move).
	ErrDigestMismatch = errors.New("digest does not match")
	// ErrMalformedKey indicates a revealed key that is not valid hex.
	ErrMalformedKey = errors.New("key must be hex encoded")
)

// KeySource produces a fresh secret key for each commitment.
type KeySource func() ([]byte, error)

// RandomKeys returns a KeySource reading size bytes from reader, or from
// crypto/rand when reader is nil.
func RandomKeys(reader io.Reader, size int) KeySource {
	return func() ([]byte, error) {
		return random.Bytes(reader, size)
	}
}

// Commitment binds a hidden move to a digest published before the reveal.
type Commitment struct {
	Algorithm Algorithm
	Key       []byte
	Digest    string
}

// KeyHex returns the key as lowercase hex, the form disclosed on reveal.
func (c Commitment) KeyHex() string {
	return hex.EncodeToString(c.Key)
}

// Options configures an Engine.
type Options struct {
	// Algorithm defaults to DefaultAlgorithm.
	Algorithm Algorithm
	// KeySize defaults to KeySize. Ignored when Keys is set.
	KeySize int
	// Keys defaults to RandomKeys(crypto/rand, KeySize).
	Keys KeySource
}

// Engine produces commitments with one algorithm and key source.
type Engine struct {
	algorithm Algorithm
	keys      KeySource
}

// NewEngine validates opts and returns an Engine.
func NewEngine(opts Options) (*Engine, error) {
	alg, err := ParseAlgorithm(string(opts.Algorithm))
	if err != nil {
		return nil, err
	}

	keys := opts.Keys
	if keys == nil {
		size := opts.KeySize
		if size == 0 {
			size = KeySize
		}
		if err := checkKeySize(alg, size); err != nil {
			return nil, err
		}
		keys = RandomKeys(nil, size)
	}
	return &Engine{algorithm: alg, keys: keys}, nil
}

// Algorithm returns the engine's algorithm.
func (e *Engine) Algorithm() Algorithm {
	return e.algorithm
}

// Commit draws a fresh key and digests secretMove under it.
func (e *Engine) Commit(secretMove string) (Commitment, error) {
	key, err := e.keys()
	if err != nil {
		return Commitment{}, apperrors.Wrap(apperrors.CodeEntropyUnavailable,
			"generate commitment key",
			fmt.Errorf("%w: %w", ErrEntropyUnavailable, err))
	}
	if err := checkKeySize(e.algorithm, len(key)); err != nil {
		return Commitment{}, err
	}
	digest, err := Digest(e.algorithm, key, secretMove)
	if err != nil {
		return Commitment{}, err
	}
	return Commitment{Algorithm: e.algorithm, Key: key, Digest: digest}, nil
}

// Digest computes the lowercase hex keyed hash of move under key. The hash is
// keyed with the raw key bytes, not with their hex encoding.
func Digest(alg Algorithm, key []byte, move string) (string, error) {
	h, err := alg.newHash(key)
	if err != nil {
		return "", err
	}
	_, _ = h.Write([]byte(move))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Verify recomputes the digest for (key, move) and compares it with digest
// in constant time. Hex case and surrounding whitespace are ignored.
func Verify(alg Algorithm, key []byte, move, digest string) error {
	expected, err := Digest(alg, key, move)
	if err != nil {
		return err
	}
	got := strings.ToLower(strings.TrimSpace(digest))
	if !hmac.Equal([]byte(expected), []byte(got)) {
		return apperrors.WrapWithMetadata(apperrors.CodeDigestMismatch, "verify digest",
			map[string]string{"Algorithm": alg.Label()}, ErrDigestMismatch)
	}
	return nil
}

// VerifyHex is Verify with a hex encoded key, as shown on reveal.
func VerifyHex(alg Algorithm, keyHex, move, digest string) error {
	key, err := DecodeKey(keyHex)
	if err != nil {
		return err
	}
	return Verify(alg, key, move, digest)
}

// DecodeKey parses a hex encoded key.
func DecodeKey(keyHex string) ([]byte, error) {
	key, err := hex.DecodeString(strings.TrimSpace(keyHex))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	return key, nil
}

func checkKeySize(alg Algorithm, size int) error {
	if size < MinKeySize {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrKeyTooShort, size, MinKeySize)
	}
	if limit := alg.MaxKeySize(); limit > 0 && size > limit {
		return fmt.Errorf("%w: %d bytes, %s allows at most %d", ErrKeyTooLong, size, alg.Label(), limit)
	}
	return nil
}
