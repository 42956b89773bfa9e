// Package random provides cryptographic randomness helpers.
//
// Every helper reads from crypto/rand unless a reader is injected, which keeps
// callers deterministic under test while production code never falls back to
// a non-cryptographic source.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrUnavailable indicates the random source could not be read.
var ErrUnavailable = errors.New("secure randomness unavailable")

// ErrInvalidBound indicates an index bound that is not positive.
var ErrInvalidBound = errors.New("index bound must be positive")

// IndexSource picks a uniformly random index in [0, n).
type IndexSource func(n int) (int, error)

// NewIndexSource returns an IndexSource reading from reader, or crypto/rand
// when reader is nil.
func NewIndexSource(reader io.Reader) IndexSource {
	if reader == nil {
		reader = crand.Reader
	}
	return func(n int) (int, error) {
		return Index(reader, n)
	}
}

// Index draws a uniformly random index in [0, n) from reader. Draws that
// would bias the result are rejected and redrawn.
func Index(reader io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBound, n)
	}
	bound := uint64(n)
	// 2^64 mod bound; draws below it fall in the incomplete last block.
	threshold := -bound % bound
	for {
		buf, err := Bytes(reader, 8)
		if err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint64(buf)
		if v >= threshold {
			return int(v % bound), nil
		}
	}
}

// Bytes reads size random bytes from reader, or crypto/rand when reader is nil.
func Bytes(reader io.Reader, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New("size must be greater than zero")
	}
	if reader == nil {
		reader = crand.Reader
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return buf, nil
}
