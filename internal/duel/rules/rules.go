// Package rules implements the cyclic winner rule for odd-sized move sets.
//
// Moves are arranged on a directed cycle of length n. Every move loses to the
// n/2 moves that follow it on the cycle and beats the n/2 moves before it, so
// with n odd every pair of distinct moves has exactly one winner.
package rules

import (
	"errors"
	"fmt"
)

// MinMoves is the smallest playable move count.
const MinMoves = 3

// Verdict is the outcome of a move pair from the first party's perspective.
type Verdict int

const (
	Draw Verdict = iota
	FirstWins
	SecondWins
)

func (v Verdict) String() string {
	switch v {
	case Draw:
		return "Draw"
	case FirstWins:
		return "FirstWins"
	case SecondWins:
		return "SecondWins"
	default:
		return "Unknown"
	}
}

// Invert returns the verdict seen by the other party.
func (v Verdict) Invert() Verdict {
	switch v {
	case FirstWins:
		return SecondWins
	case SecondWins:
		return FirstWins
	default:
		return v
	}
}

// ErrInvalidMoveCount indicates n is even or smaller than MinMoves.
var ErrInvalidMoveCount = errors.New("move count must be odd and at least 3")

// ErrIndexOutOfRange indicates a move index outside [0, n).
var ErrIndexOutOfRange = errors.New("move index out of range")

// ValidCount reports whether n moves form a playable cycle.
func ValidCount(n int) bool {
	return n >= MinMoves && n%2 == 1
}

// Check validates the preconditions of Resolve.
func Check(a, b, n int) error {
	if !ValidCount(n) {
		return fmt.Errorf("%w: %d", ErrInvalidMoveCount, n)
	}
	if a < 0 || a >= n {
		return fmt.Errorf("%w: first index %d for %d moves", ErrIndexOutOfRange, a, n)
	}
	if b < 0 || b >= n {
		return fmt.Errorf("%w: second index %d for %d moves", ErrIndexOutOfRange, b, n)
	}
	return nil
}

// Resolve decides the outcome of first party move a against second party
// move b in a universe of n moves.
//
// The second party wins when b lies within the next n/2 positions after a,
// wrapping through zero. Otherwise the first party wins. Equal indexes draw.
//
// Resolve panics when the preconditions checked by Check do not hold; callers
// are expected to validate the move set and indexes up front.
func Resolve(a, b, n int) Verdict {
	if err := Check(a, b, n); err != nil {
		panic("rules: " + err.Error())
	}
	if a == b {
		return Draw
	}
	half := n / 2
	distance := (b - a + n) % n
	if distance >= 1 && distance <= half {
		return SecondWins
	}
	return FirstWins
}
