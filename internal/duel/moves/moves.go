// Package moves validates and holds the ordered move names of a session.
package moves

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/duel/internal/duel/rules"
	apperrors "github.com/louisbranch/duel/internal/platform/errors"
)

var (
	// ErrTooFewMoves indicates fewer than three moves were provided.
	ErrTooFewMoves = apperrors.New(apperrors.CodeMovesTooFew, "at least 3 moves are required")
	// ErrEvenMoveCount indicates an even number of moves was provided.
	ErrEvenMoveCount = apperrors.New(apperrors.CodeMovesEvenCount, "move count must be odd")
	// ErrDuplicateMove indicates the same name appears twice.
	ErrDuplicateMove = apperrors.New(apperrors.CodeMovesDuplicate, "moves must be unique")
	// ErrBlankMove indicates an empty or whitespace-only move name.
	ErrBlankMove = apperrors.New(apperrors.CodeMovesBlank, "move names cannot be blank")
)

// Set is an immutable, validated list of move names. Names are compared
// case-sensitively.
type Set struct {
	names []string
}

// New validates names and returns a Set.
//
// The returned errors match ErrTooFewMoves, ErrEvenMoveCount, ErrBlankMove or
// ErrDuplicateMove under errors.Is and carry metadata for localized output.
func New(names []string) (Set, error) {
	count := strconv.Itoa(len(names))
	if len(names) < rules.MinMoves {
		return Set{}, apperrors.WithMetadata(apperrors.CodeMovesTooFew,
			fmt.Sprintf("at least %d moves are required, got %d", rules.MinMoves, len(names)),
			map[string]string{"Count": count})
	}
	if len(names)%2 == 0 {
		return Set{}, apperrors.WithMetadata(apperrors.CodeMovesEvenCount,
			fmt.Sprintf("move count must be odd, got %d", len(names)),
			map[string]string{"Count": count})
	}

	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return Set{}, apperrors.WithMetadata(apperrors.CodeMovesBlank,
				fmt.Sprintf("move %d is blank", i+1),
				map[string]string{"Position": strconv.Itoa(i + 1)})
		}
		if _, ok := seen[name]; ok {
			return Set{}, apperrors.WithMetadata(apperrors.CodeMovesDuplicate,
				fmt.Sprintf("move %q appears more than once", name),
				map[string]string{"Move": name})
		}
		seen[name] = struct{}{}
	}

	cloned := make([]string, len(names))
	copy(cloned, names)
	return Set{names: cloned}, nil
}

// Len returns the number of moves.
func (s Set) Len() int {
	return len(s.names)
}

// Name returns the move at index i.
func (s Set) Name(i int) string {
	return s.names[i]
}

// Names returns a copy of the move names in order.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Index returns the position of name, or -1 if the set does not contain it.
func (s Set) Index(name string) int {
	for i, candidate := range s.names {
		if candidate == name {
			return i
		}
	}
	return -1
}

// Contains reports whether i is a valid index into the set.
func (s Set) Contains(i int) bool {
	return i >= 0 && i < len(s.names)
}
