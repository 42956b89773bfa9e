package moves

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/duel/internal/platform/errors"
)

func TestNewAcceptsValidSets(t *testing.T) {
	tcs := [][]string{
		{"Rock", "Paper", "Scissors"},
		{"Rock", "Spock", "Paper", "Lizard", "Scissors"},
		{"rock", "Rock", "ROCK"},
	}
	for _, tc := range tcs {
		set, err := New(tc)
		if err != nil {
			t.Fatalf("New(%v): %v", tc, err)
		}
		if set.Len() != len(tc) {
			t.Fatalf("Len = %d, want %d", set.Len(), len(tc))
		}
		for i, name := range tc {
			if set.Name(i) != name || set.Index(name) != i {
				t.Fatalf("move %d mismatch: %q", i, set.Name(i))
			}
		}
	}
}

func TestNewRejectsInvalidSets(t *testing.T) {
	tcs := []struct {
		name  string
		moves []string
		want  error
		code  apperrors.Code
	}{
		{name: "empty", moves: nil, want: ErrTooFewMoves, code: apperrors.CodeMovesTooFew},
		{name: "one", moves: []string{"Rock"}, want: ErrTooFewMoves, code: apperrors.CodeMovesTooFew},
		{name: "two", moves: []string{"Rock", "Paper"}, want: ErrTooFewMoves, code: apperrors.CodeMovesTooFew},
		{name: "even", moves: []string{"a", "b", "c", "d"}, want: ErrEvenMoveCount, code: apperrors.CodeMovesEvenCount},
		{name: "duplicate", moves: []string{"Rock", "Paper", "Rock"}, want: ErrDuplicateMove, code: apperrors.CodeMovesDuplicate},
		{name: "blank", moves: []string{"Rock", " ", "Paper"}, want: ErrBlankMove, code: apperrors.CodeMovesBlank},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.moves)
			if !errors.Is(err, tc.want) {
				t.Fatalf("New(%v) error = %v, want %v", tc.moves, err, tc.want)
			}
			if got := apperrors.GetCode(err); got != tc.code {
				t.Fatalf("code = %s, want %s", got, tc.code)
			}
		})
	}
}

func TestNewDuplicateCarriesMoveMetadata(t *testing.T) {
	_, err := New([]string{"Rock", "Paper", "Paper"})
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected domain error, got %T", err)
	}
	if domainErr.Metadata["Move"] != "Paper" {
		t.Fatalf("expected duplicate move metadata, got %v", domainErr.Metadata)
	}
}

func TestSetIsImmutable(t *testing.T) {
	names := []string{"Rock", "Paper", "Scissors"}
	set, err := New(names)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	names[0] = "Boulder"
	out := set.Names()
	out[1] = "Sheet"
	if set.Name(0) != "Rock" || set.Name(1) != "Paper" {
		t.Fatalf("set mutated: %v", set.Names())
	}
}

func TestSetLookups(t *testing.T) {
	set, err := New([]string{"Rock", "Paper", "Scissors"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if set.Index("Lizard") != -1 {
		t.Fatal("expected missing move index -1")
	}
	if !set.Contains(2) || set.Contains(3) || set.Contains(-1) {
		t.Fatal("unexpected Contains results")
	}
}
