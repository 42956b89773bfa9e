package session

import (
	"encoding/hex"

	"github.com/louisbranch/duel/internal/duel/fairness"
	"github.com/louisbranch/duel/internal/duel/rules"
)

// Event is a display event yielded by the Controller.
type Event interface {
	isEvent()
}

// CommitmentPublished carries the digest of the hidden move for the next
// round. It is always yielded before the human can choose.
type CommitmentPublished struct {
	Round     int
	Algorithm fairness.Algorithm
	Digest    string
}

// MenuShown lists the playable moves in menu order (1-based on display).
type MenuShown struct {
	Moves []string
}

// HelpShown carries the outcome matrix for the session's moves.
type HelpShown struct {
	Matrix rules.Matrix
}

// RoundPlayed reveals the hidden move and its commitment key after the human
// has chosen. Verdict is from the human's perspective: FirstWins means the
// human won.
type RoundPlayed struct {
	Round         int
	Human         string
	HumanIndex    int
	Computer      string
	ComputerIndex int
	Verdict       rules.Verdict
	Algorithm     fairness.Algorithm
	Key           []byte
	Digest        string
}

// KeyHex returns the revealed key as lowercase hex.
func (r RoundPlayed) KeyHex() string {
	return hex.EncodeToString(r.Key)
}

// InvalidChoice reports input that is neither a command nor a move number.
type InvalidChoice struct {
	Input string
	Err   error
}

// Exited marks the end of the session.
type Exited struct{}

func (CommitmentPublished) isEvent() {}
func (MenuShown) isEvent()           {}
func (HelpShown) isEvent()           {}
func (RoundPlayed) isEvent()         {}
func (InvalidChoice) isEvent()       {}
func (Exited) isEvent()              {}
