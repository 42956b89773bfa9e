// Package session drives one play session against the computer.
//
// The Controller is a state machine that never prints. Each call yields the
// display events a front end renders, which keeps the commit-reveal ordering
// testable with injected randomness:
//
//	Init -> AwaitingChoice -> Revealed -> (AwaitingChoice | Exited)
//
// By default every round re-commits to a fresh hidden move and key once the
// previous key is revealed. Options.SingleCommit keeps one hidden move and
// key for the whole session instead.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/duel/internal/duel/fairness"
	"github.com/louisbranch/duel/internal/duel/moves"
	"github.com/louisbranch/duel/internal/duel/rules"
	apperrors "github.com/louisbranch/duel/internal/platform/errors"
	"github.com/louisbranch/duel/internal/random"
)

const (
	// ExitInput ends the session.
	ExitInput = "0"
	// HelpInput shows the outcome matrix.
	HelpInput = "?"
)

// State is a Controller lifecycle state.
type State int

const (
	StateInit State = iota
	StateAwaitingChoice
	StateRevealed
	StateExited
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateRevealed:
		return "revealed"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

var (
	// ErrNotStarted indicates Handle was called before Start.
	ErrNotStarted = errors.New("session not started")
	// ErrAlreadyStarted indicates Start was called twice.
	ErrAlreadyStarted = errors.New("session already started")
	// ErrExited indicates the session already ended.
	ErrExited = errors.New("session exited")
	// ErrNoCommitment indicates the revealed commitment was never replaced,
	// so no further round can be played fairly.
	ErrNoCommitment = errors.New("no unrevealed commitment")
	// ErrEmptyMoveSet indicates a zero moves.Set.
	ErrEmptyMoveSet = errors.New("move set is required")
)

// Options configures a Controller.
type Options struct {
	// Index picks the hidden move. Defaults to crypto/rand.
	Index random.IndexSource
	// Engine produces commitments. Defaults to HMAC-SHA256 with 32 byte
	// keys from crypto/rand.
	Engine *fairness.Engine
	// SingleCommit keeps the first hidden move and key for every round.
	SingleCommit bool
}

// Controller orchestrates one session over a validated move set.
type Controller struct {
	moves        moves.Set
	matrix       rules.Matrix
	index        random.IndexSource
	engine       *fairness.Engine
	singleCommit bool

	state      State
	round      int
	hidden     int
	commitment fairness.Commitment
}

// New returns a Controller in StateInit.
func New(set moves.Set, opts Options) (*Controller, error) {
	if set.Len() == 0 {
		return nil, ErrEmptyMoveSet
	}
	index := opts.Index
	if index == nil {
		index = random.NewIndexSource(nil)
	}
	engine := opts.Engine
	if engine == nil {
		var err error
		engine, err = fairness.NewEngine(fairness.Options{})
		if err != nil {
			return nil, err
		}
	}
	return &Controller{
		moves:        set,
		matrix:       rules.BuildMatrix(set.Names()),
		index:        index,
		engine:       engine,
		singleCommit: opts.SingleCommit,
		state:        StateInit,
	}, nil
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Round returns the 1-based number of the round awaiting a choice.
func (c *Controller) Round() int {
	return c.round
}

// Algorithm returns the commitment algorithm.
func (c *Controller) Algorithm() fairness.Algorithm {
	return c.engine.Algorithm()
}

// Moves returns the session's move names.
func (c *Controller) Moves() []string {
	return c.moves.Names()
}

// Start picks the hidden move, commits to it and yields the commitment
// followed by the menu. A commitment failure is fatal and leaves the
// controller in StateInit.
func (c *Controller) Start() ([]Event, error) {
	if c.state != StateInit {
		return nil, ErrAlreadyStarted
	}
	published, err := c.commit()
	if err != nil {
		return nil, err
	}
	c.state = StateAwaitingChoice
	return []Event{published, c.menu()}, nil
}

// Handle interprets one line of input. Recoverable input problems are
// reported as InvalidChoice events; the returned error is reserved for
// misuse and commitment failures. After a failed recommit every call returns
// ErrNoCommitment.
func (c *Controller) Handle(input string) ([]Event, error) {
	switch c.state {
	case StateInit:
		return nil, ErrNotStarted
	case StateExited:
		return nil, ErrExited
	case StateRevealed:
		return nil, ErrNoCommitment
	}

	choice := strings.TrimSpace(input)
	switch choice {
	case ExitInput:
		c.state = StateExited
		return []Event{Exited{}}, nil
	case HelpInput:
		return []Event{HelpShown{Matrix: c.matrix}, c.menu()}, nil
	}

	humanIndex, ok := c.parseChoice(choice)
	if !ok {
		return []Event{
			InvalidChoice{Input: input, Err: invalidChoice(choice, c.moves.Len())},
			c.menu(),
		}, nil
	}
	return c.play(humanIndex)
}

func (c *Controller) play(humanIndex int) ([]Event, error) {
	n := c.moves.Len()
	played := RoundPlayed{
		Round:         c.round,
		Human:         c.moves.Name(humanIndex),
		HumanIndex:    humanIndex,
		Computer:      c.moves.Name(c.hidden),
		ComputerIndex: c.hidden,
		Verdict:       rules.Resolve(humanIndex, c.hidden, n),
		Algorithm:     c.commitment.Algorithm,
		Key:           append([]byte(nil), c.commitment.Key...),
		Digest:        c.commitment.Digest,
	}
	c.state = StateRevealed

	events := []Event{played}
	if c.singleCommit {
		c.round++
	} else {
		published, err := c.commit()
		if err != nil {
			return events, err
		}
		events = append(events, published)
	}
	c.state = StateAwaitingChoice
	return append(events, c.menu()), nil
}

func (c *Controller) commit() (CommitmentPublished, error) {
	n := c.moves.Len()
	hidden, err := c.index(n)
	if err != nil {
		return CommitmentPublished{}, apperrors.Wrap(apperrors.CodeEntropyUnavailable,
			"pick hidden move",
			fmt.Errorf("%w: %w", fairness.ErrEntropyUnavailable, err))
	}
	if !c.moves.Contains(hidden) {
		return CommitmentPublished{}, fmt.Errorf("%w: %d not in [0, %d)", random.ErrInvalidBound, hidden, n)
	}
	commitment, err := c.engine.Commit(c.moves.Name(hidden))
	if err != nil {
		return CommitmentPublished{}, err
	}
	c.hidden = hidden
	c.commitment = commitment
	c.round++
	return CommitmentPublished{
		Round:     c.round,
		Algorithm: commitment.Algorithm,
		Digest:    commitment.Digest,
	}, nil
}

func (c *Controller) menu() MenuShown {
	return MenuShown{Moves: c.moves.Names()}
}

// parseChoice maps a 1-based move number to an index. Only plain decimal
// integers are accepted.
func (c *Controller) parseChoice(choice string) (int, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > c.moves.Len() {
		return 0, false
	}
	return n - 1, true
}

func invalidChoice(choice string, n int) error {
	return apperrors.WithMetadata(apperrors.CodeChoiceInvalid,
		fmt.Sprintf("invalid choice %q, want 1..%d, %q or %q", choice, n, ExitInput, HelpInput),
		map[string]string{"Input": choice, "Count": strconv.Itoa(n)})
}
