package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/duel/internal/duel/fairness"
	"github.com/louisbranch/duel/internal/duel/moves"
	"github.com/louisbranch/duel/internal/duel/rules"
	"github.com/louisbranch/duel/internal/duel/session"
)

func newController(t *testing.T, hidden ...int) *session.Controller {
	t.Helper()
	set, err := moves.New([]string{"Rock", "Paper", "Scissors"})
	if err != nil {
		t.Fatalf("moves: %v", err)
	}
	var b byte
	engine, err := fairness.NewEngine(fairness.Options{Keys: func() ([]byte, error) {
		b++
		return bytes.Repeat([]byte{b}, fairness.KeySize), nil
	}})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	i := 0
	c, err := session.New(set, session.Options{
		Engine: engine,
		Index: func(int) (int, error) {
			v := hidden[i%len(hidden)]
			i++
			return v, nil
		},
	})
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	return c
}

func indexOf(t *testing.T, out, want string) int {
	t.Helper()
	idx := strings.Index(out, want)
	if idx < 0 {
		t.Fatalf("expected %q in output:\n%s", want, out)
	}
	return idx
}

func TestPlayScriptedSession(t *testing.T) {
	c := newController(t, 1, 2)
	out := &bytes.Buffer{}
	in := strings.NewReader("?\n1\nnope\n0\n")

	if err := Play(context.Background(), c, in, NewRenderer(out, "en-US")); err != nil {
		t.Fatalf("play: %v", err)
	}
	got := out.String()

	firstKey := strings.Repeat("01", fairness.KeySize)
	digest, err := fairness.Digest(fairness.HMACSHA256, bytes.Repeat([]byte{1}, fairness.KeySize), "Paper")
	if err != nil {
		t.Fatalf("digest: %v", err)
	}

	commitAt := indexOf(t, got, "HMAC-SHA256 (before move): "+digest)
	indexOf(t, got, "Available moves:\n1 - Rock\n2 - Paper\n3 - Scissors\n0 - exit\n? - help\n")
	indexOf(t, got, "Enter your move: ")
	indexOf(t, got, "Help Table")
	movedAt := indexOf(t, got, "Your move: Rock\nComputer move: Paper\nComputer Wins\n")
	revealAt := indexOf(t, got, "HMAC-SHA256 key (reveal): "+firstKey)
	indexOf(t, got, "Invalid choice. Please enter a valid number or '?' for help.")
	exitAt := indexOf(t, got, "Exiting the game...")

	if !(commitAt < movedAt && movedAt < revealAt && revealAt < exitAt) {
		t.Fatalf("unexpected event order in output:\n%s", got)
	}
	if strings.Count(got, "(before move)") != 2 {
		t.Fatalf("expected a fresh commitment after the round:\n%s", got)
	}
}

func TestPlayTreatsEndOfInputAsExit(t *testing.T) {
	c := newController(t, 0)
	out := &bytes.Buffer{}
	if err := Play(context.Background(), c, strings.NewReader(""), NewRenderer(out, "en-US")); err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Exiting the game...\n") {
		t.Fatalf("expected exit message at end, got:\n%s", out.String())
	}
	if c.State() != session.StateExited {
		t.Fatalf("state = %s, want exited", c.State())
	}
}

func TestPlayLocalized(t *testing.T) {
	c := newController(t, 2)
	out := &bytes.Buffer{}
	if err := Play(context.Background(), c, strings.NewReader("1\n0\n"), NewRenderer(out, "pt-BR")); err != nil {
		t.Fatalf("play: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Jogadas disponíveis:", "Sua jogada: Rock", "Você venceu", "Saindo do jogo..."} {
		indexOf(t, got, want)
	}
}

func TestPlayStopsOnCancel(t *testing.T) {
	c := newController(t, 0)
	reader, writer := io.Pipe()
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() {
		errs <- Play(ctx, c, reader, NewRenderer(io.Discard, "en-US"))
	}()
	cancel()

	select {
	case err := <-errs:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("play error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("play did not stop after cancel")
	}
}

func TestPlayFailsWithoutEntropy(t *testing.T) {
	set, _ := moves.New([]string{"Rock", "Paper", "Scissors"})
	c, err := session.New(set, session.Options{Index: func(int) (int, error) {
		return 0, errors.New("no entropy")
	}})
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	out := &bytes.Buffer{}
	err = Play(context.Background(), c, strings.NewReader("1\n"), NewRenderer(out, "en-US"))
	if !errors.Is(err, fairness.ErrEntropyUnavailable) {
		t.Fatalf("play error = %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output before commitment, got %q", out.String())
	}
}

func TestPlayNilController(t *testing.T) {
	if err := Play(context.Background(), nil, strings.NewReader(""), NewRenderer(io.Discard, "")); !errors.Is(err, ErrNilController) {
		t.Fatalf("play error = %v", err)
	}
}

func TestRenderHelpGrid(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRenderer(out, "en-US")
	matrix := rules.BuildMatrix([]string{"Rock", "Paper", "Scissors"})
	if err := r.Render(session.HelpShown{Matrix: matrix}); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected title and 4 grid rows, got %d:\n%s", len(lines), out.String())
	}
	rock := lines[2]
	if !strings.HasPrefix(strings.TrimSpace(rock), "Rock") {
		t.Fatalf("expected Rock row, got %q", rock)
	}
	for _, want := range []string{"Draw", "Lose", "Win"} {
		if !strings.Contains(rock, want) {
			t.Fatalf("Rock row missing %q: %q", want, rock)
		}
	}
	if strings.Index(rock, "Draw") > strings.Index(rock, "Lose") || strings.Index(rock, "Lose") > strings.Index(rock, "Win") {
		t.Fatalf("Rock row should read Draw, Lose, Win: %q", rock)
	}
}

func TestRendererFallsBackToBaseLocale(t *testing.T) {
	r := NewRenderer(io.Discard, "fr-FR")
	if r.Locale() != "en-US" {
		t.Fatalf("locale = %q, want en-US", r.Locale())
	}
	if got := r.VerdictLabel(rules.Draw); got != "Draw" {
		t.Fatalf("draw label = %q", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderReportsWriteError(t *testing.T) {
	r := NewRenderer(failWriter{}, "en-US")
	if err := r.Render(session.Exited{}); err == nil {
		t.Fatal("expected write error")
	}
}

func TestPlayRecoversFromOversizedLine(t *testing.T) {
	c := newController(t, 0)
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Repeat("x", 70*1024) + "\n0\n")
	if err := Play(context.Background(), c, in, NewRenderer(out, "en-US")); err != nil {
		t.Fatalf("play: %v", err)
	}
	got := out.String()
	invalidAt := indexOf(t, got, "Invalid choice. Please enter a valid number or '?' for help.")
	exitAt := indexOf(t, got, "Exiting the game...")
	if invalidAt > exitAt {
		t.Fatalf("expected invalid choice before exit:\n%s", got)
	}
}

func TestPlayAcceptsFinalLineWithoutNewline(t *testing.T) {
	c := newController(t, 2)
	out := &bytes.Buffer{}
	if err := Play(context.Background(), c, strings.NewReader("1\r\n0"), NewRenderer(out, "en-US")); err != nil {
		t.Fatalf("play: %v", err)
	}
	got := out.String()
	indexOf(t, got, "Your move: Rock")
	if strings.Contains(got, "Invalid choice") {
		t.Fatalf("expected CRLF input to be accepted:\n%s", got)
	}
	if strings.Count(got, "Exiting the game...") != 1 {
		t.Fatalf("expected a single exit message:\n%s", got)
	}
}

func TestRenderMenuNumbersAreTypeable(t *testing.T) {
	names := make([]string, 1001)
	for i := range names {
		names[i] = "m" + strconv.Itoa(i)
	}
	out := &bytes.Buffer{}
	if err := NewRenderer(out, "en-US").Render(session.MenuShown{Moves: names}); err != nil {
		t.Fatalf("render: %v", err)
	}
	indexOf(t, out.String(), "\n1000 - m999\n")
	if strings.Contains(out.String(), "1,000") {
		t.Fatalf("menu numbers must not be grouped:\n%s", out.String())
	}
}
