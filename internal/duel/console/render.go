// Package console renders session events as localized terminal text and runs
// the interactive play loop.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/message"

	"github.com/louisbranch/duel/internal/duel/rules"
	"github.com/louisbranch/duel/internal/duel/session"
	apperrors "github.com/louisbranch/duel/internal/platform/errors"
	"github.com/louisbranch/duel/internal/platform/i18n/catalog"
)

// Renderer writes session events to a terminal in one locale.
type Renderer struct {
	out     io.Writer
	locale  string
	printer *message.Printer
}

// NewRenderer returns a Renderer for the closest supported locale.
func NewRenderer(out io.Writer, locale string) *Renderer {
	bundle := catalog.Default()
	resolved := bundle.ResolveLocale(locale)
	return &Renderer{out: out, locale: resolved, printer: bundle.Printer(resolved)}
}

// Locale returns the resolved locale.
func (r *Renderer) Locale() string {
	return r.locale
}

// Prompt asks for the next choice without a trailing newline.
func (r *Renderer) Prompt() error {
	_, err := io.WriteString(r.out, r.printer.Sprintf("duel.prompt"))
	return err
}

// Render writes events in order and stops at the first write error.
func (r *Renderer) Render(events ...session.Event) error {
	w := &lineWriter{out: r.out}
	for _, event := range events {
		switch ev := event.(type) {
		case session.CommitmentPublished:
			w.line(r.printer.Sprintf("duel.commitment", ev.Algorithm.Label(), ev.Digest))
		case session.MenuShown:
			w.line(r.printer.Sprintf("duel.menu.title"))
			for i, name := range ev.Moves {
				w.line(r.printer.Sprintf("duel.menu.move", strconv.Itoa(i+1), name))
			}
			w.line(r.printer.Sprintf("duel.menu.exit"))
			w.line(r.printer.Sprintf("duel.menu.help"))
		case session.HelpShown:
			w.line(r.printer.Sprintf("duel.help.title"))
			if w.err == nil {
				w.err = r.writeGrid(ev.Matrix)
			}
		case session.RoundPlayed:
			w.line(r.printer.Sprintf("duel.round.user_move", ev.Human))
			w.line(r.printer.Sprintf("duel.round.computer_move", ev.Computer))
			w.line(r.VerdictLabel(ev.Verdict))
			w.line(r.printer.Sprintf("duel.round.key", ev.Algorithm.Label(), ev.KeyHex()))
		case session.InvalidChoice:
			err := ev.Err
			if err == nil {
				err = apperrors.New(apperrors.CodeChoiceInvalid, "invalid choice")
			}
			w.line(apperrors.LocalizedMessage(err, r.locale))
		case session.Exited:
			w.line(r.printer.Sprintf("duel.exit"))
		default:
			return fmt.Errorf("render: unsupported event %T", event)
		}
	}
	return w.err
}

// VerdictLabel names the round winner from the human's side.
func (r *Renderer) VerdictLabel(v rules.Verdict) string {
	switch v {
	case rules.FirstWins:
		return r.printer.Sprintf("duel.verdict.user")
	case rules.SecondWins:
		return r.printer.Sprintf("duel.verdict.computer")
	default:
		return r.printer.Sprintf("duel.verdict.draw")
	}
}

// MatrixLabel names one help table cell from the row move's side.
func (r *Renderer) MatrixLabel(v rules.Verdict) string {
	switch v {
	case rules.FirstWins:
		return r.printer.Sprintf("duel.matrix.win")
	case rules.SecondWins:
		return r.printer.Sprintf("duel.matrix.lose")
	default:
		return r.printer.Sprintf("duel.matrix.draw")
	}
}

func (r *Renderer) writeGrid(matrix rules.Matrix) error {
	tw := tabwriter.NewWriter(r.out, 0, 0, 1, ' ', tabwriter.Debug)
	for _, row := range matrix.GridWith(r.MatrixLabel) {
		if _, err := fmt.Fprintf(tw, " %s\t\n", strings.Join(row, "\t ")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

type lineWriter struct {
	out io.Writer
	err error
}

func (w *lineWriter) line(text string) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintln(w.out, text)
}
