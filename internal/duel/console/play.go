package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/duel/internal/duel/session"
	"github.com/louisbranch/duel/internal/platform/otel"
)

const tracerName = "github.com/louisbranch/duel/internal/duel/console"

// ErrNilController indicates Play was called without a controller.
var ErrNilController = errors.New("controller is required")

type readResult struct {
	text string
	err  error
	eof  bool
}

// Play starts the controller and feeds it one line of in per prompt until
// the human exits. End of input counts as an exit request. Play returns
// ctx.Err() when ctx is cancelled while waiting for input.
func Play(ctx context.Context, controller *session.Controller, in io.Reader, renderer *Renderer) error {
	if controller == nil {
		return ErrNilController
	}
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "duel.session", trace.WithAttributes(
		attribute.Int("duel.moves", len(controller.Moves())),
		attribute.String("duel.algorithm", string(controller.Algorithm())),
	))
	defer span.End()

	err := play(ctx, tracer, controller, in, renderer)
	if err != nil && !errors.Is(err, context.Canceled) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Int("duel.rounds", max(controller.Round()-1, 0)))
	return err
}

func play(ctx context.Context, tracer trace.Tracer, controller *session.Controller, in io.Reader, renderer *Renderer) error {
	events, err := controller.Start()
	if err != nil {
		return err
	}
	if err := renderer.Render(events...); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	for {
		if err := renderer.Prompt(); err != nil {
			return err
		}

		var input string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line := <-lines:
			switch {
			case line.err != nil:
				return fmt.Errorf("read choice: %w", line.err)
			case line.eof:
				// The prompt has no newline of its own.
				if _, err := fmt.Fprintln(renderer.out); err != nil {
					return err
				}
				input = session.ExitInput
			default:
				input = line.text
			}
		}

		events, err := controller.Handle(input)
		traceRounds(ctx, tracer, events)
		if renderErr := renderer.Render(events...); renderErr != nil {
			return renderErr
		}
		if err != nil {
			return err
		}
		if controller.State() == session.StateExited {
			return nil
		}
	}
}

func traceRounds(ctx context.Context, tracer trace.Tracer, events []session.Event) {
	for _, event := range events {
		played, ok := event.(session.RoundPlayed)
		if !ok {
			continue
		}
		_, span := tracer.Start(ctx, "duel.round", trace.WithAttributes(
			attribute.Int("duel.round", played.Round),
			attribute.String("duel.verdict", played.Verdict.String()),
			attribute.String("duel.algorithm", string(played.Algorithm)),
		))
		span.End()
	}
}

// readLines reads in on its own goroutine so Play can observe cancellation
// while the terminal blocks. Lines have no length limit, so an oversized line
// reaches the controller as an ordinary invalid choice.
func readLines(in io.Reader, done <-chan struct{}) <-chan readResult {
	out := make(chan readResult)
	go func() {
		reader := bufio.NewReader(in)
		for {
			line, err := reader.ReadString('\n')
			var result readResult
			switch {
			case err == nil:
				result = readResult{text: strings.TrimRight(line, "\r\n")}
			case errors.Is(err, io.EOF) && line != "":
				result = readResult{text: strings.TrimRight(line, "\r")}
			case errors.Is(err, io.EOF):
				result = readResult{eof: true}
			default:
				result = readResult{err: err}
			}
			select {
			case out <- result:
			case <-done:
				return
			}
			if result.eof || result.err != nil {
				return
			}
		}
	}()
	return out
}
