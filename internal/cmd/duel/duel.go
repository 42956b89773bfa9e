// Package duel parses duel command flags and runs an interactive session.
package duel

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/louisbranch/duel/internal/duel/console"
	"github.com/louisbranch/duel/internal/duel/fairness"
	"github.com/louisbranch/duel/internal/duel/moves"
	"github.com/louisbranch/duel/internal/duel/session"
	entrypoint "github.com/louisbranch/duel/internal/platform/cmd"
	apperrors "github.com/louisbranch/duel/internal/platform/errors"
	"github.com/louisbranch/duel/internal/platform/i18n/catalog"
)

// Config holds duel command configuration.
type Config struct {
	Locale       string `env:"DUEL_LOCALE" envDefault:"en-US"`
	KeyBytes     int    `env:"DUEL_KEY_BYTES" envDefault:"32"`
	Algorithm    string `env:"DUEL_DIGEST_ALGORITHM" envDefault:"hmac-sha256"`
	SingleCommit bool   `env:"DUEL_SINGLE_COMMIT"`
	// Moves are the positional arguments left after flags.
	Moves []string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Locale, "locale", "en-US", "Output locale (en-US, pt-BR)")
	fs.IntVar(&cfg.KeyBytes, "key-bytes", fairness.KeySize, "Commitment key size in bytes (at least 32)")
	fs.StringVar(&cfg.Algorithm, "algorithm", string(fairness.DefaultAlgorithm), "Commitment digest algorithm (hmac-sha256, blake2b-256)")
	fs.BoolVar(&cfg.SingleCommit, "single-commit", false, "Keep one hidden move and key for the whole session")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	cfg.Moves = fs.Args()
	return cfg, nil
}

// Run validates the moves and plays one session on in and out. An
// interrupted session ends without error.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	set, err := moves.New(cfg.Moves)
	if err != nil {
		return err
	}
	alg, err := fairness.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	engine, err := fairness.NewEngine(fairness.Options{Algorithm: alg, KeySize: cfg.KeyBytes})
	if err != nil {
		return err
	}
	controller, err := session.New(set, session.Options{Engine: engine, SingleCommit: cfg.SingleCommit})
	if err != nil {
		return err
	}
	renderer := console.NewRenderer(out, cfg.Locale)

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDuel, func(ctx context.Context) error {
		err := console.Play(ctx, controller, in, renderer)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
}

// FailureLines returns the localized diagnostic for a failed Run. Move list
// problems are followed by usage and a hint.
func FailureLines(program string, locale string, err error) []string {
	lines := []string{apperrors.LocalizedMessage(err, locale)}
	if !isMoveError(err) {
		return lines
	}
	printer := catalog.Default().Printer(locale)
	return append(lines,
		printer.Sprintf("duel.usage", program),
		printer.Sprintf("duel.usage.hint"),
	)
}

func isMoveError(err error) bool {
	switch apperrors.GetCode(err) {
	case apperrors.CodeMovesTooFew, apperrors.CodeMovesEvenCount, apperrors.CodeMovesDuplicate, apperrors.CodeMovesBlank:
		return true
	default:
		return false
	}
}
