// Package commit prints a fresh commitment for a move so an operator can
// publish a digest ahead of time and reveal the key later.
package commit

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/duel/internal/duel/fairness"
	entrypoint "github.com/louisbranch/duel/internal/platform/cmd"
	"github.com/louisbranch/duel/internal/platform/i18n/catalog"
)

// Config holds configuration for commitment generation.
type Config struct {
	Move      string
	Algorithm string `env:"DUEL_DIGEST_ALGORITHM" envDefault:"hmac-sha256"`
	Bytes     int    `env:"DUEL_KEY_BYTES" envDefault:"32"`
	Locale    string `env:"DUEL_LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Move, "move", "", "move name to commit to")
	fs.StringVar(&cfg.Algorithm, "algorithm", string(fairness.DefaultAlgorithm), "digest algorithm (hmac-sha256, blake2b-256)")
	fs.IntVar(&cfg.Bytes, "bytes", fairness.KeySize, "key size in bytes (default: 32)")
	fs.StringVar(&cfg.Locale, "locale", "en-US", "output locale")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run commits to cfg.Move with a key read from reader and writes the
// algorithm, digest and key to out.
func Run(cfg Config, out io.Writer, reader io.Reader) error {
	if strings.TrimSpace(cfg.Move) == "" {
		return errors.New("move is required")
	}
	if out == nil {
		return errors.New("output is required")
	}
	alg, err := fairness.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	engine, err := fairness.NewEngine(fairness.Options{
		Algorithm: alg,
		Keys:      fairness.RandomKeys(reader, cfg.Bytes),
	})
	if err != nil {
		return err
	}
	commitment, err := engine.Commit(cfg.Move)
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	printer := catalog.Default().Printer(cfg.Locale)
	_, err = fmt.Fprintf(out, "%s\n%s\n%s\n",
		printer.Sprintf("tools.commit.algorithm", string(alg)),
		printer.Sprintf("tools.commit.digest", commitment.Digest),
		printer.Sprintf("tools.commit.key", commitment.KeyHex()),
	)
	return err
}
