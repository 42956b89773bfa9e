// Package verify recomputes a revealed commitment so the human can check
// that the computer's move was fixed before they chose.
package verify

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

// Config holds the revealed values to check.
type Config struct {
	Key       string
	Move      string
	Digest    string
	Algorithm string `env:"DUEL_DIGEST_ALGORITHM" envDefault:"hmac-sha256"`
	Locale    string `env:"DUEL_LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Key, "key", "", "revealed key (hex); the digest is keyed with the decoded bytes, not the hex text")
	fs.StringVar(&cfg.Move, "move", "", "revealed computer move")
	fs.StringVar(&cfg.Digest, "digest", "", "digest shown before the move (hex)")
	fs.StringVar(&cfg.Algorithm, "algorithm", string(fairness.DefaultAlgorithm), "digest algorithm (hmac-sha256, blake2b-256)")
	fs.StringVar(&cfg.Locale, "locale", "en-US", "output locale")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run checks the digest and writes a confirmation to out. A digest that does
// not match returns an error wrapping fairness.ErrDigestMismatch.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	var missing []string
	for _, field := range []struct{ flag, value string }{
		{"-key", cfg.Key},
		{"-move", cfg.Move},
		{"-digest", cfg.Digest},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.flag)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}

	alg, err := fairness.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	if err := fairness.VerifyHex(alg, cfg.Key, cfg.Move, cfg.Digest); err != nil {
		return err
	}
	printer := catalog.Default().Printer(cfg.Locale)
	_, err = fmt.Fprintln(out, printer.Sprintf("tools.verify.ok", cfg.Move, alg.Label()))
	return err
}

