package commit

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"strings"
	"testing"

	"github.com/louisbranch/duel/internal/duel/fairness"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("commit", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-move", "Rock"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Bytes != 32 || cfg.Algorithm != "hmac-sha256" || cfg.Move != "Rock" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseConfigBadArgs(t *testing.T) {
	fs := flag.NewFlagSet("commit", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-invalid"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestRunWritesVerifiableCommitment(t *testing.T) {
	buf := &bytes.Buffer{}
	key := bytes.Repeat([]byte{0xab}, 32)
	cfg := Config{Move: "Spock", Algorithm: "hmac-sha256", Bytes: 32, Locale: "en-US"}
	if err := Run(cfg, buf, bytes.NewReader(key)); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", buf.String())
	}
	if lines[0] != "algorithm: hmac-sha256" {
		t.Fatalf("algorithm line = %q", lines[0])
	}
	digest := strings.TrimPrefix(lines[1], "digest: ")
	keyHex := strings.TrimPrefix(lines[2], "key: ")
	if keyHex != strings.Repeat("ab", 32) {
		t.Fatalf("key line = %q", lines[2])
	}
	if err := fairness.VerifyHex(fairness.HMACSHA256, keyHex, "Spock", digest); err != nil {
		t.Fatalf("commitment does not verify: %v", err)
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	tcs := map[string]Config{
		"blank move":  {Move: " ", Bytes: 32},
		"short key":   {Move: "Rock", Bytes: 16},
		"unknown alg": {Move: "Rock", Bytes: 32, Algorithm: "md5"},
	}
	for name, cfg := range tcs {
		t.Run(name, func(t *testing.T) {
			if err := Run(cfg, &bytes.Buffer{}, nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRunNilOutput(t *testing.T) {
	if err := Run(Config{Move: "Rock", Bytes: 32}, nil, nil); err == nil {
		t.Fatal("expected error for nil output")
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, fmt.Errorf("read error") }

func TestRunReaderError(t *testing.T) {
	err := Run(Config{Move: "Rock", Bytes: 32}, &bytes.Buffer{}, errReader{})
	if !errors.Is(err, fairness.ErrEntropyUnavailable) {
		t.Fatalf("expected entropy error, got %v", err)
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("DUEL_KEY_BYTES", "48")
	t.Setenv("DUEL_DIGEST_ALGORITHM", "blake2b-256")
	fs := flag.NewFlagSet("commit", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-move", "Rock", "-algorithm", "hmac-sha256"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Bytes != 48 {
		t.Fatalf("expected env key bytes 48, got %d", cfg.Bytes)
	}
	if cfg.Algorithm != "hmac-sha256" {
		t.Fatalf("expected flag to override env algorithm, got %q", cfg.Algorithm)
	}
}
