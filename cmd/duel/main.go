package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	duelcmd "github.com/louisbranch/duel/internal/cmd/duel"
	"github.com/louisbranch/duel/internal/platform/config"
)

func main() {
	cfg, err := duelcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[DUEL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := duelcmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		config.ExitLines(duelcmd.FailureLines(filepath.Base(os.Args[0]), cfg.Locale, err)...)
	}
}
