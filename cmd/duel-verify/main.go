package main

import (
	"context"
	"flag"
	"log"
	"os"

	entrypoint "github.com/louisbranch/duel/internal/platform/cmd"
	"github.com/louisbranch/duel/internal/platform/config"
	apperrors "github.com/louisbranch/duel/internal/platform/errors"
	"github.com/louisbranch/duel/internal/tools/verify"
)

func main() {
	cfg, err := verify.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[DUEL-VERIFY] ")
	err = entrypoint.RunWithTelemetry(context.Background(), entrypoint.ServiceVerify, func(context.Context) error {
		return verify.Run(cfg, os.Stdout)
	})
	if err != nil {
		config.ExitLines(apperrors.LocalizedMessage(err, cfg.Locale))
	}
}
