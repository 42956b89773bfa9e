package main

import (
	"context"
	"flag"
	"log"
	"os"

	entrypoint "github.com/louisbranch/duel/internal/platform/cmd"
	"github.com/louisbranch/duel/internal/platform/config"
	"github.com/louisbranch/duel/internal/tools/commit"
)

func main() {
	cfg, err := commit.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[DUEL-COMMIT] ")
	err = entrypoint.RunWithTelemetry(context.Background(), entrypoint.ServiceCommit, func(context.Context) error {
		return commit.Run(cfg, os.Stdout, nil)
	})
	if err != nil {
		config.Exitf("commit: %v", err)
	}
}
