// Package main provides the entry point for the textsign CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/textsign/internal/cli"
	"github.com/mrz1836/textsign/internal/signal"
)

// Set via ldflags at build time.
//
//nolint:gochecknoglobals // Build-time injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	h := signal.NewHandler(context.Background())

	err := cli.Execute(h.Context(), cli.BuildInfo{Version: version, Commit: commit, Date: date})
	interrupted := h.WasInterrupted()
	h.Stop()

	if interrupted {
		os.Exit(signal.ExitCodeInterrupted)
	}
	os.Exit(cli.ExitCodeForError(err))
}
