// Package main provides the entry point for the checkdigit CLI.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// Build-time variables set via ldflags
var (
	version = "dev"
)

func main() {
	cmd := &cli.Command{
		Name:     "checkdigit",
		Usage:    "Compute and verify check digits of Brazilian document and bank numbers",
		Version:  version,
		Commands: getCommands(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
