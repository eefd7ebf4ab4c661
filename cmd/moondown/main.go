// Package main is the entry point for the moondown CLI.
package main

import (
	"errors"
	"os"

	"github.com/moondown/moondown/internal/cli"
	"github.com/moondown/moondown/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrDifferencesFound - it's just a signal for exit code.
		if !errors.Is(err, cli.ErrDifferencesFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFor(err)
	}

	return cli.ExitSuccess
}
