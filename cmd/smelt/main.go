// Package main is the entry point for the smelt build helper.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/smelt/cmd/smelt/commands"
	"go.trai.ch/smelt/internal/adapters/config"
	"go.trai.ch/smelt/internal/app"
	"go.trai.ch/smelt/internal/core/domain"
	_ "go.trai.ch/smelt/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The tool config is loaded while building the component graph, before
	// cobra parses flags, so the persistent --config flag is read up front.
	ctx = config.WithPath(ctx, configPathFromArgs(os.Args[1:]))

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer components.Telemetry.Close() //nolint:errcheck // nothing left to do with a close failure

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrExtractionFailed) || errors.Is(err, domain.ErrExtractorCrashed) {
			// Already logged with counts by the runner.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}

// configPathFromArgs extracts the persistent --config value. Empty means the
// conventional file name.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}
