// Command debounce-watch runs a command once file system activity on the
// watched paths has settled, no matter how many events a burst of changes
// produced.
//
//	debounce-watch -ext .go -delay 500ms -- go test ./...
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

func main() {
	logger := setupLogging(os.Stderr)

	err := run(os.Args[1:], logger)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("debounce-watch failed")
	}

	logger.Warn().Msg("Shutting down...")
}

// run watches until an interrupt or termination signal arrives.
func run(args []string, logger zerolog.Logger) error {
	cfg, err := parseArgs(args, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	w := newWatcher(cfg, logger, runCommand(ctx, cfg, logger))

	return w.Run(ctx)
}
