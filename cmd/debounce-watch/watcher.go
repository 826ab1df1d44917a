package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"sync"

	debounce "github.com/ChaitanyaGidwani/Hacktoberfest2025c"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove |
	fsnotify.Rename

type watcher struct {
	cfg     Config
	log     zerolog.Logger
	trigger func(path string)
}

// newWatcher returns a watcher which calls action with the path of the last
// relevant event, once cfg.Delay has passed without further events.
func newWatcher(
	cfg Config,
	logger zerolog.Logger,
	action func(path string),
) *watcher {
	return &watcher{
		cfg: cfg,
		log: logger,
		trigger: debounce.NewWithArg(
			cfg.Delay, action, debounce.WithLogger(logger),
		),
	}
}

func (w *watcher) relevant(event fsnotify.Event) bool {
	if event.Op&relevantOps == 0 {
		return false
	}
	if len(w.cfg.Extensions) == 0 {
		return true
	}

	return slices.Contains(w.cfg.Extensions, filepath.Ext(event.Name))
}

// Run watches the configured paths until ctx is done or the underlying
// fsnotify watcher fails.
func (w *watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	for _, path := range w.cfg.Paths {
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		w.log.Debug().Str("path", path).Msg("watching")
	}

	w.log.Info().
		Strs("paths", w.cfg.Paths).
		Dur("delay", w.cfg.Delay).
		Msg("Watcher started. Monitoring for changes...")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.log.Debug().Stringer("op", event.Op).Str("path", event.Name).
				Msg("change detected")
			w.trigger(event.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("watch error")
		}
	}
}

// runCommand returns an action which runs cfg.Command with the changed path
// in DEBOUNCE_PATH. Runs never overlap: an action triggered while the command
// is still running waits for it to finish first.
func runCommand(
	ctx context.Context,
	cfg Config,
	logger zerolog.Logger,
) func(path string) {
	var mux sync.Mutex

	return func(path string) {
		mux.Lock()
		defer mux.Unlock()

		if ctx.Err() != nil {
			return
		}

		cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
		cmd.Env = append(os.Environ(), "DEBOUNCE_PATH="+path)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		logger.Info().Str("path", path).Strs("command", cfg.Command).
			Msg("running command")

		if err := cmd.Run(); err != nil {
			logger.Error().Err(err).Msg("command failed")
			return
		}

		logger.Debug().Msg("command finished")
	}
}
