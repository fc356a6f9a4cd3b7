package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/drumforge/kickgen/internal/config"
)

// WatchOptions contains configuration for the watch command.
type WatchOptions struct {
	ConfigPath string // preset file path (default: kicks.yaml)
	OutputDir  string // overrides the configured output directory
	Seed       int64  // overrides the configured noise seed when non-zero
}

// RunWatch regenerates the kick set whenever the preset file changes,
// until interrupted.
func RunWatch(opts WatchOptions) error {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}

	// Render once up front so the watch starts from current output.
	if err := RunGenerate(GenerateOptions(opts)); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render(iconFailed), err)
	}

	watcher, err := config.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	fmt.Println(mutedStyle.Render(fmt.Sprintf("Watching %s (press Ctrl+C to stop)", path)))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-sigCh:
			fmt.Println(mutedStyle.Render("Stopped."))
			return nil

		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if event.Error != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render(iconFailed), event.Error)
				continue
			}

			cfg := event.Config
			if opts.OutputDir != "" {
				cfg.OutputDir = opts.OutputDir
			}
			if opts.Seed != 0 {
				cfg.Seed = opts.Seed
			}
			if err := generate(cfg); err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render(iconFailed), err)
			}
		}
	}
}
