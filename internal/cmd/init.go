package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/drumforge/kickgen/embed"
	"github.com/drumforge/kickgen/internal/config"
)

// InitOptions contains configuration for the init command.
type InitOptions struct {
	ConfigPath string // preset file destination (default: kicks.yaml)
}

// RunInit writes the default preset template so it can be edited.
// It refuses to overwrite an existing file.
func RunInit(opts InitOptions) error {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("preset file already exists at %s", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create preset directory: %w", err)
		}
	}

	if err := os.WriteFile(path, embed.DefaultPreset(), 0o644); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}

	fmt.Printf("%s Created %s\n", successStyle.Render(iconOK), path)
	fmt.Println(mutedStyle.Render("Edit it and run 'kickgen' to render the set."))
	return nil
}
