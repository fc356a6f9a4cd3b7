// Package cmd provides CLI command implementations for kickgen.
// This includes the generate, init, list, and watch commands.
package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/drumforge/kickgen/internal/config"
	"github.com/drumforge/kickgen/internal/synth"
	"github.com/drumforge/kickgen/internal/wav"
)

// GenerateOptions contains configuration for the generate command.
type GenerateOptions struct {
	ConfigPath string // preset file path (default: kicks.yaml)
	OutputDir  string // overrides the configured output directory
	Seed       int64  // overrides the configured noise seed when non-zero
}

// RunGenerate synthesizes every configured kick variant and writes the
// WAV files. The first failure aborts the run.
func RunGenerate(opts GenerateOptions) error {
	cfg, err := loadConfig(opts.ConfigPath, opts.OutputDir, opts.Seed)
	if err != nil {
		return err
	}
	return generate(cfg)
}

// loadConfig loads the preset file and applies command-line overrides.
func loadConfig(configPath, outputDir string, seed int64) (*config.Config, error) {
	if configPath == "" {
		configPath = config.DefaultPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

// generate renders the full variant set from an already-loaded config.
func generate(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for _, k := range cfg.Kicks {
		samples, err := synth.Generate(k.Params(cfg.SampleRate), rng)
		if err != nil {
			return fmt.Errorf("kick %q: %w", k.Name, err)
		}

		path := cfg.OutputPath(k)
		if err := wav.WriteFile(path, samples, cfg.SampleRate); err != nil {
			return err
		}

		fmt.Printf("%s Generated %s %s\n",
			successStyle.Render(iconOK),
			path,
			mutedStyle.Render(fmt.Sprintf("(%g Hz, %gs decay, %gs)", k.BaseFrequency, k.Decay, k.Duration)))
	}

	fmt.Println(mutedStyle.Render(fmt.Sprintf("%d kick samples written to %s", len(cfg.Kicks), cfg.OutputDir)))
	return nil
}
