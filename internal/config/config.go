// Package config loads and saves the kick preset file. The preset file
// lists the kick variants to render plus the shared output settings, and
// built-in defaults reproduce the standard four-kick set when no file
// exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/drumforge/kickgen/internal/synth"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the preset file looked up when no -config flag is given.
const DefaultPath = "kicks.yaml"

// defaultDuration is applied to kicks that omit a duration.
const defaultDuration = 0.5

// Kick describes one kick drum variant.
type Kick struct {
	Name          string  `yaml:"name"`
	BaseFrequency float64 `yaml:"baseFrequency"` // sweep start in Hz
	Decay         float64 `yaml:"decay"`         // amplitude decay in seconds
	Duration      float64 `yaml:"duration"`      // total length in seconds
}

// Params converts the variant to synthesis parameters at sampleRate.
func (k Kick) Params(sampleRate int) synth.Params {
	return synth.Params{
		Duration:      k.Duration,
		SampleRate:    sampleRate,
		BaseFrequency: k.BaseFrequency,
		Decay:         k.Decay,
	}
}

// Config holds the full preset file contents.
type Config struct {
	OutputDir  string `yaml:"outputDir"`
	SampleRate int    `yaml:"sampleRate"`
	Seed       int64  `yaml:"seed"` // 0 means derive a seed from the clock
	Kicks      []Kick `yaml:"kicks"`
}

// Default returns the built-in preset set: the four standard kick
// variants at 44.1 kHz.
func Default() *Config {
	return &Config{
		OutputDir:  filepath.Join("assets", "audio"),
		SampleRate: synth.DefaultSampleRate,
		Kicks: []Kick{
			{Name: "kick1", BaseFrequency: 55, Decay: 0.4, Duration: 0.5},  // deep
			{Name: "kick2", BaseFrequency: 70, Decay: 0.25, Duration: 0.5}, // punchy
			{Name: "kick3", BaseFrequency: 85, Decay: 0.2, Duration: 0.5},  // tight
			{Name: "kick4", BaseFrequency: 50, Decay: 0.5, Duration: 0.5},  // sub
		},
	}
}

// Load reads the preset file at path. A missing file returns Default()
// with no error; a malformed or invalid file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read preset file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse preset file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preset file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the preset file to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// applyDefaults fills omitted fields with their built-in values.
func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = Default().OutputDir
	}
	if c.SampleRate == 0 {
		c.SampleRate = synth.DefaultSampleRate
	}
	for i := range c.Kicks {
		if c.Kicks[i].Duration == 0 {
			c.Kicks[i].Duration = defaultDuration
		}
	}
}

// Validate checks the preset set as a whole: at least one kick, valid
// distinct names, and strictly positive synthesis parameters.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d must be positive", c.SampleRate)
	}
	if len(c.Kicks) == 0 {
		return fmt.Errorf("no kicks defined")
	}

	seen := make(map[string]bool, len(c.Kicks))
	for _, k := range c.Kicks {
		if !isValidKickName(k.Name) {
			return fmt.Errorf("invalid kick name %q: must contain only letters, numbers, hyphens, and underscores", k.Name)
		}
		if seen[k.Name] {
			return fmt.Errorf("duplicate kick name %q", k.Name)
		}
		seen[k.Name] = true

		if err := k.Params(c.SampleRate).Validate(); err != nil {
			return fmt.Errorf("kick %q: %w", k.Name, err)
		}
	}
	return nil
}

// OutputPath returns the WAV destination for a variant.
func (c *Config) OutputPath(k Kick) string {
	return filepath.Join(c.OutputDir, k.Name+".wav")
}

// isValidKickName checks if the name contains only valid characters.
func isValidKickName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_') {
			return false
		}
	}
	return true
}
