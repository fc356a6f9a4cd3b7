package cmd

import (
	"fmt"
)

// ListOptions contains configuration for the list command.
type ListOptions struct {
	ConfigPath string // preset file path (default: kicks.yaml)
}

// RunList prints the effective kick variant set.
func RunList(opts ListOptions) error {
	cfg, err := loadConfig(opts.ConfigPath, "", 0)
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render(fmt.Sprintf("%d kick variants at %d Hz", len(cfg.Kicks), cfg.SampleRate)))
	for _, k := range cfg.Kicks {
		fmt.Printf("  %-12s %s\n", k.Name,
			mutedStyle.Render(fmt.Sprintf("%5g Hz  %5gs decay  %5gs  -> %s", k.BaseFrequency, k.Decay, k.Duration, cfg.OutputPath(k))))
	}
	return nil
}
