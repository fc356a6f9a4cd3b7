package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/drumforge/kickgen/internal/cmd"
)

const usageText = `kickgen - kick drum sample generator

Usage:
  kickgen [generate] [flags]   render every kick in the preset file
  kickgen init [flags]         write the default kicks.yaml template
  kickgen list [flags]         show the effective kick variants
  kickgen watch [flags]        regenerate whenever the preset file changes

Flags:
  -config path   preset file path (default kicks.yaml)
  -out dir       output directory override (generate, watch)
  -seed n        noise seed override, 0 = from clock (generate, watch)
`

func main() {
	args := os.Args[1:]

	sub := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		sub = args[0]
		args = args[1:]
	}

	var err error
	switch sub {
	case "generate":
		err = runGenerate(args)
	case "init":
		err = runInit(args)
	case "list":
		err = runList(args)
	case "watch":
		err = runWatch(args)
	case "help":
		fmt.Print(usageText)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", sub, usageText)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "", "preset file path")
	out := fs.String("out", "", "output directory override")
	seed := fs.Int64("seed", 0, "noise seed override (0 = from clock)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return cmd.RunGenerate(cmd.GenerateOptions{
		ConfigPath: *configPath,
		OutputDir:  *out,
		Seed:       *seed,
	})
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := fs.String("config", "", "preset file path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return cmd.RunInit(cmd.InitOptions{ConfigPath: *configPath})
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	configPath := fs.String("config", "", "preset file path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return cmd.RunList(cmd.ListOptions{ConfigPath: *configPath})
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "", "preset file path")
	out := fs.String("out", "", "output directory override")
	seed := fs.Int64("seed", 0, "noise seed override (0 = from clock)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return cmd.RunWatch(cmd.WatchOptions{
		ConfigPath: *configPath,
		OutputDir:  *out,
		Seed:       *seed,
	})
}
