package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"mystredirect/internal/myst"
	"mystredirect/internal/redirect"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// CLI definition. Single-command tool: generate redirect pages from the
// MyST table of contents.
type CLI struct {
	BaseURL    string           `name:"base-url" required:"" help:"Base URL of the website (e.g., https://jupyter.org/governance/)"`
	OutputDir  string           `name:"output-dir" default:"_build/html" help:"Directory where redirect files will be created"`
	MystConfig string           `name:"myst-config" help:"Path to the myst.yml configuration file (default: auto-discover)"`
	Verbose    bool             `short:"v" help:"Enable verbose logging"`
	Version    kong.VersionFlag `name:"version" help:"Show version and exit"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Run executes one generation pass: resolve the config, flatten the TOC,
// emit redirects, report the count.
func (c *CLI) Run() error {
	configPath := c.MystConfig
	if configPath == "" {
		discovered, err := myst.Discover()
		if err != nil {
			return err
		}
		configPath = discovered
		fmt.Printf("Using config: %s\n", configPath)
	}

	cfg, err := myst.Load(configPath)
	if err != nil {
		return err
	}

	files := cfg.Files()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No files found in TOC")
	}

	slog.Debug("Generating redirects",
		"config", configPath,
		"base_url", c.BaseURL,
		"output", c.OutputDir,
		"files", len(files))

	generator := redirect.NewGenerator(c.BaseURL, c.OutputDir)
	count, err := generator.Generate(files)
	if err != nil {
		return err
	}

	fmt.Printf("\nGenerated %d redirect files in %s\n", count, c.OutputDir)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mystredirect"),
		kong.Description("Generate HTML redirect files for Jupyter Book v1 to MyST migration."),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, myst.ErrInvalidStructure) {
			fmt.Fprintln(os.Stderr, "Make sure your myst.yml has a 'project.toc' structure")
		}
		os.Exit(1)
	}
}
