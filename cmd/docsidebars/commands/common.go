package commands

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsidebars/internal/config"
	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
	"git.home.luguber.info/inful/docsidebars/internal/logfields"
)

// stdout receives command output; tests replace it.
var stdout io.Writer = os.Stdout

// Global carries state shared by subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsidebars.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"1" help:"Write the sidebar configuration for the documentation site"`
	Render   RenderCmd   `cmd:"" help:"Render an HTML preview of one sidebar"`
	Validate ValidateCmd `cmd:"" help:"Check links, icons and content directories"`
	Init     InitCmd     `cmd:"" help:"Write a configuration file describing the built-in sidebars"`
}

// AfterApply sets up logging once flags are parsed.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

// loadConfig reads the configured file. A missing file at the default path
// selects the built-in configuration; a missing explicit path is an error.
func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		if errors.HasCategory(err, errors.CategoryNotFound) && root.Config == config.DefaultPath {
			g.Logger.Debug("No configuration file, using built-in sidebars", logfields.Path(root.Config))
			return config.Default(), nil
		}
		return nil, err
	}
	if cfg.Logging.Format != config.LogFormatText || cfg.Logging.Level != config.LogLevelInfo {
		g.Logger = cfg.Logging.NewLogger(os.Stderr, root.Verbose)
		slog.SetDefault(g.Logger)
	}
	for _, w := range cfg.Warnings {
		g.Logger.Warn("Configuration normalized", "detail", w)
	}
	return cfg, nil
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := io.Copy(stdout, bytes.NewReader(data))
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.FileSystemError("failed to create output directory").WithCause(err).
				WithContext("path", dir).
				Build()
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.FileSystemError("failed to write output").WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}

// usageError marks a bad flag value. It shares exit code 2 with failed validation.
func usageError(err error) error {
	return errors.WrapError(err, errors.CategoryValidation, "invalid flag value").Fatal().Build()
}
