package commands

import (
	"bytes"
	"context"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docsidebars/internal/config"
	"git.home.luguber.info/inful/docsidebars/internal/logfields"
	"git.home.luguber.info/inful/docsidebars/internal/render"
	"git.home.luguber.info/inful/docsidebars/internal/watch"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Format string `short:"f" help:"Output format (json, yaml, ts); defaults to the config or the output extension"`
	Output string `short:"o" help:"Output file, or - for stdout; defaults to output.path from the config"`
	Watch  bool   `short:"w" help:"Regenerate whenever the configuration file changes"`
}

func (gc *GenerateCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return gc.run(ctx, g, root)
}

// run generates once and, in watch mode, keeps regenerating until ctx ends.
func (gc *GenerateCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	if err := gc.generate(g, cfg); err != nil {
		return err
	}
	if !gc.Watch {
		return nil
	}

	last := cfg.Snapshot()
	w, err := watch.New(root.Config, watch.DefaultDebounce, func(context.Context) error {
		next, err := loadConfig(g, root)
		if err != nil {
			return err
		}
		snap := next.Snapshot()
		if snap == last {
			g.Logger.Debug("Configuration changed without affecting output")
			return nil
		}
		last = snap
		return gc.generate(g, next)
	})
	if err != nil {
		return err
	}
	return w.WithLogger(g.Logger).Run(ctx)
}

func (gc *GenerateCmd) generate(g *Global, cfg *config.Config) error {
	format := cfg.Output.Format
	if gc.Format != "" {
		f, err := config.ParseOutputFormat(gc.Format)
		if err != nil {
			return usageError(err)
		}
		format = f
	}
	path := cfg.Output.Path
	if gc.Output != "" {
		path = gc.Output
	}

	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	data, err := encode(render.Build(reg), format)
	if err != nil {
		return err
	}
	if err := writeOutput(path, data); err != nil {
		return err
	}
	g.Logger.Info("Sidebars generated", logfields.Path(path), logfields.Format(string(format)), "sidebars", reg.Len())
	return nil
}

func encode(doc render.Document, format config.OutputFormat) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case config.FormatYAML:
		err = doc.WriteYAML(&buf)
	case config.FormatTS:
		err = doc.WriteTS(&buf)
	default:
		err = doc.WriteJSON(&buf)
	}
	return buf.Bytes(), err
}
