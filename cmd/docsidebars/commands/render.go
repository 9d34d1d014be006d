package commands

import (
	"bytes"

	"git.home.luguber.info/inful/docsidebars/internal/logfields"
	"git.home.luguber.info/inful/docsidebars/internal/render"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Sidebar string `arg:"" help:"Sidebar key to preview"`
	Output  string `short:"o" help:"Output HTML file, or - for stdout" default:"-"`
}

func (rc *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := render.WritePreview(&buf, reg, rc.Sidebar); err != nil {
		return err
	}
	if err := writeOutput(rc.Output, buf.Bytes()); err != nil {
		return err
	}
	g.Logger.Debug("Preview rendered", logfields.Sidebar(rc.Sidebar), logfields.Path(rc.Output))
	return nil
}
