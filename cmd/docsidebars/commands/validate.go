package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsidebars/internal/metrics"
	"git.home.luguber.info/inful/docsidebars/internal/validate"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	ContentRoot   string `name:"content-root" help:"Directory holding the autogenerated content directories (overrides config)"`
	StaticDir     string `name:"static-dir" help:"Directory icon paths are resolved against (overrides config)"`
	CheckExternal bool   `name:"check-external" help:"Probe external link targets over HTTP"`
	MetricsFile   string `name:"metrics-file" help:"Write Prometheus metrics to this textfile"`
	Format        string `short:"f" help:"Report format" default:"text" enum:"text,json"`
}

func (vc *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	opts := validate.Options{
		ContentRoot:    cfg.Validation.ContentRoot,
		StaticDir:      cfg.Validation.StaticDir,
		CheckExternal:  cfg.Validation.CheckExternal || vc.CheckExternal,
		RequestTimeout: cfg.RequestTimeout(),
		MaxConcurrent:  cfg.Validation.MaxConcurrent,
	}
	if vc.ContentRoot != "" {
		opts.ContentRoot = vc.ContentRoot
	}
	if vc.StaticDir != "" {
		opts.StaticDir = vc.StaticDir
	}

	v := validate.New(opts).WithLogger(g.Logger)
	var promReg *prom.Registry
	if vc.MetricsFile != "" {
		promReg = prom.NewRegistry()
		v.WithRecorder(metrics.NewPrometheusRecorder(promReg))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rep, err := v.Run(ctx, reg)
	if err != nil {
		return err
	}
	if promReg != nil {
		if err := metrics.WriteTextfile(vc.MetricsFile, promReg); err != nil {
			return err
		}
	}

	if vc.Format == "json" {
		err = rep.WriteJSON(stdout)
	} else {
		err = rep.WriteText(stdout)
	}
	if err != nil {
		return err
	}
	return rep.Err()
}
