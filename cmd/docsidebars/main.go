package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsidebars/cmd/docsidebars/commands"
	"git.home.luguber.info/inful/docsidebars/internal/foundation/errors"
	"git.home.luguber.info/inful/docsidebars/internal/version"
)

func main() {
	var cli commands.CLI
	global := &commands.Global{}
	ctx := kong.Parse(&cli,
		kong.Name("docsidebars"),
		kong.Description("Generate and check the documentation site sidebars."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)
	err := ctx.Run(&cli)
	errors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
}
