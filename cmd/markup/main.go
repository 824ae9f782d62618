package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/markup/cmd/markup/commands"
	"git.home.luguber.info/inful/markup/internal/foundation/errors"
	"git.home.luguber.info/inful/markup/internal/version"
)

func newParser(cli *commands.CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("markup"),
		kong.Description("Parse hybrid markup documents with embedded templates."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	cli := &commands.CLI{}
	parser, err := newParser(cli)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	global := commands.NewGlobal(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	err = kctx.Run(global, cli)

	errors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
}
