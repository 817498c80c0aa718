package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/mdsite/cmd/mdsite/commands"
	"git.home.luguber.info/inful/mdsite/internal/version"
)

func main() {
	// Project-local .env files feed the MDSITE_* overrides; absence is fine.
	_ = godotenv.Load()

	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("mdsite"),
		kong.Description("Compile a markdown content tree into a static HTML site."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
		kong.Bind(cli, &commands.Global{}),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
