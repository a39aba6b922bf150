package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/homeledger/backend/internal/commands"
)

//	@title			Household Ledger
//	@description	The backend for a household ledger
//	@license.name	AGPL-3.0
//	@license.url	https://www.gnu.org/licenses/agpl-3.0.en.html

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range commands.Commands {
		commander.Register(c, "")
	}

	flag.Parse()

	// Without a subcommand, the API is served
	if flag.NArg() == 0 {
		_ = flag.CommandLine.Parse([]string{"serve"})
	}

	os.Exit(int(commander.Execute(context.Background())))
}
