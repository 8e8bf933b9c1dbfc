// Command admin is the operator CLI: schema migration, demo seeding and
// classroom cash resets against the configured database.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&migrateCmd{}, "database")
	subcommands.Register(&seedCmd{}, "database")
	subcommands.Register(&grantCashCmd{}, "portfolio")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
