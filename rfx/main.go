// Command rfx displays the retrofit dashboard of a housing portfolio.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/etnz/retrofit/cmd"
)

func main() {
	// A missing .env is fine, the environment may be set otherwise.
	envErr := godotenv.Load()

	completion().Complete("rfx")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.Setup()
	if envErr != nil && !os.IsNotExist(envErr) {
		log.Warn().Err(envErr).Msg("loading .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}
