// Command pss is the portfolio stock simulator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/stocksim/cmd"
	"github.com/etnz/stocksim/config"
	"github.com/etnz/stocksim/logger"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	logger.SetGlobalLogger(logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty}))

	// exits when invoked by the shell for completion.
	complete.Complete(path.Base(os.Args[0]), cmd.Completion())

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	cmd.Configure(cfg)
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
