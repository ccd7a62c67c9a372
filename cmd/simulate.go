package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/renderer"
	"github.com/google/subcommands"
)

type simulateCmd struct {
	days int
	html bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "hold every position for a number of days" }
func (*simulateCmd) Usage() string {
	return `pss simulate -d <days> [-html]

  Simulates the daily price moves of every position for <days> days, then
  prints the outcome and saves the portfolio. Use the global -seed flag to
  replay a simulation.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "d", 1, "number of days to hold the positions")
	f.BoolVar(&c.html, "html", false, "print the outcome as HTML")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days < 0 {
		fmt.Fprintf(os.Stderr, "Error: cannot simulate %d days: %v\n", c.days, stocksim.ErrNegativeValue)
		return subcommands.ExitUsageError
	}
	var report string
	status := update(func(p *stocksim.Portfolio) error {
		report = renderer.OutcomesMarkdown(p.Simulate(c.days, source()))
		return nil
	})
	if status != subcommands.ExitSuccess {
		return status
	}
	return printReport(report, c.html)
}

// printReport writes a markdown report to stdout, as HTML when asked.
func printReport(report string, html bool) subcommands.ExitStatus {
	if !html {
		printMarkdown(stdout, report)
		return subcommands.ExitSuccess
	}
	out, err := renderer.HTML(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(stdout, out)
	return subcommands.ExitSuccess
}
