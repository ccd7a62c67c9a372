package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the cash balance and the invested value" }
func (*balanceCmd) Usage() string {
	return `pss balance

  Displays the free cash, the value invested in positions and their total.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (*balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(stdout, renderer.BalanceMarkdown(p))
	return subcommands.ExitSuccess
}

type showCmd struct {
	html bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display every position of the portfolio" }
func (*showCmd) Usage() string {
	return `pss show [-html]

  Displays the portfolio: cash, invested value and a table of positions.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.html, "html", false, "print the report as HTML")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return printReport(renderer.PortfolioMarkdown(p), c.html)
}

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the portfolio document" }
func (*queryCmd) Usage() string {
	return `pss query <expression>

  Evaluates a JSONPath expression on the portfolio document and prints the
  result as JSON. See 'pss topic persistence' for the document keys.

Usage Examples:
$ pss query '$.portfolio[*].symbol'
$ pss query '$.portfolio[?(@.risk > 3)].symbol'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query requires exactly one expression")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(PortfolioPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	result, err := stocksim.Query(file, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "    ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
