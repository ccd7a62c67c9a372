package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocksim"
	"github.com/google/subcommands"
)

type depositCmd struct{}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add cash to the portfolio" }
func (*depositCmd) Usage() string {
	return `pss deposit <amount>

  Adds <amount> to the cash balance of the portfolio.
`
}

func (*depositCmd) SetFlags(f *flag.FlagSet) {}

func (*depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, status := amountArg(f, 0)
	if status != subcommands.ExitSuccess {
		return status
	}
	return update(func(p *stocksim.Portfolio) error {
		if err := p.Deposit(amount); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Portfolio balance: %s\n", stocksim.USD(p.Balance()))
		return nil
	})
}

type withdrawCmd struct{}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "remove cash from the portfolio" }
func (*withdrawCmd) Usage() string {
	return `pss withdraw <amount>

  Removes <amount> from the cash balance of the portfolio. The balance cannot
  go below zero.
`
}

func (*withdrawCmd) SetFlags(f *flag.FlagSet) {}

func (*withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, status := amountArg(f, 0)
	if status != subcommands.ExitSuccess {
		return status
	}
	return update(func(p *stocksim.Portfolio) error {
		if err := p.Withdraw(amount); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Portfolio balance: %s\n", stocksim.USD(p.Balance()))
		return nil
	})
}

// amountArg parses the i-th positional argument as an amount.
func amountArg(f *flag.FlagSet, i int) (float64, subcommands.ExitStatus) {
	if f.NArg() <= i {
		fmt.Fprintln(os.Stderr, "Error: missing amount")
		return 0, subcommands.ExitUsageError
	}
	amount, err := parseAmount(f.Arg(i))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 0, subcommands.ExitUsageError
	}
	return amount, subcommands.ExitSuccess
}
