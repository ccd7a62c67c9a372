package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocksim"
	"github.com/google/subcommands"
)

type addCmd struct {
	price float64
	cap   float64
	risk  int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a position to the portfolio" }
func (*addCmd) Usage() string {
	return `pss add -p <price> [-r <risk>] [-c <market cap>] <symbol>

  Adds a position on <symbol> (1 to 5 capital letters) at the given price.
  The position holds no money until you invest in it.

Usage Examples:
$ pss add -p 135.37 -r 2 -c 2723000000000 AAPL
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.price, "p", 0, "current price of the stock")
	f.IntVar(&c.risk, "r", 1, "risk tier from 1 (safest) to 5 (riskiest)")
	f.Float64Var(&c.cap, "c", 10_000_000, "market cap, the price never goes above it")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: add requires exactly one symbol")
		return subcommands.ExitUsageError
	}
	pos := stocksim.NewPosition()
	for _, err := range []error{
		pos.SetSymbol(f.Arg(0)),
		pos.SetPrice(c.price),
		pos.SetRisk(c.risk),
		pos.SetCap(c.cap),
	} {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	return update(func(p *stocksim.Portfolio) error {
		p.AddPosition(pos)
		fmt.Fprintf(stdout, "Added %s at %s\n", pos.Symbol(), stocksim.USD(pos.Price()))
		return nil
	})
}

type investCmd struct{}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "move cash into a position" }
func (*investCmd) Usage() string {
	return `pss invest <symbol> <amount>

  Moves <amount> of cash into the first position on <symbol>.
`
}

func (*investCmd) SetFlags(f *flag.FlagSet) {}

func (*investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: invest requires a symbol and an amount")
		return subcommands.ExitUsageError
	}
	amount, status := amountArg(f, 1)
	if status != subcommands.ExitSuccess {
		return status
	}
	return update(func(p *stocksim.Portfolio) error {
		pos, err := find(p, f.Arg(0))
		if err != nil {
			return err
		}
		if err := p.Invest(pos, amount); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Invested %s in %s, portfolio balance: %s\n", stocksim.USD(amount), pos.Symbol(), stocksim.USD(p.Balance()))
		return nil
	})
}

type sellCmd struct{}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell a position and remove it" }
func (*sellCmd) Usage() string {
	return `pss sell <symbol>

  Sells the first position on <symbol>: its worth goes back to the cash balance
  and the position is removed from the portfolio.
`
}

func (*sellCmd) SetFlags(f *flag.FlagSet) {}

func (*sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: sell requires exactly one symbol")
		return subcommands.ExitUsageError
	}
	return update(func(p *stocksim.Portfolio) error {
		pos, err := find(p, f.Arg(0))
		if err != nil {
			return err
		}
		worth := pos.Invested()
		p.Liquidate(pos)
		fmt.Fprintf(stdout, "Sold %s for %s, portfolio balance: %s\n", pos.Symbol(), stocksim.USD(worth), stocksim.USD(p.Balance()))
		return nil
	})
}

// find returns the position on ticker, or ErrNotFound.
func find(p *stocksim.Portfolio, ticker string) (*stocksim.Position, error) {
	pos, ok := p.Find(ticker)
	if !ok {
		return nil, fmt.Errorf("no position on %q: %w", ticker, stocksim.ErrNotFound)
	}
	return pos, nil
}
