package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type adviseCmd struct {
	days int
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "chat with Gemini about the portfolio" }
func (*adviseCmd) Usage() string {
	return `pss advise [-d <days>] [<prompt>...]

  Starts an interactive session with a Gemini advisor that can read the
  portfolio. With -d, the portfolio is first simulated on a copy, so the
  advisor can comment on the outcome; the saved portfolio is left untouched.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "d", 0, "simulate a copy of the portfolio for that many days first")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days < 0 {
		fmt.Fprintf(os.Stderr, "Error: cannot simulate %d days: %v\n", c.days, stocksim.ErrNegativeValue)
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	var outcomes []stocksim.Outcome
	if c.days > 0 {
		// p is a private copy, it is never saved.
		outcomes = p.Simulate(c.days, source())
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.NewAdvisor(advisorModel, p, outcomes)
	if err := advisor.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(stdout, stdin, advisor)
	a.Print = printMarkdown

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := a.Run(ctx, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
