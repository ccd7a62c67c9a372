// Package cmd implements the CLI application to simulate a stock portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Commands returns every subcommand of the application.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&depositCmd{}, &withdrawCmd{},
		&addCmd{}, &investCmd{}, &sellCmd{},
		&simulateCmd{},
		&balanceCmd{}, &showCmd{}, &queryCmd{},
		&menuCmd{},
		&topicCmd{}, &adviseCmd{},
	}
}

// groups of the commands, by name.
var groups = map[string]string{
	"deposit":  "cash",
	"withdraw": "cash",
	"add":      "positions",
	"invest":   "positions",
	"sell":     "positions",
	"simulate": "simulation",
	"menu":     "simulation",
	"balance":  "reports",
	"show":     "reports",
	"query":    "reports",
	"topic":    "help",
	"advise":   "help",
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, command := range Commands() {
		c.Register(command, groups[command.Name()])
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	portfolioFile = flag.String("portfolio-file", config.DefaultPortfolioFile, "Path to the portfolio document (JSON format)")
	seed          = flag.Uint64("seed", 0, "Seed of the price simulation, 0 for a random one")
	advisorModel  = "gemini-2.5-flash"

	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// Configure makes the configuration the default value of the global flags.
// It must be called before the flags are parsed.
func Configure(cfg *config.Config) {
	*portfolioFile = cfg.PortfolioFile
	*seed = cfg.Seed
	advisorModel = cfg.AdvisorModel
}

// PortfolioPath returns the path to the portfolio document.
func PortfolioPath() string { return *portfolioFile }

// source returns the random source of price simulations.
func source() rand.Source { return stocksim.NewSource(*seed) }

// DecodePortfolio loads the app portfolio document.
// If the document does not exist yet, it returns an empty portfolio.
func DecodePortfolio() (*stocksim.Portfolio, error) {
	p, err := stocksim.Load(PortfolioPath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", PortfolioPath()).Msg("portfolio does not exist, starting from an empty portfolio")
		return stocksim.NewPortfolio(), nil
	}
	return p, err
}

// EncodePortfolio saves the app portfolio document.
func EncodePortfolio(p *stocksim.Portfolio) error {
	return stocksim.Save(PortfolioPath(), p)
}

// update loads the portfolio, applies f and saves it back, unless f fails.
func update(f func(p *stocksim.Portfolio) error) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := f(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal.
var printMarkdown = func(w io.Writer, markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		log.Warn().Err(err).Msg("cannot render markdown")
		out = markdown
	}
	fmt.Fprint(w, out)
}
