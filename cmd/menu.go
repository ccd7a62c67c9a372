package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/renderer"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive simulation menu" }
func (*menuCmd) Usage() string {
	return `pss menu

  Starts an interactive session on an empty portfolio, driven by a numbered
  menu. Options 7 and 8 save and load the portfolio document.
  See 'pss topic menu'.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m := newMenu(stdin, stdout, PortfolioPath(), source())
	m.print = printMarkdown
	m.run()
	return subcommands.ExitSuccess
}

const menuOptions = `
Stock Portfolio Simulation Options:
	[1]: Add Money
	[2]: Add Stock
	[3]: Sell and Remove Stock
	[4]: Invest More in Current Stock
	[5]: Invest in Stocks
	[6]: Check Portfolio Balance
	[7]: Save Current Portfolio
	[8]: Load Portfolio
	[9]: End Simulation
`

// menu is an interactive session on a portfolio.
//
// Answers are read word by word. Every question is asked again until the
// answer is accepted, so that only valid values reach the portfolio.
type menu struct {
	in       *bufio.Scanner
	out      io.Writer
	filename string
	src      rand.Source
	print    func(w io.Writer, markdown string)
	p        *stocksim.Portfolio
}

func newMenu(r io.Reader, w io.Writer, filename string, src rand.Source) *menu {
	in := bufio.NewScanner(r)
	in.Split(bufio.ScanWords)
	return &menu{
		in:       in,
		out:      w,
		filename: filename,
		src:      src,
		print:    func(w io.Writer, markdown string) { fmt.Fprint(w, markdown) },
		p:        stocksim.NewPortfolio(),
	}
}

// run processes options until the user quits or the input ends.
func (m *menu) run() {
	for {
		fmt.Fprint(m.out, menuOptions)
		option, ok := m.word()
		if !ok || option == "9" {
			return
		}
		switch option {
		case "1":
			m.deposit()
		case "2":
			m.add()
		case "3":
			m.sell()
		case "4":
			m.investMore()
		case "5":
			m.invest()
		case "6":
			m.balance()
		case "7":
			m.save()
		case "8":
			m.load()
		default:
			fmt.Fprintf(m.out, "Unknown option %q.\n", option)
		}
	}
}

// word reads the next answer. It is false at the end of the input.
func (m *menu) word() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// ask prints question, then reads answers until accept returns nil.
// It is false at the end of the input.
func (m *menu) ask(question string, accept func(answer string) error) bool {
	fmt.Fprintln(m.out, question)
	for {
		answer, ok := m.word()
		if !ok {
			return false
		}
		err := accept(answer)
		if err == nil {
			return true
		}
		fmt.Fprintf(m.out, "Invalid input: %v. Try again:\n", err)
	}
}

// amount accepts a number and passes it to set.
func amount(set func(float64) error) func(string) error {
	return func(answer string) error {
		v, err := parseAmount(answer)
		if err != nil {
			return err
		}
		return set(v)
	}
}

// whole accepts a whole number and passes it to set.
func whole(set func(int) error) func(string) error {
	return func(answer string) error {
		v, err := parseInt(answer)
		if err != nil {
			return err
		}
		return set(v)
	}
}

func (m *menu) deposit() {
	if m.ask("Enter amount to deposit: $", amount(m.p.Deposit)) {
		m.balance()
	}
}

func (m *menu) add() {
	pos := stocksim.NewPosition()
	if !m.ask("What is the stock ticker? (eg. AAPL)", pos.SetSymbol) ||
		!m.ask("What is the current stock price? (eg. AAPL: 135.37)", amount(pos.SetPrice)) ||
		!m.ask("What is the market cap of this stock? (eg. AAPL: 2723000000000)", amount(pos.SetCap)) ||
		!m.ask("How risky is the stock from 1 - 5? (eg. 5 is riskiest, could lose or gain the most)", whole(pos.SetRisk)) {
		return
	}
	m.p.AddPosition(pos)
	fmt.Fprintf(m.out, "Added %s.\n", pos.Symbol())
}

// position asks for a ticker and returns the position on it, if any.
func (m *menu) position(question string) (*stocksim.Position, bool) {
	fmt.Fprintln(m.out, question)
	ticker, ok := m.word()
	if !ok {
		return nil, false
	}
	pos, err := find(m.p, ticker)
	if err != nil {
		fmt.Fprintf(m.out, "%v.\n", err)
		return nil, false
	}
	return pos, true
}

func (m *menu) sell() {
	pos, ok := m.position("What is the ticker of the stock you would like to sell?")
	if !ok {
		return
	}
	worth := pos.Invested()
	m.p.Liquidate(pos)
	fmt.Fprintf(m.out, "Sold %s for %s.\n", pos.Symbol(), stocksim.USD(worth))
	m.balance()
}

// investIn asks how much to invest in pos, and invests it.
func (m *menu) investIn(pos *stocksim.Position, question string) bool {
	if pos.Price() == 0 {
		fmt.Fprintf(m.out, "%s has no price, it cannot be invested in.\n", pos.Symbol())
		return true
	}
	return m.ask(question, amount(func(v float64) error { return m.p.Invest(pos, v) }))
}

func (m *menu) investMore() {
	pos, ok := m.position("Enter ticker of stock you would like to invest more in:")
	if !ok {
		return
	}
	if m.investIn(pos, "How much would you like to invest?") {
		m.balance()
	}
}

func (m *menu) invest() {
	if m.p.Len() == 0 {
		fmt.Fprintln(m.out, "There are no stocks to invest in.")
		return
	}
	for pos := range m.p.Positions() {
		if !m.investIn(pos, fmt.Sprintf("How much would you like to invest in stock %s?", pos.Symbol())) {
			return
		}
	}

	var days int
	if !m.ask("For how many days would you like to invest?", whole(func(v int) error {
		if v < 0 {
			return fmt.Errorf("cannot invest for %d days: %w", v, stocksim.ErrNegativeValue)
		}
		days = v
		return nil
	})) {
		return
	}
	m.print(m.out, renderer.OutcomesMarkdown(m.p.Simulate(days, m.src)))
}

func (m *menu) balance() {
	fmt.Fprintf(m.out, "Portfolio balance: %s\n", stocksim.USD(m.p.Balance()))
}

func (m *menu) save() {
	if err := stocksim.Save(m.filename, m.p); err != nil {
		fmt.Fprintf(m.out, "Unable to write to file: %s: %v\n", m.filename, err)
		return
	}
	fmt.Fprintf(m.out, "Saved portfolio to %s\n", m.filename)
}

// load replaces the session portfolio with the saved one. On failure the
// session portfolio is kept.
func (m *menu) load() {
	p, err := stocksim.Load(m.filename)
	if err != nil {
		fmt.Fprintf(m.out, "Unable to read from file: %s: %v\n", m.filename, err)
		return
	}
	m.p = p
	fmt.Fprintf(m.out, "Loaded portfolio saved at %s\n", m.filename)
}
