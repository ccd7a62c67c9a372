package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/stocksim"
	md "github.com/nao1215/markdown"
)

// BalanceMarkdown renders the cash balance and the invested value.
func BalanceMarkdown(p *stocksim.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Balance")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Account", "Value"},
		Rows: [][]string{
			{"Cash", stocksim.USD(p.Balance()).String()},
			{"Invested", stocksim.USD(p.Invested()).String()},
			{md.Bold("Total"), md.Bold(total(p).String())},
		},
	})
	return doc.String()
}

// PortfolioMarkdown renders every position of the portfolio, in order.
func PortfolioMarkdown(p *stocksim.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")
	doc.PlainText(fmt.Sprintf("Cash %s, invested %s, total %s.",
		stocksim.USD(p.Balance()), stocksim.USD(p.Invested()), total(p)))

	if p.Len() == 0 {
		doc.PlainText("No positions.")
		return doc.String()
	}

	doc.H2("Positions")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Price", "Previous Price", "Worth", "Initial", "Shares", "Risk", "Market Cap"},
	}
	for pos := range p.Positions() {
		table.Rows = append(table.Rows, []string{
			symbol(pos.Symbol()),
			stocksim.USD(pos.Price()).String(),
			stocksim.USD(pos.PreviousPrice()).String(),
			stocksim.USD(pos.Invested()).String(),
			stocksim.USD(pos.InitialInvestment()).String(),
			shares(pos.Shares()),
			strconv.Itoa(pos.Risk()),
			stocksim.USD(pos.Cap()).String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

func total(p *stocksim.Portfolio) stocksim.Money {
	return stocksim.USD(p.Balance()).Add(stocksim.USD(p.Invested()))
}

// symbol renders an unset symbol visibly.
func symbol(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func shares(n float64) string { return strconv.FormatFloat(n, 'f', 4, 64) }
