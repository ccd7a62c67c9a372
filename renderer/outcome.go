package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/stocksim"
	md "github.com/nao1215/markdown"
)

// OutcomesMarkdown renders the result of a simulation run, one row per position.
func OutcomesMarkdown(outcomes []stocksim.Outcome) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investing Outcome")
	if len(outcomes) == 0 {
		doc.PlainText("Nothing was simulated.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("Held from %s.", outcomes[0].Period))

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
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Days", "Previous Price", "Price", "Initial", "Worth", "Gain", "Return", "Volatility", "Drawdown"},
	}
	var initial, worth stocksim.Money
	for _, o := range outcomes {
		table.Rows = append(table.Rows, []string{
			symbol(o.Symbol),
			strconv.Itoa(o.Days()),
			stocksim.USD(o.PreviousPrice).String(),
			stocksim.USD(o.Price).String(),
			o.Initial.String(),
			o.Worth.String(),
			o.Gain().SignedString(),
			o.Return().SignedString(),
			stocksim.Percent(o.Volatility * 100).String(),
			stocksim.Percent(o.Drawdown * 100).String(),
		})
		initial = initial.Add(o.Initial)
		worth = worth.Add(o.Worth)
	}
	gain := worth.Sub(initial)
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", "", "",
		md.Bold(initial.String()),
		md.Bold(worth.String()),
		md.Bold(gain.SignedString()),
		md.Bold(gain.Ratio(initial).SignedString()),
		"", "",
	})
	doc.Table(table)
	return doc.String()
}
