package renderer

import (
	"testing"

	"github.com/etnz/stocksim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource pins every draw to the lower bound of the band.
type fixedSource uint64

func (s fixedSource) Uint64() uint64 { return uint64(s) }

func samplePortfolio(t *testing.T) *stocksim.Portfolio {
	t.Helper()
	p := stocksim.NewPortfolio()
	require.NoError(t, p.Deposit(6000))

	aapl := stocksim.NewPosition()
	require.NoError(t, aapl.SetSymbol("AAPL"))
	require.NoError(t, aapl.SetPrice(500))
	require.NoError(t, aapl.SetRisk(2))
	require.NoError(t, aapl.SetCap(1e8))
	p.AddPosition(aapl)
	require.NoError(t, p.Invest(aapl, 1000))
	return p
}

func TestBalanceMarkdown(t *testing.T) {
	got := BalanceMarkdown(samplePortfolio(t))

	assert.Contains(t, got, "# Balance")
	assert.Contains(t, got, "$5,000.00")
	assert.Contains(t, got, "$1,000.00")
	assert.Contains(t, got, "**$6,000.00**")
}

func TestPortfolioMarkdown(t *testing.T) {
	p := samplePortfolio(t)
	p.AddPosition(stocksim.NewPosition())

	got := PortfolioMarkdown(p)

	assert.Contains(t, got, "# Portfolio")
	assert.Contains(t, got, "Cash $5,000.00, invested $1,000.00, total $6,000.00.")
	assert.Contains(t, got, "AAPL")
	assert.Contains(t, got, "$500.00")
	assert.Contains(t, got, "$100,000,000.00")
	assert.Contains(t, got, "| ?")
	assert.Contains(t, got, "$10,000,000.00")
}

func TestPortfolioMarkdownEmpty(t *testing.T) {
	got := PortfolioMarkdown(stocksim.NewPortfolio())
	assert.Contains(t, got, "No positions.")
	assert.NotContains(t, got, "## Positions")
}

func TestOutcomesMarkdown(t *testing.T) {
	p := samplePortfolio(t)
	outcomes := p.Simulate(3, fixedSource(0)) // 500 -> 450 -> 405 -> 364.5

	got := OutcomesMarkdown(outcomes)

	assert.Contains(t, got, "# Investing Outcome")
	assert.Contains(t, got, "Held from ")
	assert.Contains(t, got, "$364.50")
	assert.Contains(t, got, "$729.00")
	assert.Contains(t, got, "-$271.00")
	assert.Contains(t, got, "-27.10%")
	assert.Contains(t, got, "27.10%") // drawdown
	assert.Contains(t, got, "**Total**")
}

func TestOutcomesMarkdownEmpty(t *testing.T) {
	assert.Contains(t, OutcomesMarkdown(nil), "Nothing was simulated.")
}

func TestHTML(t *testing.T) {
	got, err := HTML(PortfolioMarkdown(samplePortfolio(t)))
	require.NoError(t, err)

	assert.Contains(t, got, "<h1")
	assert.Contains(t, got, "<table>")
	assert.Contains(t, got, "AAPL</td>")
}
