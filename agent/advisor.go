package agent

import (
	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/docs"
	"github.com/etnz/stocksim/renderer"
	"google.golang.org/genai"
)

// NewAdvisor returns an expert commenting on the simulated portfolio p, and
// on the outcomes of its last simulation if any.
func NewAdvisor(model string, p *stocksim.Portfolio, outcomes []stocksim.Outcome) *Expert {
	lib := []Function{
		NewReport("Portfolio",
			"Portfolio returns the cash balance, the invested value, and every position with its price, worth, risk tier and market cap.",
			func() (string, error) { return renderer.PortfolioMarkdown(p), nil },
		),
		NewReport("Outcome",
			"Outcome returns the result of the last simulation: prices, gains, volatility and drawdown of each position.",
			func() (string, error) { return renderer.OutcomesMarkdown(outcomes), nil },
		),
		NewReport("RiskTiers",
			"RiskTiers explains how the risk tier of a position drives its simulated daily price moves.",
			func() (string, error) { return docs.GetTopic("risk") },
		),
	}

	return &Expert{
		Name:        "Advisor",
		Description: "A portfolio advisor commenting on a simulated portfolio.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a portfolio advisor. The user runs a stock portfolio simulator where prices are
			random draws bounded by a risk tier and a market cap, not market data.

			Use the Tools to read the portfolio, the outcome of the last simulation and how risk tiers work.
			Comment on diversification, exposure to risky tiers and the cash left, and explain the outcome.
			Never present a simulated price as a real quote. Answer in markdown.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}
