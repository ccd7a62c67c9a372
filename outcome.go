package stocksim

import "github.com/etnz/stocksim/date"

// Outcome reports how a position did over its last simulation.
type Outcome struct {
	Symbol        string
	Period        date.Range
	PreviousPrice float64
	Price         float64
	Initial       Money
	Worth         Money
	Shares        float64

	// Volatility is the standard deviation of daily returns along the price path.
	Volatility float64
	// Drawdown is the largest peak to trough fall of the price path, as a fraction of the peak.
	Drawdown float64

	days int
}

// NewOutcome reports the last simulation of pos, dated from today.
func NewOutcome(pos *Position) Outcome {
	return Outcome{
		Symbol:        pos.Symbol(),
		Period:        date.Holding(date.Today(), pos.Days()),
		PreviousPrice: pos.PreviousPrice(),
		Price:         pos.Price(),
		Initial:       USD(pos.InitialInvestment()),
		Worth:         USD(pos.Invested()),
		Shares:        pos.Shares(),
		Volatility:    pos.track.volatility(),
		Drawdown:      pos.track.drawdown,
		days:          pos.Days(),
	}
}

// Days returns the length of the holding period.
func (o Outcome) Days() int { return o.days }

// Gain returns the worth gained (or lost) over the period.
func (o Outcome) Gain() Money { return o.Worth.Sub(o.Initial) }

// Return returns the gain relative to the initial investment.
func (o Outcome) Return() Percent { return o.Gain().Ratio(o.Initial) }
