package stocksim

import (
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	maxSymbolLength = 5
	defaultRisk     = 1
	defaultCap      = 10_000_000
)

var symbolPattern = regexp.MustCompile(`^[A-Z]+$`)

// Position is a single simulated holding in a security.
//
// A Position is created empty by NewPosition, configured with its setters,
// funded with AddInvestment and then evolved in place by Simulate.
type Position struct {
	symbol        string
	price         float64 // current price
	previousPrice float64 // price when the last simulation started
	invested      float64 // current worth of the holding
	initial       float64 // worth when the last simulation started
	shares        float64
	days          int
	risk          int
	cap           float64 // the price can never exceed this ceiling

	track track // prices drawn by the last simulation
}

// NewPosition returns an empty position with the lowest risk and a default market cap.
func NewPosition() *Position {
	return &Position{risk: defaultRisk, cap: defaultCap}
}

func (p *Position) Symbol() string             { return p.symbol }
func (p *Position) Price() float64             { return p.price }
func (p *Position) PreviousPrice() float64     { return p.previousPrice }
func (p *Position) Invested() float64          { return p.invested }
func (p *Position) InitialInvestment() float64 { return p.initial }
func (p *Position) Shares() float64            { return p.shares }
func (p *Position) Days() int                  { return p.days }
func (p *Position) Risk() int                  { return p.risk }
func (p *Position) Cap() float64               { return p.cap }

// Path returns a copy of the prices drawn by the last simulation, one per
// day. Only the first 10,000 days are recorded.
func (p *Position) Path() []float64 {
	return append([]float64(nil), p.track.path...)
}

// SetSymbol sets the ticker. It must be 1 to 5 capital letters.
func (p *Position) SetSymbol(symbol string) error {
	if len(symbol) > maxSymbolLength {
		return fmt.Errorf("invalid symbol %q: %w", symbol, ErrSymbolLength)
	}
	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("invalid symbol %q: %w", symbol, ErrSymbolFormat)
	}
	p.symbol = symbol
	return nil
}

func (p *Position) SetPrice(price float64) error {
	if err := checkAmount("price", price); err != nil {
		return err
	}
	p.price = price
	return nil
}

// SetPreviousPrice records a snapshot of the price. Unlike the other setters
// it is not validated.
func (p *Position) SetPreviousPrice(price float64) { p.previousPrice = price }

func (p *Position) SetInvested(amount float64) error {
	if err := checkAmount("investment", amount); err != nil {
		return err
	}
	p.invested = amount
	return nil
}

func (p *Position) SetDays(days int) error {
	if days < 0 {
		return fmt.Errorf("invalid number of days %d: %w", days, ErrNegativeValue)
	}
	p.days = days
	return nil
}

func (p *Position) SetRisk(risk int) error {
	if risk < 1 || risk > 5 {
		return fmt.Errorf("invalid risk %d: %w", risk, ErrRiskRange)
	}
	p.risk = risk
	return nil
}

func (p *Position) SetCap(ceiling float64) error {
	if err := checkAmount("market cap", ceiling); err != nil {
		return err
	}
	p.cap = ceiling
	return nil
}

// checkAmount rejects amounts that are not finite or negative.
func checkAmount(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid %s %v: %w", what, v, ErrNotFinite)
	}
	if v < 0 {
		return fmt.Errorf("invalid %s %v: %w", what, v, ErrNegativeValue)
	}
	return nil
}

// AddInvestment increases the current worth of the position by amount.
func (p *Position) AddInvestment(amount float64) error {
	if err := checkAmount("investment", amount); err != nil {
		return err
	}
	if p.price == 0 {
		return fmt.Errorf("cannot invest in %q: %w", p.symbol, ErrZeroPrice)
	}
	p.invested += amount
	return nil
}

// RiskFactor returns the daily volatility coefficient of the position's risk tier.
func (p *Position) RiskFactor() float64 { return riskFactor(p.risk) }

func riskFactor(risk int) float64 {
	switch risk {
	case 1:
		return 0.05
	case 2:
		return 0.10
	case 3:
		return 0.20
	case 4:
		return 0.30
	default:
		return 0.50
	}
}

// Simulate evolves the price for Days() steps, drawing from src.
//
// The first step snapshots the shares bought, the initial investment and the
// previous price. Each day the price moves uniformly within +/- RiskFactor of
// itself, never above Cap() and never below zero, and the invested value
// follows the price at a constant number of shares.
//
// A price that reaches zero never moves again and the remaining days are
// skipped. The path statistics take constant memory whatever the number of days.
//
// A position that starts at a zero price cannot be simulated and is left untouched.
func (p *Position) Simulate(src rand.Source) error {
	if p.price == 0 {
		return fmt.Errorf("cannot simulate %q: %w", p.symbol, ErrZeroPrice)
	}
	p.shares = p.invested / p.price
	p.initial = p.invested
	p.SetPreviousPrice(p.price)

	p.track = newTrack(p.price)
	for range p.days {
		p.step(src)
		p.track.observe(p.price)
		if p.price == 0 {
			break
		}
	}
	return nil
}

// step draws the next day price.
func (p *Position) step(src rand.Source) {
	factor := p.RiskFactor()

	upper := min(p.price*(1+factor), p.cap)
	// a cap below the whole band collapses it onto the cap.
	lower := min(p.price*(1-factor), upper)

	// rounding may land the draw one ulp above the band.
	price := min(distuv.Uniform{Min: lower, Max: upper, Src: src}.Rand(), upper)
	if price < 0 {
		price = 0
	}
	p.price = price
	p.invested = p.price * p.shares
}
