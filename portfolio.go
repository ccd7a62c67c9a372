package stocksim

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/rs/zerolog/log"
)

// Portfolio owns a cash balance and an ordered list of positions.
//
// The invested value is an aggregate of the positions' worth. It is only
// refreshed by UpdateValue, that every operation changing a position worth
// through the Portfolio calls.
type Portfolio struct {
	balance   float64
	invested  float64
	positions []*Position
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{}
}

// Balance returns the free cash, excluding money invested in positions.
func (p *Portfolio) Balance() float64 { return p.balance }

// Invested returns the total worth of all positions as of the last UpdateValue.
func (p *Portfolio) Invested() float64 { return p.invested }

// Len returns the number of positions.
func (p *Portfolio) Len() int { return len(p.positions) }

// At returns the i-th position in insertion order.
func (p *Portfolio) At(i int) *Position { return p.positions[i] }

// Positions iterates over positions in insertion order.
func (p *Portfolio) Positions() iter.Seq[*Position] {
	return slices.Values(p.positions)
}

// Deposit adds amount to the cash balance.
func (p *Portfolio) Deposit(amount float64) error {
	if err := checkAmount("amount", amount); err != nil {
		return fmt.Errorf("cannot deposit: %w", err)
	}
	p.balance += amount
	return nil
}

// Withdraw removes amount from the cash balance.
func (p *Portfolio) Withdraw(amount float64) error {
	if err := checkAmount("amount", amount); err != nil {
		return fmt.Errorf("cannot withdraw: %w", err)
	}
	if amount > p.balance {
		return fmt.Errorf("cannot withdraw %v from %v: %w", amount, p.balance, ErrInsufficientFunds)
	}
	p.balance -= amount
	return nil
}

// AddPosition appends pos to the portfolio. Symbols are not required to be unique.
func (p *Portfolio) AddPosition(pos *Position) {
	p.positions = append(p.positions, pos)
}

// UpdateValue recomputes the invested value as the sum of every position worth.
func (p *Portfolio) UpdateValue() {
	p.invested = 0
	for _, pos := range p.positions {
		p.invested += pos.Invested()
	}
}

// Invest moves amount of cash into pos.
func (p *Portfolio) Invest(pos *Position, amount float64) error {
	if err := checkAmount("amount", amount); err != nil {
		return fmt.Errorf("cannot invest: %w", err)
	}
	if amount > p.balance {
		return fmt.Errorf("cannot invest %v in %q with a balance of %v: %w", amount, pos.Symbol(), p.balance, ErrInsufficientFunds)
	}
	if err := pos.AddInvestment(amount); err != nil {
		return err
	}
	p.balance -= amount
	p.UpdateValue()
	return nil
}

// Simulate holds every position for the given number of days, then updates
// the invested value.
//
// A position that cannot be simulated is logged and skipped, the others still
// run. It returns the outcome of every position that ran.
func (p *Portfolio) Simulate(days int, src rand.Source) []Outcome {
	outcomes := make([]Outcome, 0, len(p.positions))
	for _, pos := range p.positions {
		if err := pos.SetDays(days); err != nil {
			log.Error().Err(err).Str("symbol", pos.Symbol()).Msg("can't have negative days")
			continue
		}
		if err := pos.Simulate(src); err != nil {
			log.Warn().Err(err).Str("symbol", pos.Symbol()).Msg("position skipped")
			continue
		}
		outcomes = append(outcomes, NewOutcome(pos))
	}
	p.UpdateValue()
	return outcomes
}

// Find returns the first position whose symbol is exactly ticker.
func (p *Portfolio) Find(ticker string) (*Position, bool) {
	for _, pos := range p.positions {
		if pos.Symbol() == ticker {
			return pos, true
		}
	}
	return nil, false
}

// Liquidate sells pos: its worth goes back to the cash balance and it is
// removed from the portfolio. Liquidating a position the portfolio does not
// hold still realizes its worth but removes nothing.
func (p *Portfolio) Liquidate(pos *Position) {
	amount := pos.Invested()
	// cannot fail, zero is not negative.
	_ = pos.SetInvested(0)
	p.balance += amount

	if i := slices.Index(p.positions, pos); i >= 0 {
		p.positions = slices.Delete(p.positions, i, i+1)
	}
	p.UpdateValue()
}
