package stocksim

import (
	"math/rand/v2"
	"testing"

	"github.com/etnz/stocksim/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestNewOutcome(t *testing.T) {
	pos := newAAPL()
	require.NoError(t, pos.AddInvestment(1000))
	require.NoError(t, pos.SetDays(3))
	require.NoError(t, pos.Simulate(lowSource)) // 500 -> 450 -> 405 -> 364.5

	o := NewOutcome(pos)

	assert.Equal(t, "AAPL", o.Symbol)
	assert.Equal(t, 3, o.Days())
	assert.Equal(t, date.Today(), o.Period.From)
	assert.Equal(t, 500.0, o.PreviousPrice)
	assert.InDelta(t, 364.5, o.Price, 1e-9)
	assert.Equal(t, "$1,000.00", o.Initial.String())
	assert.Equal(t, "$729.00", o.Worth.String())
	assert.Equal(t, "-$271.00", o.Gain().String())
	assert.True(t, o.Return().Equal(-27.1))
	assert.InDelta(t, 0.271, o.Drawdown, 1e-9)
	// constant -10% returns have no dispersion.
	assert.InDelta(t, 0, o.Volatility, 1e-9)
}

func TestOutcomeNoDays(t *testing.T) {
	pos := newAAPL()
	require.NoError(t, pos.AddInvestment(1000))
	require.NoError(t, pos.Simulate(NewSource(1)))

	o := NewOutcome(pos)
	assert.Equal(t, 0, o.Days())
	assert.True(t, o.Gain().IsZero())
	assert.Equal(t, "-", o.Gain().SignedString())
	assert.Zero(t, o.Volatility)
	assert.Zero(t, o.Drawdown)
}

func TestOutcomeLongHolding(t *testing.T) {
	pos := newPosition("ABC", 100, 3)
	require.NoError(t, pos.AddInvestment(100))
	require.NoError(t, pos.SetDays(200_000))
	require.NoError(t, pos.Simulate(NewSource(9)))

	o := NewOutcome(pos)
	assert.Equal(t, 200_000, o.Days())
	assert.Equal(t, 200_000, o.Period.Len())
	assert.Len(t, pos.Path(), maxRecordedDays)
}

// trackOf follows prices, the first one being the price before the first day.
func trackOf(prices ...float64) track {
	t := newTrack(prices[0])
	for _, p := range prices[1:] {
		t.observe(p)
	}
	return t
}

func TestVolatility(t *testing.T) {
	// returns: +10%, -10%
	tr := trackOf(100, 110, 99)
	assert.InDelta(t, 0.1414213562, tr.volatility(), 1e-9)
	tr = trackOf(100)
	assert.Zero(t, tr.volatility())
	tr = trackOf(100, 120)
	assert.Zero(t, tr.volatility())
	// returns after a zero price are ignored.
	tr = trackOf(0, 100, 110, 99)
	assert.InDelta(t, 0.1414213562, tr.volatility(), 1e-9)
}

func TestVolatilityMatchesStdDev(t *testing.T) {
	r := rand.New(NewSource(3))
	prices := []float64{100}
	returns := []float64{}
	for range 500 {
		ret := r.Float64()*0.4 - 0.2
		returns = append(returns, ret)
		prices = append(prices, prices[len(prices)-1]*(1+ret))
	}
	tr := trackOf(prices...)
	assert.InDelta(t, stat.StdDev(returns, nil), tr.volatility(), 1e-9)
}

func TestDrawdown(t *testing.T) {
	tests := []struct {
		prices []float64
		want   float64
	}{
		{[]float64{100, 200, 150, 100, 180}, 0.5},
		{[]float64{1, 2, 3}, 0},
		{[]float64{10, 0}, 1},
		{[]float64{5}, 0},
	}
	for _, tt := range tests {
		tr := trackOf(tt.prices...)
		assert.InDelta(t, tt.want, tr.drawdown, 1e-9, "%v", tt.prices)
	}
}
