package stocksim

import (
	"math"
	"math/rand/v2"
)

// fixedSource always returns the same number, pinning every uniform draw to the same point of its interval.
type fixedSource uint64

func (s fixedSource) Uint64() uint64 { return uint64(s) }

var (
	lowSource  rand.Source = fixedSource(0)              // draws the lower bound
	highSource rand.Source = fixedSource(math.MaxUint64) // draws just below the upper bound
)

// newAAPL returns the position used across tests: AAPL at 500, risk 2, cap 1e8.
func newAAPL() *Position {
	pos := NewPosition()
	must(pos.SetSymbol("AAPL"))
	must(pos.SetPrice(500))
	must(pos.SetRisk(2))
	must(pos.SetCap(1e8))
	return pos
}

// newPosition returns a configured position for symbol.
func newPosition(symbol string, price float64, risk int) *Position {
	pos := NewPosition()
	must(pos.SetSymbol(symbol))
	must(pos.SetPrice(price))
	must(pos.SetRisk(risk))
	return pos
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
