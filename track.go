package stocksim

import "math"

// maxRecordedDays bounds the number of prices a simulation keeps in its path.
const maxRecordedDays = 10_000

// track follows the prices drawn by a simulation in constant memory.
type track struct {
	path []float64 // the first maxRecordedDays prices

	last     float64
	peak     float64
	drawdown float64

	// running mean and sum of squared deviations of the daily returns (Welford).
	returns int
	mean    float64
	m2      float64
}

// newTrack starts a track at the price held before the first day.
func newTrack(start float64) track {
	return track{last: start, peak: start}
}

// observe records the price of the next day.
func (t *track) observe(price float64) {
	if len(t.path) < maxRecordedDays {
		t.path = append(t.path, price)
	}

	// a return from a zero price is undefined.
	if t.last != 0 {
		r := (price - t.last) / t.last
		t.returns++
		delta := r - t.mean
		t.mean += delta / float64(t.returns)
		t.m2 += delta * (r - t.mean)
	}
	t.last = price

	t.peak = max(t.peak, price)
	if t.peak > 0 {
		t.drawdown = max(t.drawdown, (t.peak-price)/t.peak)
	}
}

// volatility returns the sample standard deviation of the daily returns.
func (t *track) volatility() float64 {
	if t.returns < 2 {
		return 0
	}
	return math.Sqrt(t.m2 / float64(t.returns-1))
}
