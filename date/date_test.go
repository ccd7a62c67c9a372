package date

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	// usually time.Time are not comparable (there is a pointer for the timezone) this
	// checks that the property remain true
	assert.Equal(t, d1.time(), d2.time())
}

func TestNewNormalizes(t *testing.T) {
	assert.Equal(t, New(2025, time.August, 1), New(2025, time.July, 32))
	assert.Equal(t, New(2024, time.December, 31), New(2025, time.January, 0))
}

func TestHolding(t *testing.T) {
	from := New(2025, 12, 30)
	r := Holding(from, 3)

	assert.Equal(t, New(2026, 1, 2), r.To)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, "2025-12-30 to 2026-01-02", r.String())
}

func TestHoldingZeroDays(t *testing.T) {
	from := New(2025, 1, 1)
	r := Holding(from, 0)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, r.From, r.To)
}

func TestNewRangeSwaps(t *testing.T) {
	a, b := New(2025, 3, 1), New(2025, 2, 1)
	r := NewRange(a, b)
	assert.Equal(t, b, r.From)
	assert.Equal(t, a, r.To)
	assert.Equal(t, 28, r.Len())
}

func TestString(t *testing.T) {
	assert.Equal(t, "2025-07-01", New(2025, 7, 1).String())
	assert.Equal(t, "", Date{}.String())
	assert.True(t, Date{}.IsZero())
}

func TestSub(t *testing.T) {
	tests := []struct {
		d, x Date
		want int
	}{
		{New(1970, 1, 1), New(1970, 1, 1), 0},
		{New(2000, 3, 1), New(2000, 2, 1), 29},
		{New(1900, 3, 1), New(1900, 2, 1), 28},
		{New(2025, 1, 1), New(2024, 1, 1), 366},
		{New(2024, 1, 1), New(2025, 1, 1), -366},
		{New(1969, 12, 31), New(1970, 1, 1), -1},
		{New(-1, 12, 31), New(0, 1, 1), -1},
		{New(2400, 1, 1), New(2000, 1, 1), 146097},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.Sub(tt.x), "%s - %s", tt.d, tt.x)
	}
}

func TestHoldingBeyondDurationRange(t *testing.T) {
	from := New(2025, 10, 19)
	for _, n := range []int{106_751, 106_752, 200_000, 10_000_000} {
		assert.Equal(t, n, Holding(from, n).Len())
	}
}
