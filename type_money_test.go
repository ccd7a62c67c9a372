package stocksim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0.00"},
		{1064.6944320840898, "$1,064.69"},
		{3695.0858582219885, "$3,695.09"},
		{-12.5, "-$12.50"},
		{2723000000000, "$2,723,000,000,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, USD(tt.value).String())
		})
	}
}

func TestMoneySignedString(t *testing.T) {
	assert.Equal(t, "+$64.69", USD(64.6944).SignedString())
	assert.Equal(t, "-$3.00", USD(-3).SignedString())
	assert.Equal(t, "-", USD(0.001).SignedString())
}

func TestMoneyArithmetic(t *testing.T) {
	gain := USD(1064.69).Sub(USD(1000))
	assert.True(t, gain.Equal(USD(64.69)))
	assert.True(t, USD(0.1).Add(USD(0.2)).Equal(USD(0.3)), "decimal arithmetic is exact")
	assert.True(t, gain.Ratio(USD(1000)).Equal(6.469))
	assert.Equal(t, Percent(0), gain.Ratio(USD(0)))
	assert.True(t, USD(-1).IsNegative())
	assert.True(t, USD(1).Neg().LessThan(USD(0)))
	assert.Panics(t, func() { USD(1).Add(M(1, "EUR")) })
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "6.47%", Percent(6.469).String())
	assert.Equal(t, "+6.47%", Percent(6.469).SignedString())
	assert.Equal(t, "-27.10%", Percent(-27.1).SignedString())
	assert.Equal(t, "-", Percent(0.001).SignedString())
}
