package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{name: "positive growth", current: 110, previous: 100, expected: 1.0},
		{name: "negative growth", current: 90, previous: 100, expected: -1.0},
		{name: "no change", current: 100, previous: 100, expected: 0.0},
		{name: "large growth", current: 300, previous: 100, expected: 20.0},
		{name: "decline to zero", current: 0, previous: 100, expected: -10.0},
		{name: "negative baseline", current: -50, previous: -100, expected: -5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := CalculateGrowthRate(tt.current, tt.previous).Get()

			assert.True(t, ok)
			assert.InDelta(t, tt.expected, rate, 1e-9)
		})
	}
}

func TestCalculateGrowthRate_ZeroPreviousReturnsAbsence(t *testing.T) {
	for _, current := range []float64{100, 0, -3.5} {
		rate := CalculateGrowthRate(current, 0)

		assert.True(t, rate.IsAbsent(), "current=%v", current)
		_, ok := rate.Get()
		assert.False(t, ok)
	}
}

func TestCalculateGrowthRate_MatchesFormula(t *testing.T) {
	pairs := [][2]float64{{161, 94}, {81, 199}, {1e6, 3}, {-7, 2}, {0.5, 0.25}}

	for _, p := range pairs {
		rate, ok := CalculateGrowthRate(p[0], p[1]).Get()

		assert.True(t, ok)
		assert.Equal(t, ((p[0]-p[1])/p[1])*10, rate)
	}
}

func TestCalculateGrowthRate_Idempotent(t *testing.T) {
	first := CalculateGrowthRate(123, 77)
	second := CalculateGrowthRate(123, 77)

	assert.Equal(t, first, second)
	assert.Equal(t, CalculateGrowthRate(5, 0), CalculateGrowthRate(5, 0))
}
