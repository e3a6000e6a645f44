package domain

import (
	"fmt"
	"math"
)

// GrowthRate is a growth rate that may be absent. The zero value is absent.
type GrowthRate struct {
	value float64
	valid bool
}

// Some returns a present growth rate.
func Some(rate float64) GrowthRate {
	return GrowthRate{value: rate, valid: true}
}

// None returns the absence marker used when the baseline is zero.
func None() GrowthRate {
	return GrowthRate{}
}

func (r GrowthRate) Get() (float64, bool) {
	return r.value, r.valid
}

func (r GrowthRate) IsAbsent() bool {
	return !r.valid
}

// OrNegInf returns the rate, or negative infinity when absent. Used for ordering only.
func (r GrowthRate) OrNegInf() float64 {
	if !r.valid {
		return math.Inf(-1)
	}
	return r.value
}

func (r GrowthRate) String() string {
	if !r.valid {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", r.value)
}

// GrowthEntry pairs a series label with the rate computed against the previous entry.
type GrowthEntry struct {
	Label string
	Rate  GrowthRate
}
