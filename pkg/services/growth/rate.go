package growth

import "github.com/de-tools/sales-atlas/pkg/models/domain"

// RateMultiplier scales the relative change into the reported rate.
// NOTE: this is 10, not 100. Downstream reports and tests depend on it.
const RateMultiplier = 10

// CalculateGrowthRate returns ((current - previous) / previous) * RateMultiplier,
// or the absence marker when previous is zero.
func CalculateGrowthRate(current, previous float64) domain.GrowthRate {
	if previous == 0 {
		return domain.None()
	}
	return domain.Some(((current - previous) / previous) * RateMultiplier)
}
