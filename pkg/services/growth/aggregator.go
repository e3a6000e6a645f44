package growth

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	DefaultLabelHeader = "Month"
	DefaultValueHeader = "Sales"
)

// Rates computes the growth rate of every entry against its predecessor.
// The result has len(series)-1 entries, or none for shorter series.
func Rates(series domain.Series) []domain.GrowthEntry {
	if len(series) < 2 {
		return []domain.GrowthEntry{}
	}

	rates := make([]domain.GrowthEntry, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		rates = append(rates, domain.GrowthEntry{
			Label: series[i].Label,
			Rate:  CalculateGrowthRate(series[i].Value, series[i-1].Value),
		})
	}
	return rates
}

// Best returns the entry with the highest rate. Absent rates rank below every
// present rate, and the first of several equal entries wins.
func Best(rates []domain.GrowthEntry) (domain.GrowthEntry, error) {
	if len(rates) == 0 {
		return domain.GrowthEntry{}, &domain.EmptyInputError{}
	}

	best := rates[0]
	for _, r := range rates[1:] {
		if r.Rate.OrNegInf() > best.Rate.OrNegInf() {
			best = r
		}
	}
	return best, nil
}

// Analyze builds the growth report for a series.
func Analyze(ctx context.Context, title string, series domain.Series) (*domain.GrowthReport, error) {
	logger := zerolog.Ctx(ctx)

	if len(series) < 2 {
		return nil, fmt.Errorf("failed to analyze %q: %w", title, &domain.EmptyInputError{Length: len(series)})
	}

	rates := Rates(series)
	best, err := Best(rates)
	if err != nil {
		return nil, fmt.Errorf("failed to find highest growth: %w", err)
	}

	absent := 0
	for _, r := range rates {
		if r.Rate.IsAbsent() {
			absent++
		}
	}

	logger.Debug().
		Int("entries", len(series)).
		Int("rates", len(rates)).
		Int("absent", absent).
		Str("best", best.Label).
		Msg("analyzed series")

	return &domain.GrowthReport{
		Title:       title,
		LabelHeader: DefaultLabelHeader,
		ValueHeader: DefaultValueHeader,
		Entries:     series,
		Rates:       rates,
		Best:        best,
	}, nil
}
