package series

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Generator produces a pseudo-random integer-valued series from a fixed seed.
// The same seed, labels and bounds always yield the same series.
type Generator struct {
	seed   uint64
	labels []string
	low    int
	high   int
}

// NewGenerator creates a generator drawing each value uniformly from [low, high].
func NewGenerator(seed uint64, labels []string, low, high int) (*Generator, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("at least one label must be provided")
	}
	if low > high {
		return nil, fmt.Errorf("invalid value range [%d, %d]", low, high)
	}

	return &Generator{
		seed:   seed,
		labels: append([]string(nil), labels...),
		low:    low,
		high:   high,
	}, nil
}

func (g *Generator) Load(ctx context.Context) (domain.Series, error) {
	rng := rand.New(rand.NewPCG(g.seed, g.seed))
	// span is 0 when [low, high] covers every int64.
	span := uint64(g.high-g.low) + 1

	out := make(domain.Series, 0, len(g.labels))
	for _, label := range g.labels {
		var offset uint64
		if span == 0 {
			offset = rng.Uint64()
		} else {
			offset = rng.Uint64N(span)
		}
		out = append(out, domain.SeriesEntry{
			Label: label,
			Value: float64(int64(uint64(int64(g.low)) + offset)),
		})
	}

	zerolog.Ctx(ctx).Debug().
		Uint64("seed", g.seed).
		Int("low", g.low).
		Int("high", g.high).
		Int("entries", len(out)).
		Msg("generated series")

	return out, nil
}
