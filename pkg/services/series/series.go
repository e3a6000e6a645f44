package series

import (
	"context"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// Source supplies the series a report is built from.
type Source interface {
	Load(ctx context.Context) (domain.Series, error)
}

// MonthLabels are the default labels for a yearly series.
var MonthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

type static struct {
	series domain.Series
}

// NewStatic returns a Source serving a fixed series.
func NewStatic(series domain.Series) Source {
	return &static{series: series}
}

func (s *static) Load(_ context.Context) (domain.Series, error) {
	out := make(domain.Series, len(s.series))
	copy(out, s.series)
	return out, nil
}
