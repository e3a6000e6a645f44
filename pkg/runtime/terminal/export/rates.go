package export

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// RatesReporter lists every growth entry, one per line.
type RatesReporter struct {
	writer io.Writer
}

func NewRatesReporter(writer io.Writer) *RatesReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &RatesReporter{writer: writer}
}

func (c *RatesReporter) Handle(rates []domain.GrowthEntry) error {
	for _, r := range rates {
		if _, err := fmt.Fprintf(c.writer, "%s: %s\n", r.Label, FormatRate(r.Rate)); err != nil {
			return fmt.Errorf("failed to write rate for %s: %w", r.Label, err)
		}
	}
	return nil
}
