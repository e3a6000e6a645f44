package domain

// SeriesEntry is a single labeled measurement, e.g. monthly sales.
type SeriesEntry struct {
	Label string
	Value float64
}

// Series is ordered in time.
type Series []SeriesEntry

func (s Series) Labels() []string {
	labels := make([]string, 0, len(s))
	for _, e := range s {
		labels = append(labels, e.Label)
	}
	return labels
}
