package domain

// GrowthReport is a read-only view over one analyzed series.
type GrowthReport struct {
	Title       string
	LabelHeader string
	ValueHeader string
	Entries     Series
	// Rates holds one entry per non-initial series entry, in series order.
	// The markdown report only shows Best; the rates listing prints these.
	Rates []GrowthEntry
	Best  GrowthEntry
}
