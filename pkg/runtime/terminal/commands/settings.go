package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/series"
	"github.com/spf13/cobra"
)

// SourceFactory builds the series source for resolved settings.
type SourceFactory func(ctx context.Context, settings *config.Settings) (series.Source, error)

// GeneratorSource is the default SourceFactory: a seeded pseudo-random series.
func GeneratorSource(_ context.Context, settings *config.Settings) (series.Source, error) {
	return series.NewGenerator(settings.Seed, settings.Labels, settings.Min, settings.Max)
}

// settingsFlags are shared by every command that builds a series.
type settingsFlags struct {
	configPath string
	title      string
	seed       uint64
	min        int
	max        int
	labels     []string
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to a settings file (yaml, toml or json)")
	cmd.Flags().StringVar(&f.title, "title", "", "Report title")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for the generated series (default 42)")
	cmd.Flags().IntVar(&f.min, "min", 0, "Lowest generated value (default 80)")
	cmd.Flags().IntVar(&f.max, "max", 0, "Highest generated value (default 200)")
	cmd.Flags().StringSliceVar(&f.labels, "months", nil, "Comma-separated series labels (default Jan..Dec)")
}

// resolve loads the settings file and applies explicitly set flags on top.
func (f *settingsFlags) resolve(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := config.LoadSettings(f.configPath, series.MonthLabels)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		settings.Title = f.title
	}
	if flags.Changed("seed") {
		settings.Seed = f.seed
	}
	if flags.Changed("min") {
		settings.Min = f.min
	}
	if flags.Changed("max") {
		settings.Max = f.max
	}
	if flags.Changed("months") {
		settings.Labels = f.labels
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func loadSeries(cmd *cobra.Command, flags *settingsFlags, factory SourceFactory) (*config.Settings, domain.Series, error) {
	ctx := cmd.Context()

	settings, err := flags.resolve(cmd)
	if err != nil {
		return nil, nil, err
	}

	src, err := factory(ctx, settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create series source: %w", err)
	}

	data, err := src.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load series: %w", err)
	}
	return settings, data, nil
}
