package commands

import (
	"errors"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/growth"
	"github.com/spf13/cobra"
)

type RatesCmd struct {
	flags   settingsFlags
	sources SourceFactory
}

func NewRatesCmd(sources SourceFactory) *cobra.Command {
	rc := &RatesCmd{sources: sources}
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "List the growth rate of every entry against the previous one",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	rc.flags.register(cmd)

	return cmd
}

func (rc *RatesCmd) run(cmd *cobra.Command, _ []string) error {
	settings, data, err := loadSeries(cmd, &rc.flags, rc.sources)
	if err != nil {
		return err
	}

	report, err := growth.Analyze(cmd.Context(), settings.Title, data)
	if err != nil {
		var emptyErr *domain.EmptyInputError
		if errors.As(err, &emptyErr) {
			cmd.PrintErrln(emptyErr.Error())
			return nil
		}
		return err
	}

	return export.NewRatesReporter(cmd.OutOrStdout()).Handle(report.Rates)
}
