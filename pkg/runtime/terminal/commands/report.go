package commands

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/growth"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	flags   settingsFlags
	sources SourceFactory
}

func NewReportCmd(sources SourceFactory) *cobra.Command {
	rc := &ReportCmd{sources: sources}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the monthly growth report as markdown",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	rc.flags.register(cmd)

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	settings, data, err := loadSeries(cmd, &rc.flags, rc.sources)
	if err != nil {
		return err
	}

	report, err := growth.Analyze(cmd.Context(), settings.Title, data)
	if err != nil {
		return fmt.Errorf("failed to build growth report: %w", err)
	}

	zerolog.Ctx(cmd.Context()).Info().
		Str("title", report.Title).
		Str("best", report.Best.Label).
		Msg("rendering growth report")

	return export.NewReporter(cmd.OutOrStdout()).Handle(report)
}
