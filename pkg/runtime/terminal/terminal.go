package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	logger  zerolog.Logger
	rootCmd *cobra.Command
	verbose bool
}

// Options contain configuration for the CLI
type Options struct {
	Sources commands.SourceFactory
	Output  io.Writer
	Errors  io.Writer
	Logger  *zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Errors == nil {
		opts.Errors = os.Stderr
	}
	if opts.Sources == nil {
		opts.Sources = commands.GeneratorSource
	}

	cli := &CLI{logger: zerolog.Nop()}
	if opts.Logger != nil {
		cli.logger = *opts.Logger
	}

	cli.rootCmd = cli.newRootCmd(opts.Sources)
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.Errors)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(cli.logger.WithContext(ctx))
}

// SetArgs overrides os.Args, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd(sources commands.SourceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "growth",
		Short:         "Sales growth analysis tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if cli.verbose {
				logger := cli.logger.Level(zerolog.DebugLevel)
				cmd.SetContext(logger.WithContext(cmd.Context()))
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(commands.NewReportCmd(sources))
	cmd.AddCommand(commands.NewRatesCmd(sources))

	return cmd
}
