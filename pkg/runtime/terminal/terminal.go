package terminal

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fin-tools/spend-atlas/pkg/runtime/terminal/commands"
	"github.com/fin-tools/spend-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/spend-atlas/pkg/services/statement"
	"github.com/fin-tools/spend-atlas/pkg/services/view"
	"github.com/fin-tools/spend-atlas/pkg/store/reportfile"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry *statement.Registry
	Composer *view.Composer
	Store    *reportfile.Store
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = statement.DefaultRegistry()
	}
	if opts.Store == nil {
		opts.Store = reportfile.NewStore(".")
	}

	deps := commands.Deps{
		Registry: opts.Registry,
		Composer: opts.Composer,
		Store:    opts.Store,
		Reporter: export.NewReporter(opts.Output),
	}

	cli := &CLI{}
	cli.rootCmd = newRootCmd(deps)
	return cli
}

// ExecuteContext runs the CLI with the given context.
func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func newRootCmd(deps commands.Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spend-atlas",
		Short: "Bank statement analysis tool",
	}

	cmd.AddCommand(commands.NewDashboardCmd(deps))
	cmd.AddCommand(commands.NewReportCmd(deps))
	cmd.AddCommand(commands.NewSearchCmd(deps))
	cmd.AddCommand(commands.NewAnalyzeCmd(deps))

	return cmd
}
