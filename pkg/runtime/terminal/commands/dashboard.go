package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fin-tools/spend-atlas/pkg/models/api"
)

type DashboardCmd struct {
	file string
	date string
	deps Deps
}

// NewDashboardCmd builds the command serving the composed statement
// view for a reference timestamp.
func NewDashboardCmd(deps Deps) *cobra.Command {
	dc := &DashboardCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Build the statement dashboard view",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.file, "file", "", "Path to the statement export (.csv or .xlsx)")
	cmd.Flags().StringVar(&dc.date, "date", "", "Reference timestamp, YYYY-MM-DD HH:MM:SS (default: now)")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (dc *DashboardCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	table, err := dc.deps.Registry.Load(dc.file)
	if err != nil {
		return fmt.Errorf("failed to load statement: %w", err)
	}

	result, err := dc.deps.Composer.Dashboard(ctx, table, refOrNow(dc.date))
	if err != nil {
		return dc.deps.Reporter.Handle(api.Error{Message: err.Error()})
	}
	return dc.deps.Reporter.Handle(result)
}
