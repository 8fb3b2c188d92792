package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/spend-atlas/pkg/models/api"
	"github.com/fin-tools/spend-atlas/pkg/services/report"
)

type ReportCmd struct {
	file     string
	category string
	date     string
	out      string
	deps     Deps
}

// NewReportCmd builds the category spend report command. Besides
// printing the report it persists a JSON copy, the side artifact
// downstream tooling picks up.
func NewReportCmd(deps Deps) *cobra.Command {
	rc := &ReportCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spending by category over the trailing three months",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.file, "file", "", "Path to the statement export (.csv or .xlsx)")
	cmd.Flags().StringVar(&rc.category, "category", "", "Category to match (case-insensitive substring)")
	cmd.Flags().StringVar(&rc.date, "date", "", "Reference date, YYYY-MM-DD[ HH:MM:SS] (default: now)")
	cmd.Flags().StringVar(&rc.out, "out", "", "Report file name (default: timestamped)")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	table, err := rc.deps.Registry.Load(rc.file)
	if err != nil {
		return fmt.Errorf("failed to load statement: %w", err)
	}

	rows := report.SpendingByCategory(ctx, table, rc.category, rc.date)
	result := make([]api.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		result = append(result, api.CategoryTotal{
			Category: row.Category,
			Total:    row.Total.InexactFloat64(),
		})
	}

	path, err := rc.deps.Store.Write(ctx, rc.out, result)
	if err != nil {
		return fmt.Errorf("failed to persist report: %w", err)
	}
	zerolog.Ctx(ctx).Info().Str("path", path).Msg("report saved")

	return rc.deps.Reporter.Handle(result)
}
