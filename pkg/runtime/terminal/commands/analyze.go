package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fin-tools/spend-atlas/pkg/models/api"
)

type AnalyzeCmd struct {
	file     string
	date     string
	query    string
	category string
	deps     Deps
}

// NewAnalyzeCmd builds the command running the full analysis: search,
// category report and dashboard in one result.
func NewAnalyzeCmd(deps Deps) *cobra.Command {
	ac := &AnalyzeCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run search, category report and dashboard together",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.file, "file", "", "Path to the statement export (.csv or .xlsx)")
	cmd.Flags().StringVar(&ac.date, "date", "", "Reference timestamp, YYYY-MM-DD HH:MM:SS (default: now)")
	cmd.Flags().StringVar(&ac.query, "query", "", "Optional text to search for")
	cmd.Flags().StringVar(&ac.category, "category", "", "Optional category to report on")

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	table, err := ac.deps.Registry.Load(ac.file)
	if err != nil {
		return fmt.Errorf("failed to load statement: %w", err)
	}

	result, err := ac.deps.Composer.Analyze(ctx, table, refOrNow(ac.date), ac.query, ac.category)
	if err != nil {
		return ac.deps.Reporter.Handle(api.Error{Message: err.Error()})
	}
	return ac.deps.Reporter.Handle(result)
}
