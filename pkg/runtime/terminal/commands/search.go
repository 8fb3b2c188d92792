package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fin-tools/spend-atlas/pkg/models/api"
	"github.com/fin-tools/spend-atlas/pkg/services/report"
)

type SearchCmd struct {
	file  string
	query string
	deps  Deps
}

// NewSearchCmd builds the free-text transaction search command.
func NewSearchCmd(deps Deps) *cobra.Command {
	sc := &SearchCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search transactions by description or category",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.file, "file", "", "Path to the statement export (.csv or .xlsx)")
	cmd.Flags().StringVar(&sc.query, "query", "", "Text to search for")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

func (sc *SearchCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	table, err := sc.deps.Registry.Load(sc.file)
	if err != nil {
		return fmt.Errorf("failed to load statement: %w", err)
	}

	matches, err := report.Search(ctx, table, sc.query)
	if err != nil {
		return sc.deps.Reporter.Handle(api.Error{Message: err.Error()})
	}
	return sc.deps.Reporter.Handle(matches)
}
