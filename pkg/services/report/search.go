package report

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
)

// Search returns the rows whose description or category contains the
// query, case-insensitively. Rows come back verbatim, in statement
// order; a row missing either field simply cannot match on it. The
// description and category columns must exist in the schema. An empty
// match set is a success.
func Search(ctx context.Context, table domain.Table, query string) ([]domain.Record, error) {
	logger := zerolog.Ctx(ctx)

	if !table.HasColumns(domain.ColDescription, domain.ColCategory) {
		logger.Error().Str("query", query).Msg("search rejected: schema lacks required columns")
		return nil, ErrSearchColumns
	}

	q := strings.ToLower(query)
	matches := make([]domain.Record, 0)
	for _, row := range table.Rows {
		if strings.Contains(strings.ToLower(row[domain.ColDescription]), q) ||
			strings.Contains(strings.ToLower(row[domain.ColCategory]), q) {
			matches = append(matches, row)
		}
	}

	logger.Info().Str("query", query).Int("matches", len(matches)).Msg("search finished")
	return matches, nil
}
