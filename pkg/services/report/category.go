package report

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
	"github.com/fin-tools/spend-atlas/pkg/services/normalize"
)

// SpendingByCategory sums transactions whose category contains the
// query, case-insensitively, over the trailing 90-day window ending at
// the reference date. An empty date means "now". A malformed date is
// logged and yields an empty report, not a failure. Rows are ordered
// by category name so repeated runs produce identical output.
func SpendingByCategory(ctx context.Context, table domain.Table, category, date string) []domain.CategoryTotal {
	logger := zerolog.Ctx(ctx)

	end := time.Now()
	if date != "" {
		parsed, err := normalize.ParseReference(date)
		if err != nil {
			logger.Error().Err(err).Str("category", category).Msg("category report skipped")
			return []domain.CategoryTotal{}
		}
		end = parsed
	}
	window := domain.TrailingWindow(end, CategoryWindowDays)
	query := strings.ToLower(category)

	totals := make(map[string]decimal.Decimal)
	for _, txn := range normalize.Transactions(ctx, table) {
		if txn.Category == "" || !strings.Contains(strings.ToLower(txn.Category), query) {
			continue
		}
		if !window.Contains(txn.Date) {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}

	rows := make([]domain.CategoryTotal, 0, len(totals))
	for name, total := range totals {
		rows = append(rows, domain.CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })

	logger.Info().Str("category", category).Int("rows", len(rows)).Msg("category report built")
	return rows
}
