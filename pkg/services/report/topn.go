package report

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
	"github.com/fin-tools/spend-atlas/pkg/services/normalize"
)

// TopTransactions returns the largest transactions between the first
// instant of the reference month and the reference timestamp itself.
// The reference must be a strict "YYYY-MM-DD HH:MM:SS" string; a
// malformed one is an error the caller reports.
func TopTransactions(ctx context.Context, table domain.Table, ref string) ([]domain.TopTransaction, error) {
	ts, err := normalize.ParseTimestamp(ref)
	if err != nil {
		return nil, err
	}
	return TopTransactionsAt(ctx, table, ts), nil
}

// TopTransactionsAt is TopTransactions with an already-parsed
// reference. An empty window yields an empty list.
func TopTransactionsAt(ctx context.Context, table domain.Table, ref time.Time) []domain.TopTransaction {
	window := domain.MonthToDate(ref)

	inWindow := make([]domain.TopTransaction, 0)
	for _, txn := range normalize.Transactions(ctx, table) {
		if !window.Contains(txn.Date) {
			continue
		}
		inWindow = append(inWindow, domain.TopTransaction{
			Date:        txn.Date,
			Amount:      txn.Amount,
			Category:    txn.Category,
			Description: txn.Description,
		})
	}

	// Stable: ties keep their statement order.
	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].Amount.GreaterThan(inWindow[j].Amount)
	})

	if len(inWindow) > TopLimit {
		inWindow = inWindow[:TopLimit]
	}

	zerolog.Ctx(ctx).Debug().
		Time("window_start", window.Start).
		Time("window_end", window.End).
		Int("rows", len(inWindow)).
		Msg("top transactions selected")
	return inWindow
}
