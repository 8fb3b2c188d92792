package report

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
	"github.com/fin-tools/spend-atlas/pkg/services/normalize"
)

var hundred = decimal.NewFromInt(100)

// CardSummary identifies the primary card of a statement (the most
// frequent card number) and totals its holder's expenses. Only
// negative amounts count toward total_spent; cashback is 1% of it.
// Both are rounded to two decimal places, half away from zero.
func CardSummary(ctx context.Context, table domain.Table) (domain.CardSummary, error) {
	logger := zerolog.Ctx(ctx)

	if table.Empty() {
		return domain.CardSummary{}, ErrNoData
	}
	if !table.HasColumns(domain.ColCard, domain.ColAmount) {
		return domain.CardSummary{}, ErrMissingColumns
	}

	counts := make(map[string]int)
	spent := decimal.Zero
	for i, row := range table.Rows {
		if card := row[domain.ColCard]; card != "" {
			counts[card]++
		}
		amount, err := normalize.ParseAmount(row[domain.ColAmount])
		if err != nil {
			logger.Warn().Int("row", i).Err(err).Msg("skipping amount in card summary")
			continue
		}
		if amount.IsNegative() {
			spent = spent.Add(amount.Abs())
		}
	}

	spent = spent.Round(2)
	summary := domain.CardSummary{
		LastDigits: lastDigits(mode(counts)),
		TotalSpent: spent,
		Cashback:   spent.Div(hundred).Round(2),
	}
	logger.Info().Str("card", summary.LastDigits).Msg("card summary built")
	return summary, nil
}

// mode returns the most frequent key; ties go to the smaller string so
// the result is deterministic.
func mode(counts map[string]int) string {
	var best string
	bestCount := 0
	for card, n := range counts {
		if n > bestCount || (n == bestCount && (best == "" || card < best)) {
			best, bestCount = card, n
		}
	}
	return best
}

func lastDigits(card string) string {
	if len(card) <= 4 {
		return card
	}
	return card[len(card)-4:]
}
