// Package view composes pipeline outputs and external enrichment into
// the dashboard JSON structure. Sub-component failures degrade to
// empty blocks; only an invalid reference timestamp or table fails the
// whole view.
package view

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/fin-tools/spend-atlas/pkg/models/api"
	"github.com/fin-tools/spend-atlas/pkg/models/domain"
	"github.com/fin-tools/spend-atlas/pkg/services/normalize"
	"github.com/fin-tools/spend-atlas/pkg/services/report"
)

// ErrNoTable marks a view request against a table with no schema at
// all, the one failure that short-circuits composition.
var ErrNoTable = errors.New("Нет данных для анализа")

// RateSource provides exchange rates against a base currency.
type RateSource interface {
	Latest(ctx context.Context, base string, symbols []string) ([]domain.CurrencyRate, error)
}

// PriceSource provides closing stock prices for a given day.
type PriceSource interface {
	Daily(ctx context.Context, symbols []string, day string) ([]domain.StockPrice, error)
}

// BaseCurrency is the currency statements are denominated in.
const BaseCurrency = "RUB"

// Dependencies are the composer's collaborators. Rates and Stocks may
// be nil when enrichment is not configured.
type Dependencies struct {
	Rates      RateSource
	Stocks     PriceSource
	Currencies []string
	Symbols    []string
}

// Composer builds dashboard views over a statement table.
type Composer struct {
	deps Dependencies
}

// NewComposer creates a composer.
func NewComposer(deps Dependencies) *Composer {
	return &Composer{deps: deps}
}

// Dashboard builds the composed view for the reference timestamp
// (strict "YYYY-MM-DD HH:MM:SS"). A malformed reference or an empty
// table schema is a catastrophic error; everything else degrades.
func (c *Composer) Dashboard(ctx context.Context, table domain.Table, ref string) (api.Dashboard, error) {
	logger := zerolog.Ctx(ctx)

	if len(table.Columns) == 0 {
		return api.Dashboard{}, ErrNoTable
	}
	ts, err := normalize.ParseTimestamp(ref)
	if err != nil {
		return api.Dashboard{}, err
	}

	dashboard := api.Dashboard{
		Greeting:        Greeting(ts),
		TopTransactions: make([]api.TopTransaction, 0),
		CurrencyRates:   make([]api.CurrencyRate, 0),
		StockPrices:     make([]api.StockPrice, 0),
	}

	summary, err := report.CardSummary(ctx, table)
	if err != nil {
		logger.Warn().Err(err).Msg("card summary unavailable, leaving block empty")
	} else {
		dashboard.Cards = api.CardSummary{
			LastDigits: summary.LastDigits,
			TotalSpent: summary.TotalSpent.InexactFloat64(),
			Cashback:   summary.Cashback.InexactFloat64(),
		}
	}

	for _, txn := range report.TopTransactionsAt(ctx, table, ts) {
		dashboard.TopTransactions = append(dashboard.TopTransactions, api.TopTransaction{
			Date:        txn.Date.Format(normalize.LayoutDotted),
			Amount:      txn.Amount.InexactFloat64(),
			Category:    txn.Category,
			Description: txn.Description,
		})
	}

	if c.deps.Rates != nil && len(c.deps.Currencies) > 0 {
		rates, err := c.deps.Rates.Latest(ctx, BaseCurrency, c.deps.Currencies)
		if err != nil {
			logger.Warn().Err(err).Msg("exchange rates unavailable")
		}
		for _, rate := range rates {
			dashboard.CurrencyRates = append(dashboard.CurrencyRates, api.CurrencyRate(rate))
		}
	}

	if c.deps.Stocks != nil && len(c.deps.Symbols) > 0 {
		prices, err := c.deps.Stocks.Daily(ctx, c.deps.Symbols, ts.Format(normalize.LayoutISO))
		if err != nil {
			logger.Warn().Err(err).Msg("stock prices unavailable")
		}
		for _, price := range prices {
			dashboard.StockPrices = append(dashboard.StockPrices, api.StockPrice(price))
		}
	}

	return dashboard, nil
}

// Analyze runs the whole analysis in one call: free-text search when
// query is set, the category report when category is set, and the
// dashboard view. The reference timestamp gates the whole result.
func (c *Composer) Analyze(ctx context.Context, table domain.Table, ref, query, category string) (api.Analysis, error) {
	logger := zerolog.Ctx(ctx)

	dashboard, err := c.Dashboard(ctx, table, ref)
	if err != nil {
		return api.Analysis{}, err
	}

	analysis := api.Analysis{
		SearchTransactions: make([]map[string]string, 0),
		SpendingByCategory: make([]api.CategoryTotal, 0),
		Dashboard:          dashboard,
	}

	if query != "" {
		matches, err := report.Search(ctx, table, query)
		if err != nil {
			logger.Warn().Err(err).Str("query", query).Msg("search unavailable, leaving block empty")
		}
		for _, row := range matches {
			analysis.SearchTransactions = append(analysis.SearchTransactions, row)
		}
	}

	if category != "" {
		for _, row := range report.SpendingByCategory(ctx, table, category, ref) {
			analysis.SpendingByCategory = append(analysis.SpendingByCategory, api.CategoryTotal{
				Category: row.Category,
				Total:    row.Total.InexactFloat64(),
			})
		}
	}

	return analysis, nil
}
