package view

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
)

type mockRateSource struct {
	mock.Mock
}

func (m *mockRateSource) Latest(ctx context.Context, base string, symbols []string) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx, base, symbols)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

type mockPriceSource struct {
	mock.Mock
}

func (m *mockPriceSource) Daily(ctx context.Context, symbols []string, day string) ([]domain.StockPrice, error) {
	args := m.Called(ctx, symbols, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockPrice), args.Error(1)
}

func statementTable() domain.Table {
	return domain.Table{
		Columns: []string{domain.ColDate, domain.ColCard, domain.ColAmount, domain.ColCategory, domain.ColDescription},
		Rows: []domain.Record{
			{domain.ColDate: "01.07.2024 10:00:00", domain.ColCard: "1234567812345678", domain.ColAmount: "-150,00", domain.ColCategory: "Супермаркеты", domain.ColDescription: "Покупка"},
			{domain.ColDate: "05.07.2024 12:00:00", domain.ColCard: "1234567812345678", domain.ColAmount: "-120,00", domain.ColCategory: "Кафе", domain.ColDescription: "Ужин"},
			{domain.ColDate: "10.07.2024 09:00:00", domain.ColCard: "8765432187654321", domain.ColAmount: "-100,00", domain.ColCategory: "Транспорт", domain.ColDescription: "Такси"},
		},
	}
}

func TestComposerDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("composes all blocks", func(t *testing.T) {
		rates := new(mockRateSource)
		rates.On("Latest", mock.Anything, "RUB", []string{"USD", "EUR"}).Return(
			[]domain.CurrencyRate{{Currency: "USD", Rate: 1.1}, {Currency: "EUR", Rate: 0.9}}, nil)

		stocks := new(mockPriceSource)
		stocks.On("Daily", mock.Anything, []string{"AAPL"}, "2024-07-23").Return(
			[]domain.StockPrice{{Symbol: "AAPL", Price: 150.0}}, nil)

		composer := NewComposer(Dependencies{
			Rates:      rates,
			Stocks:     stocks,
			Currencies: []string{"USD", "EUR"},
			Symbols:    []string{"AAPL"},
		})

		dashboard, err := composer.Dashboard(ctx, statementTable(), "2024-07-23 14:30:00")
		require.NoError(t, err)

		assert.Equal(t, "Добрый день", dashboard.Greeting)
		assert.Equal(t, "5678", dashboard.Cards.LastDigits)
		assert.Equal(t, 370.0, dashboard.Cards.TotalSpent)
		assert.Equal(t, 3.7, dashboard.Cards.Cashback)

		require.Len(t, dashboard.TopTransactions, 3)
		assert.Equal(t, "10.07.2024", dashboard.TopTransactions[0].Date)
		assert.Equal(t, -100.0, dashboard.TopTransactions[0].Amount)

		require.Len(t, dashboard.CurrencyRates, 2)
		assert.Equal(t, "USD", dashboard.CurrencyRates[0].Currency)
		require.Len(t, dashboard.StockPrices, 1)
		assert.Equal(t, 150.0, dashboard.StockPrices[0].Price)

		rates.AssertExpectations(t)
		stocks.AssertExpectations(t)
	})

	t.Run("failing enrichment degrades to empty lists", func(t *testing.T) {
		rates := new(mockRateSource)
		rates.On("Latest", mock.Anything, "RUB", []string{"USD"}).Return(nil, assert.AnError)
		stocks := new(mockPriceSource)
		stocks.On("Daily", mock.Anything, []string{"AAPL"}, "2024-07-23").Return(nil, assert.AnError)

		composer := NewComposer(Dependencies{
			Rates:      rates,
			Stocks:     stocks,
			Currencies: []string{"USD"},
			Symbols:    []string{"AAPL"},
		})

		dashboard, err := composer.Dashboard(ctx, statementTable(), "2024-07-23 14:30:00")
		require.NoError(t, err)
		assert.NotNil(t, dashboard.CurrencyRates)
		assert.Empty(t, dashboard.CurrencyRates)
		assert.NotNil(t, dashboard.StockPrices)
		assert.Empty(t, dashboard.StockPrices)
	})

	t.Run("no enrichment configured", func(t *testing.T) {
		composer := NewComposer(Dependencies{})
		dashboard, err := composer.Dashboard(ctx, statementTable(), "2024-07-23 14:30:00")
		require.NoError(t, err)
		assert.Empty(t, dashboard.CurrencyRates)
		assert.Empty(t, dashboard.StockPrices)
	})

	t.Run("malformed reference is catastrophic", func(t *testing.T) {
		composer := NewComposer(Dependencies{})
		_, err := composer.Dashboard(ctx, statementTable(), "23.07.2024")
		assert.Error(t, err)
	})

	t.Run("table without schema is catastrophic", func(t *testing.T) {
		composer := NewComposer(Dependencies{})
		_, err := composer.Dashboard(ctx, domain.Table{}, "2024-07-23 14:30:00")
		assert.ErrorIs(t, err, ErrNoTable)
	})

	t.Run("serialized output is idempotent and uses the contract field names", func(t *testing.T) {
		composer := NewComposer(Dependencies{})

		first, err := composer.Dashboard(ctx, statementTable(), "2024-07-23 14:30:00")
		require.NoError(t, err)
		second, err := composer.Dashboard(ctx, statementTable(), "2024-07-23 14:30:00")
		require.NoError(t, err)

		firstJSON, err := json.Marshal(first)
		require.NoError(t, err)
		secondJSON, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, firstJSON, secondJSON)

		for _, key := range []string{`"greeting"`, `"cards"`, `"last_digits"`, `"total_spent"`, `"cashback"`, `"top_transactions"`, `"currency_rates"`, `"stock_prices"`} {
			assert.Contains(t, string(firstJSON), key)
		}
	})
}

func TestComposerAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("runs search and category report alongside the dashboard", func(t *testing.T) {
		composer := NewComposer(Dependencies{})

		analysis, err := composer.Analyze(ctx, statementTable(), "2024-07-23 14:30:00", "такси", "Кафе")
		require.NoError(t, err)

		require.Len(t, analysis.SearchTransactions, 1)
		assert.Equal(t, "Такси", analysis.SearchTransactions[0][domain.ColDescription])

		require.Len(t, analysis.SpendingByCategory, 1)
		assert.Equal(t, "Кафе", analysis.SpendingByCategory[0].Category)
		assert.Equal(t, -120.0, analysis.SpendingByCategory[0].Total)

		assert.Equal(t, "Добрый день", analysis.Dashboard.Greeting)
	})

	t.Run("empty query and category leave their blocks empty", func(t *testing.T) {
		composer := NewComposer(Dependencies{})

		analysis, err := composer.Analyze(ctx, statementTable(), "2024-07-23 14:30:00", "", "")
		require.NoError(t, err)
		assert.Empty(t, analysis.SearchTransactions)
		assert.Empty(t, analysis.SpendingByCategory)
	})

	t.Run("catastrophic dashboard failure fails the analysis", func(t *testing.T) {
		composer := NewComposer(Dependencies{})
		_, err := composer.Analyze(ctx, statementTable(), "bad", "", "")
		assert.Error(t, err)
	})
}
