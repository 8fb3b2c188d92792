package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
)

const (
	defaultStocksURL      = "https://www.alphavantage.co/query"
	defaultStocksThrottle = time.Second
	closePriceField       = "4. close"
)

// StockClient fetches daily closing prices from the Alpha Vantage
// TIME_SERIES_DAILY endpoint, one request per symbol.
type StockClient struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	throttle time.Duration
}

// StockClientConfig configures a StockClient. Throttle is the pause
// inserted after a failed symbol before trying the next one.
type StockClientConfig struct {
	APIKey   string
	BaseURL  string
	Client   *http.Client
	Throttle time.Duration
}

// NewStockClient creates a stock price client.
func NewStockClient(cfg StockClientConfig) *StockClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultStocksURL
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.Throttle == 0 {
		cfg.Throttle = defaultStocksThrottle
	}
	return &StockClient{
		client:   cfg.Client,
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		throttle: cfg.Throttle,
	}
}

type dailyResponse struct {
	TimeSeries   map[string]map[string]string `json:"Time Series (Daily)"`
	Information  string                       `json:"Information"`
	ErrorMessage string                       `json:"Error Message"`
}

// Daily returns the closing price of each symbol on day (YYYY-MM-DD).
// Symbols are fetched independently: a failed or empty symbol is
// logged and omitted, and never blocks the remaining ones.
func (c *StockClient) Daily(ctx context.Context, symbols []string, day string) ([]domain.StockPrice, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	logger := zerolog.Ctx(ctx)

	prices := make([]domain.StockPrice, 0, len(symbols))
	for _, symbol := range symbols {
		price, err := c.closeOn(ctx, symbol, day)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("stock lookup failed")
			if err := c.pause(ctx); err != nil {
				return prices, err
			}
			continue
		}
		if price == nil {
			logger.Warn().Str("symbol", symbol).Str("date", day).Msg("no price for date")
			continue
		}
		prices = append(prices, domain.StockPrice{Symbol: symbol, Price: *price})
	}

	logger.Info().Int("prices", len(prices)).Str("date", day).Msg("stock prices fetched")
	return prices, nil
}

// closeOn returns the close price of symbol on day, nil when the
// provider has no entry for that day.
func (c *StockClient) closeOn(ctx context.Context, symbol, day string) (*float64, error) {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building stocks request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stocks request for %s failed with status %d", symbol, resp.StatusCode)
	}

	var payload dailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response for %s: %w", symbol, err)
	}

	if payload.TimeSeries == nil {
		if payload.Information != "" {
			return nil, fmt.Errorf("provider rejected %s: %s", symbol, payload.Information)
		}
		if payload.ErrorMessage != "" {
			return nil, fmt.Errorf("provider rejected %s: %s", symbol, payload.ErrorMessage)
		}
		return nil, fmt.Errorf("no time series for %s", symbol)
	}

	quote, ok := payload.TimeSeries[day]
	if !ok {
		return nil, nil
	}
	price, err := strconv.ParseFloat(quote[closePriceField], 64)
	if err != nil {
		return nil, fmt.Errorf("close price for %s on %s: %w", symbol, day, err)
	}
	return &price, nil
}

// pause waits out the throttle, or returns early when the context is
// canceled.
func (c *StockClient) pause(ctx context.Context) error {
	timer := time.NewTimer(c.throttle)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
