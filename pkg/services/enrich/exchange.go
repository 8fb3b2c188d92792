// Package enrich fetches external data for the dashboard: currency
// exchange rates and daily stock prices. Both clients degrade to
// partial or empty results on failure; neither ever aborts the view.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
)

const defaultExchangeURL = "https://api.apilayer.com/exchangerates_data/latest"

// ErrNoAPIKey is returned when a client is asked to fetch without
// credentials configured.
var ErrNoAPIKey = errors.New("API key is not set")

// RateClient fetches latest exchange rates from the apilayer
// exchangerates_data API.
type RateClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// RateClientConfig configures a RateClient. Zero values fall back to
// the production endpoint and a 10s-timeout client.
type RateClientConfig struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewRateClient creates a rate client.
func NewRateClient(cfg RateClientConfig) *RateClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultExchangeURL
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RateClient{client: cfg.Client, baseURL: cfg.BaseURL, apiKey: cfg.APIKey}
}

// Latest returns the rate of each requested symbol against base, in
// request order. Symbols absent from the provider response are
// omitted.
func (c *RateClient) Latest(ctx context.Context, base string, symbols []string) ([]domain.CurrencyRate, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if len(symbols) == 0 {
		return []domain.CurrencyRate{}, nil
	}

	q := url.Values{}
	q.Set("base", base)
	q.Set("symbols", strings.Join(symbols, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building rates request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates request failed with status %d", resp.StatusCode)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding rates response: %w", err)
	}

	rates := make([]domain.CurrencyRate, 0, len(symbols))
	for _, symbol := range symbols {
		rate, ok := payload.Rates[symbol]
		if !ok {
			zerolog.Ctx(ctx).Warn().Str("currency", symbol).Msg("no rate in provider response")
			continue
		}
		rates = append(rates, domain.CurrencyRate{Currency: symbol, Rate: rate})
	}

	zerolog.Ctx(ctx).Info().Int("rates", len(rates)).Str("base", base).Msg("exchange rates fetched")
	return rates, nil
}
