package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/fin-tools/spend-atlas/pkg/runtime/terminal"
	"github.com/fin-tools/spend-atlas/pkg/services/enrich"
	"github.com/fin-tools/spend-atlas/pkg/services/settings"
	"github.com/fin-tools/spend-atlas/pkg/services/view"
)

func main() {
	_ = godotenv.Load()

	// Results go to stdout, diagnostics to stderr.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	settingsPath := os.Getenv("SETTINGS_PATH")
	if settingsPath == "" {
		settingsPath = "user_settings.json"
	}
	userSettings := settings.Load(ctx, settingsPath)

	composer := view.NewComposer(view.Dependencies{
		Rates:      enrich.NewRateClient(enrich.RateClientConfig{APIKey: os.Getenv("EXCHANGE_API_KEY")}),
		Stocks:     enrich.NewStockClient(enrich.StockClientConfig{APIKey: os.Getenv("STOCKS_API_KEY")}),
		Currencies: userSettings.UserCurrencies,
		Symbols:    userSettings.UserStocks,
	})

	cli := terminal.NewCLI(terminal.Options{
		Composer: composer,
		Output:   os.Stdout,
	})

	if err := cli.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
