package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/spend-atlas/pkg/handlers/dashboard"
	"github.com/fin-tools/spend-atlas/pkg/server"
	"github.com/fin-tools/spend-atlas/pkg/services/enrich"
	"github.com/fin-tools/spend-atlas/pkg/services/settings"
	"github.com/fin-tools/spend-atlas/pkg/services/statement"
	"github.com/fin-tools/spend-atlas/pkg/services/view"
)

var (
	statementPath string
	settingsPath  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Spend Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&statementPath, "file", "f", "data/operations.xlsx",
		"Path to the bank statement export (.csv or .xlsx)")
	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "user_settings.json",
		"Path to the user settings file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	table, err := statement.DefaultRegistry().Load(statementPath)
	if err != nil {
		return fmt.Errorf("failed to load statement: %w", err)
	}
	logger.Info().
		Str("path", statementPath).
		Int("rows", len(table.Rows)).
		Msg("statement loaded")

	userSettings := settings.Load(ctx, settingsPath)

	composer := view.NewComposer(view.Dependencies{
		Rates:      enrich.NewRateClient(enrich.RateClientConfig{APIKey: os.Getenv("EXCHANGE_API_KEY")}),
		Stocks:     enrich.NewStockClient(enrich.StockClientConfig{APIKey: os.Getenv("STOCKS_API_KEY")}),
		Currencies: userSettings.UserCurrencies,
		Symbols:    userSettings.UserStocks,
	})

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Dashboard: dashboard.NewHandler(table, composer),
		},
	})

	return webAPI.Start()
}
