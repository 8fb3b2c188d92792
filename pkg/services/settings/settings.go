// Package settings loads the user's enrichment preferences from
// user_settings.json. A missing or corrupt file disables enrichment
// rather than failing startup.
package settings

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Settings lists the currencies and stock symbols the user wants on
// the dashboard.
type Settings struct {
	UserCurrencies []string `mapstructure:"user_currencies"`
	UserStocks     []string `mapstructure:"user_stocks"`
}

// Load reads settings from path. Any failure is logged and yields
// empty settings.
func Load(ctx context.Context, path string) Settings {
	logger := zerolog.Ctx(ctx)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("user settings unavailable, enrichment disabled")
		return Settings{}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("user settings unreadable, enrichment disabled")
		return Settings{}
	}

	logger.Info().
		Strs("currencies", s.UserCurrencies).
		Strs("stocks", s.UserStocks).
		Msg("user settings loaded")
	return s
}
