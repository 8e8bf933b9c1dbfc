package config

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Market data provider selectors for Config.MarketDataProvider.
const (
	ProviderSimulated = "simulated"
	ProviderAlpaca    = "alpaca"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	DatabaseURL         string
	RedisURL            string
	LogLevel            string
	AllowedOriginSuffix string          // CORS origin suffix; empty allows any origin
	Currency            string          // display currency for formatted amounts (default USD)
	StartingCash        decimal.Decimal // opening paper balance for new portfolios

	MarketDataProvider string // "simulated" or "alpaca"
	AlpacaAPIKey       string
	AlpacaAPISecret    string
	AlpacaBaseURL      string
	QuoteTTL           time.Duration // how long cached quotes stay fresh
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL_DEV")
	if env == "production" {
		dbURL = viper.GetString("DATABASE_URL_PROD")
	} else if env == "test" {
		dbURL = viper.GetString("DATABASE_URL_TEST")
	}
	if dbURL == "" {
		dbURL = viper.GetString("DATABASE_URL")
	}

	startingCash := decimal.NewFromInt(100000)
	if raw := viper.GetString("STARTING_CASH"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err == nil && parsed.IsPositive() {
			startingCash = parsed
		}
	}

	currency := viper.GetString("CURRENCY")
	if currency == "" {
		currency = "USD"
	}

	provider := strings.ToLower(viper.GetString("MARKET_DATA_PROVIDER"))
	if provider != ProviderAlpaca {
		provider = ProviderSimulated
	}

	ttlSeconds := viper.GetInt("QUOTE_TTL_SECONDS")
	if ttlSeconds <= 0 {
		ttlSeconds = 60
	}

	return &Config{
		Env:                 env,
		Port:                port,
		DatabaseURL:         dbURL,
		RedisURL:            viper.GetString("REDIS_URL"),
		LogLevel:            viper.GetString("LOG_LEVEL"),
		AllowedOriginSuffix: viper.GetString("ALLOWED_ORIGIN_SUFFIX"),
		Currency:            currency,
		StartingCash:        startingCash,
		MarketDataProvider:  provider,
		AlpacaAPIKey:        viper.GetString("ALPACA_API_KEY"),
		AlpacaAPISecret:     viper.GetString("ALPACA_API_SECRET"),
		AlpacaBaseURL:       viper.GetString("ALPACA_BASE_URL"),
		QuoteTTL:            time.Duration(ttlSeconds) * time.Second,
	}, nil
}
