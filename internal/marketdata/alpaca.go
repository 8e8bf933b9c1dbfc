package marketdata

import (
	"context"
	"fmt"
	"strings"

	alpaca "github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// AlpacaSource quotes symbols from the Alpaca market-data API using the
// latest reported trade. Any API failure is surfaced as ErrPriceUnavailable
// with the underlying cause attached for logs.
type AlpacaSource struct {
	client *alpaca.Client
}

// NewAlpacaSource builds a source from API credentials. baseURL overrides
// the default data endpoint when non-empty (paper/sandbox setups).
func NewAlpacaSource(apiKey, apiSecret, baseURL string) *AlpacaSource {
	opts := alpaca.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
	}
	if baseURL != "" {
		opts.BaseURL = baseURL
	}
	return &AlpacaSource{client: alpaca.NewClient(opts)}
}

func (a *AlpacaSource) Quote(_ context.Context, symbol string) (Quote, error) {
	symbol = strings.ToUpper(symbol)

	trade, err := a.client.GetLatestTrade(symbol, alpaca.GetLatestTradeRequest{})
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}
	if trade == nil || trade.Price <= 0 {
		return Quote{}, ErrPriceUnavailable
	}

	return Quote{
		Symbol: symbol,
		Price:  decimal.NewFromFloat(trade.Price).Round(2),
		AsOf:   trade.Timestamp,
	}, nil
}
