// Package marketdata supplies current prices to the valuator, the quote
// endpoints and the websocket stream. Implementations are interchangeable
// behind the Source interface: a live Alpaca client, an in-process random
// walk for classrooms, and a Redis caching decorator over either.
package marketdata

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrPriceUnavailable reports that no current price exists for a symbol.
// Callers valuing a portfolio fall back to the position's average cost.
var ErrPriceUnavailable = errors.New("Price unavailable")

// Quote is one observed price for a symbol.
type Quote struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
	AsOf   time.Time       `json:"as_of"`
}

// Source yields the current price for a symbol. Implementations must be
// safe for concurrent use.
type Source interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}
