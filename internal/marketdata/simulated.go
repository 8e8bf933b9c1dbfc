package marketdata

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// basePrices seeds the simulator with a realistic opening price per symbol.
var basePrices = map[string]float64{
	"AAPL":  150.00,
	"GOOGL": 140.00,
	"MSFT":  380.00,
	"TSLA":  250.00,
	"AMZN":  180.00,
	"META":  480.00,
	"NFLX":  610.00,
	"NVDA":  520.00,
}

// SimulatedSource is a random-walk price generator for practice mode.
// Each quote steps the previous price by at most ±2%, so prices drift the
// way a quiet trading day does. Unknown symbols are ErrPriceUnavailable.
type SimulatedSource struct {
	mu     sync.Mutex
	rng    *rand.Rand
	prices map[string]float64
}

// NewSimulatedSource builds a simulator seeded for reproducible walks in
// tests; pass time.Now().UnixNano() for live use.
func NewSimulatedSource(seed int64) *SimulatedSource {
	prices := make(map[string]float64, len(basePrices))
	for sym, p := range basePrices {
		prices[sym] = p
	}
	return &SimulatedSource{
		rng:    rand.New(rand.NewSource(seed)),
		prices: prices,
	}
}

// Symbols lists every symbol the simulator quotes, for stream defaults.
func (s *SimulatedSource) Symbols() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.prices))
	for sym := range s.prices {
		out = append(out, sym)
	}
	return out
}

// Quote steps the symbol's walk and returns the new price.
func (s *SimulatedSource) Quote(_ context.Context, symbol string) (Quote, error) {
	symbol = strings.ToUpper(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	price, ok := s.prices[symbol]
	if !ok {
		return Quote{}, ErrPriceUnavailable
	}

	// -2% .. +2% step
	changePercent := (s.rng.Float64() - 0.5) * 4
	price = price * (1 + changePercent/100)
	s.prices[symbol] = price

	return Quote{
		Symbol: symbol,
		Price:  decimal.NewFromFloat(price).Round(2),
		AsOf:   time.Now(),
	}, nil
}
