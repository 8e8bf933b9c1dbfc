package valuation

import (
	"context"
	"testing"
	"time"

	"learn2trade-backend/internal/application/ledger"
	"learn2trade-backend/internal/domain"
	"learn2trade-backend/internal/marketdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedger struct {
	snap *ledger.Snapshot
}

func (f *fakeLedger) Load(_ context.Context, _ uint) (*ledger.Snapshot, error) {
	return f.snap, nil
}

// fixedPrices answers from a table and fails everything else.
type fixedPrices struct {
	prices map[string]float64
}

func (f *fixedPrices) Quote(_ context.Context, symbol string) (marketdata.Quote, error) {
	p, ok := f.prices[symbol]
	if !ok {
		return marketdata.Quote{}, marketdata.ErrPriceUnavailable
	}
	return marketdata.Quote{Symbol: symbol, Price: decimal.NewFromFloat(p), AsOf: time.Now()}, nil
}

func holding(symbol string, shares int64, avg float64) domain.Holding {
	avgDec := decimal.NewFromFloat(avg)
	return domain.Holding{
		Symbol:        symbol,
		Shares:        shares,
		AvgPrice:      avgDec,
		TotalInvested: avgDec.Mul(decimal.NewFromInt(shares)).Round(2),
	}
}

func TestValuate_SumsCashAndMarketValues(t *testing.T) {
	svc := &Service{
		Ledger: &fakeLedger{snap: &ledger.Snapshot{
			Cash: decimal.NewFromInt(1000),
			Holdings: map[string]domain.Holding{
				"AAPL": holding("AAPL", 10, 100),
				"MSFT": holding("MSFT", 2, 300),
			},
		}},
		Prices: &fixedPrices{prices: map[string]float64{"AAPL": 150, "MSFT": 400}},
	}

	v, err := svc.Valuate(context.Background(), 1)
	require.NoError(t, err)

	// 1000 cash + 10*150 + 2*400
	assert.True(t, v.TotalValue.Equal(decimal.NewFromInt(3300)), "got %s", v.TotalValue)
	require.Len(t, v.Positions, 2)
	assert.Equal(t, "AAPL", v.Positions[0].Symbol)
	assert.True(t, v.Positions[0].UnrealizedPL.Equal(decimal.NewFromInt(500)))
	assert.False(t, v.Positions[0].PriceStale)
}

func TestValuate_FeedFailureFallsBackToAvgPrice(t *testing.T) {
	svc := &Service{
		Ledger: &fakeLedger{snap: &ledger.Snapshot{
			Cash: decimal.NewFromInt(500),
			Holdings: map[string]domain.Holding{
				"AAPL": holding("AAPL", 10, 100),
				"TSLA": holding("TSLA", 4, 250),
			},
		}},
		Prices: &fixedPrices{prices: map[string]float64{"AAPL": 150}},
	}

	v, err := svc.Valuate(context.Background(), 1)
	require.NoError(t, err)

	// TSLA valued at its own average cost: 500 + 1500 + 1000
	assert.True(t, v.TotalValue.Equal(decimal.NewFromInt(3000)), "got %s", v.TotalValue)

	var tsla PositionValue
	for _, p := range v.Positions {
		if p.Symbol == "TSLA" {
			tsla = p
		}
	}
	assert.True(t, tsla.PriceStale)
	assert.True(t, tsla.CurrentPrice.Equal(decimal.NewFromInt(250)))
	assert.True(t, tsla.UnrealizedPL.IsZero())
}

func TestValuate_EmptyPortfolioIsJustCash(t *testing.T) {
	svc := &Service{
		Ledger: &fakeLedger{snap: &ledger.Snapshot{
			Cash:     decimal.NewFromInt(100000),
			Holdings: map[string]domain.Holding{},
		}},
		Prices: &fixedPrices{prices: map[string]float64{}},
	}

	v, err := svc.Valuate(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, v.TotalValue.Equal(decimal.NewFromInt(100000)))
	assert.Empty(t, v.Positions)
}
