package valuation

import (
	"context"
	"sort"

	"learn2trade-backend/internal/application/ledger"
	"learn2trade-backend/internal/marketdata"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// LedgerReader is the slice of the ledger store the valuator reads from.
type LedgerReader interface {
	Load(ctx context.Context, userID uint) (*ledger.Snapshot, error)
}

// Service computes point-in-time portfolio values for display. Strictly
// read-only: it never writes the cached total_value back, and it takes no
// locks, so running it during trades just means a slightly stale snapshot.
type Service struct {
	Ledger LedgerReader
	Prices marketdata.Source
}

// PositionValue is one holding priced at the current market.
type PositionValue struct {
	Symbol       string          `json:"symbol"`
	CompanyName  string          `json:"company_name"`
	Shares       int64           `json:"shares"`
	AvgPrice     decimal.Decimal `json:"avg_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	MarketValue  decimal.Decimal `json:"market_value"`
	UnrealizedPL decimal.Decimal `json:"unrealized_pl"`
	PriceStale   bool            `json:"price_stale"`
}

// Valuation is the priced view of a whole portfolio.
type Valuation struct {
	Cash       decimal.Decimal `json:"cash"`
	TotalValue decimal.Decimal `json:"total_value"`
	Positions  []PositionValue `json:"positions"`
}

// Valuate prices every holding and sums cash plus market values. A failed
// price lookup downgrades that position to its average cost (PriceStale),
// so valuation succeeds through feed outages.
func (s *Service) Valuate(ctx context.Context, userID uint) (*Valuation, error) {
	snap, err := s.Ledger.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	v := &Valuation{
		Cash:       snap.Cash,
		TotalValue: snap.Cash,
		Positions:  make([]PositionValue, 0, len(snap.Holdings)),
	}

	for _, h := range snap.Holdings {
		price := h.AvgPrice
		stale := false
		if q, err := s.Prices.Quote(ctx, h.Symbol); err == nil {
			price = q.Price
		} else {
			stale = true
			log.Warn().Err(err).Str("symbol", h.Symbol).Msg("price lookup failed, valuing at average cost")
		}

		qty := decimal.NewFromInt(h.Shares)
		marketValue := price.Mul(qty).Round(2)
		v.Positions = append(v.Positions, PositionValue{
			Symbol:       h.Symbol,
			CompanyName:  h.CompanyName,
			Shares:       h.Shares,
			AvgPrice:     h.AvgPrice,
			CurrentPrice: price,
			MarketValue:  marketValue,
			UnrealizedPL: marketValue.Sub(h.TotalInvested).Round(2),
			PriceStale:   stale,
		})
		v.TotalValue = v.TotalValue.Add(marketValue)
	}

	sort.Slice(v.Positions, func(i, j int) bool {
		return v.Positions[i].Symbol < v.Positions[j].Symbol
	})
	return v, nil
}
