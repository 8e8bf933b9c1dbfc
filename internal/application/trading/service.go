package trading

import (
	"context"
	"errors"
	"fmt"

	"learn2trade-backend/internal/domain"
	"learn2trade-backend/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// ErrInvalidOrder rejects orders with a non-positive share count or price,
// or an unknown action, before any storage access.
var ErrInvalidOrder = errors.New("Shares and price must be positive")

// Ledger is the slice of the ledger store the executor drives.
type Ledger interface {
	ApplyBuy(ctx context.Context, userID uint, symbol, companyName string, shares int64, price decimal.Decimal) error
	ApplySell(ctx context.Context, userID uint, symbol string, shares int64, price decimal.Decimal) (decimal.Decimal, error)
}

// Service validates trade requests and applies them through the ledger,
// turning results into the outcome messages shown to the user.
type Service struct {
	Ledger Ledger
	Format money.Formatter
}

// Execute runs one buy or sell. Funds and position checks happen inside the
// ledger transaction on locked state; only input-shape validation lives
// here. The returned message is user-facing.
func (s *Service) Execute(ctx context.Context, userID uint, symbol, companyName, action string, shares int64, price decimal.Decimal) (string, error) {
	if shares <= 0 || !price.IsPositive() {
		return "", ErrInvalidOrder
	}

	switch action {
	case domain.ActionBuy:
		if err := s.Ledger.ApplyBuy(ctx, userID, symbol, companyName, shares, price); err != nil {
			return "", err
		}
		return "Buy order executed", nil
	case domain.ActionSell:
		profitLoss, err := s.Ledger.ApplySell(ctx, userID, symbol, shares, price)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Sell order executed (P&L: %s)", s.Format.Format(profitLoss)), nil
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidOrder, action)
	}
}
