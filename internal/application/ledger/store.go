package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"learn2trade-backend/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the single source of truth for portfolio state: cash, open
// positions and the append-only order log. Every mutation runs as one
// storage transaction; calls touching the same user are additionally
// serialized through a per-user lock so read-modify-write sequences never
// interleave, whatever the underlying dialect.
type Store struct {
	DB           *gorm.DB
	StartingCash decimal.Decimal

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// Snapshot is the ledger's view of one portfolio: cash, positions keyed by
// symbol and the most recent orders, newest first.
type Snapshot struct {
	PortfolioID uint                      `json:"portfolio_id"`
	Cash        decimal.Decimal           `json:"cash"`
	Holdings    map[string]domain.Holding `json:"holdings"`
	Orders      []domain.Order            `json:"orders"`
}

const recentOrderLimit = 50

func NewStore(db *gorm.DB, startingCash decimal.Decimal) *Store {
	return &Store{
		DB:           db,
		StartingCash: startingCash,
		locks:        make(map[uint]*sync.Mutex),
	}
}

// userLock returns the mutex serializing trades for one user, creating it
// on first use.
func (s *Store) userLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// forUpdate adds a row lock on dialects that support it. sqlite rejects
// FOR UPDATE syntax; there the per-user lock alone serializes writers.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// getOrCreate provisions the portfolio row on first access and returns it.
// The insert ignores conflicts on user_id, so two racing first reads both
// converge on the same row instead of one of them failing.
func (s *Store) getOrCreate(tx *gorm.DB, userID uint, locked bool) (*domain.Portfolio, error) {
	seed := domain.Portfolio{
		UserID:     userID,
		Cash:       s.StartingCash,
		TotalValue: s.StartingCash,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&seed).Error
	if err != nil {
		return nil, err
	}

	q := tx
	if locked {
		q = forUpdate(tx)
	}
	var p domain.Portfolio
	if err := q.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Load returns the user's current snapshot, provisioning the portfolio with
// the starting balance if this is the first access.
func (s *Store) Load(ctx context.Context, userID uint) (*Snapshot, error) {
	var snap *Snapshot

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.getOrCreate(tx, userID, false)
		if err != nil {
			return err
		}

		var holdings []domain.Holding
		if err := tx.Where("portfolio_id = ?", p.ID).Find(&holdings).Error; err != nil {
			return err
		}
		bySymbol := make(map[string]domain.Holding, len(holdings))
		for _, h := range holdings {
			bySymbol[h.Symbol] = h
		}

		var orders []domain.Order
		if err := tx.Where("portfolio_id = ?", p.ID).
			Order("timestamp DESC, id DESC").
			Limit(recentOrderLimit).
			Find(&orders).Error; err != nil {
			return err
		}

		snap = &Snapshot{
			PortfolioID: p.ID,
			Cash:        p.Cash,
			Holdings:    bySymbol,
			Orders:      orders,
		}
		return nil
	})
	if err != nil {
		return nil, s.translate(err)
	}
	return snap, nil
}

// ApplyBuy debits cash, upserts the position and appends the order record,
// all in one transaction. Fails with ErrInsufficientFunds when the cost
// exceeds the cash balance read under lock.
func (s *Store) ApplyBuy(ctx context.Context, userID uint, symbol, companyName string, shares int64, price decimal.Decimal) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.getOrCreate(tx, userID, true)
		if err != nil {
			return err
		}

		cost := price.Mul(decimal.NewFromInt(shares)).Round(2)
		if p.Cash.LessThan(cost) {
			return ErrInsufficientFunds
		}

		newCash := p.Cash.Sub(cost)
		if err := tx.Model(&domain.Portfolio{}).Where("id = ?", p.ID).
			Update("cash", newCash).Error; err != nil {
			return err
		}

		var h domain.Holding
		err = tx.Where("portfolio_id = ? AND symbol = ?", p.ID, symbol).First(&h).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			h = domain.Holding{
				PortfolioID:   p.ID,
				Symbol:        symbol,
				CompanyName:   companyName,
				Shares:        shares,
				AvgPrice:      price.Round(2),
				TotalInvested: cost,
			}
			if err := tx.Create(&h).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			newShares := h.Shares + shares
			newInvested := h.TotalInvested.Add(cost)
			newAvg := newInvested.Div(decimal.NewFromInt(newShares)).Round(2)
			if err := tx.Model(&h).Updates(map[string]interface{}{
				"shares":         newShares,
				"avg_price":      newAvg,
				"total_invested": newInvested,
			}).Error; err != nil {
				return err
			}
		}

		return tx.Create(&domain.Order{
			PortfolioID: p.ID,
			Symbol:      symbol,
			CompanyName: companyName,
			Action:      domain.ActionBuy,
			Shares:      shares,
			Price:       price.Round(2),
			Total:       cost,
		}).Error
	})
	return s.translate(err)
}

// ApplySell credits the proceeds, shrinks or removes the position and
// appends the order record with the realized P&L, all in one transaction.
// The position sold down to zero is deleted; its average price dies with
// it, so a later buy of the symbol starts a fresh average.
func (s *Store) ApplySell(ctx context.Context, userID uint, symbol string, shares int64, price decimal.Decimal) (decimal.Decimal, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	var profitLoss decimal.Decimal

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.getOrCreate(tx, userID, true)
		if err != nil {
			return err
		}

		var h domain.Holding
		err = tx.Where("portfolio_id = ? AND symbol = ?", p.ID, symbol).First(&h).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoPosition
		}
		if err != nil {
			return err
		}
		if shares > h.Shares {
			return ErrInsufficientShares
		}

		qty := decimal.NewFromInt(shares)
		profitLoss = price.Sub(h.AvgPrice).Mul(qty).Round(2)
		proceeds := price.Mul(qty).Round(2)

		if err := tx.Model(&domain.Portfolio{}).Where("id = ?", p.ID).
			Update("cash", p.Cash.Add(proceeds)).Error; err != nil {
			return err
		}

		remaining := h.Shares - shares
		if remaining == 0 {
			if err := tx.Delete(&h).Error; err != nil {
				return err
			}
		} else {
			// avg_price is untouched by sells; total_invested follows the
			// remaining share count at that unchanged average.
			if err := tx.Model(&h).Updates(map[string]interface{}{
				"shares":         remaining,
				"total_invested": h.AvgPrice.Mul(decimal.NewFromInt(remaining)).Round(2),
			}).Error; err != nil {
				return err
			}
		}

		return tx.Create(&domain.Order{
			PortfolioID: p.ID,
			Symbol:      symbol,
			CompanyName: h.CompanyName,
			Action:      domain.ActionSell,
			Shares:      shares,
			Price:       price.Round(2),
			Total:       proceeds,
			ProfitLoss:  decimal.NullDecimal{Decimal: profitLoss, Valid: true},
		}).Error
	})
	if err != nil {
		return decimal.Decimal{}, s.translate(err)
	}
	return profitLoss, nil
}

// GrantCash tops up a portfolio's cash balance, provisioning the portfolio
// first if needed. Operator path for classroom resets; the amount must be
// positive, trades are the only way cash goes down.
func (s *Store) GrantCash(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, errors.New("grant amount must be positive")
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	var newCash decimal.Decimal
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.getOrCreate(tx, userID, true)
		if err != nil {
			return err
		}
		newCash = p.Cash.Add(amount.Round(2))
		return tx.Model(&domain.Portfolio{}).Where("id = ?", p.ID).
			Update("cash", newCash).Error
	})
	if err != nil {
		return decimal.Decimal{}, s.translate(err)
	}
	return newCash, nil
}

// translate keeps trade-rule failures intact and wraps anything else,
// connection and driver errors included, as retryable ErrUnavailable.
func (s *Store) translate(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrInsufficientFunds, ErrNoPosition, ErrInsufficientShares} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
