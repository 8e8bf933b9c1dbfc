package watchlist

import (
	"context"
	"errors"
	"strings"

	"learn2trade-backend/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrAlreadyWatched = errors.New("Stock already in watchlist")
	ErrNotWatched     = errors.New("Stock not in watchlist")
	ErrInvalidSymbol  = errors.New("Symbol is required")
)

// Service manages the per-user symbol watchlist. At most one entry per
// (user, symbol); the unique index backs up the duplicate check.
type Service struct {
	DB *gorm.DB
}

// Add puts a symbol on the user's watchlist.
func (s *Service) Add(ctx context.Context, userID uint, symbol, companyName, notes string) (*domain.WatchlistItem, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrInvalidSymbol
	}

	var existing domain.WatchlistItem
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyWatched
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &domain.WatchlistItem{
		UserID:      userID,
		Symbol:      symbol,
		CompanyName: companyName,
		Notes:       notes,
	}
	if err := s.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Remove drops a symbol from the user's watchlist.
func (s *Service) Remove(ctx context.Context, userID uint, symbol string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	result := s.DB.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Delete(&domain.WatchlistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotWatched
	}
	return nil
}

// List returns the user's watchlist, most recently added first.
func (s *Service) List(ctx context.Context, userID uint) ([]domain.WatchlistItem, error) {
	var items []domain.WatchlistItem
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
