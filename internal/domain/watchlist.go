package domain

import (
	"time"
)

// WatchlistItem is one symbol a user is tracking, at most once per user.
type WatchlistItem struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null;uniqueIndex:idx_watchlists_user_symbol" json:"user_id"`
	Symbol      string    `gorm:"column:symbol;type:varchar(20);not null;uniqueIndex:idx_watchlists_user_symbol" json:"symbol"`
	CompanyName string    `gorm:"column:company_name;type:varchar(200)" json:"company_name"`
	Notes       string    `gorm:"column:notes;type:text" json:"notes"`
	AddedAt     time.Time `gorm:"column:added_at;autoCreateTime" json:"added_at"`
}

func (WatchlistItem) TableName() string {
	return "watchlists"
}
