package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Portfolio is a user's paper-trading account: the cash balance plus the
// open positions hanging off it. One row per user, created on first access.
//
// TotalValue is a display cache written only by explicit snapshot refreshes;
// cash and holdings are the authoritative state.
type Portfolio struct {
	ID         uint            `gorm:"column:id;primaryKey" json:"id"`
	UserID     uint            `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	Cash       decimal.Decimal `gorm:"column:cash;type:decimal(15,2);not null" json:"cash"`
	TotalValue decimal.Decimal `gorm:"column:total_value;type:decimal(15,2);not null" json:"total_value"`
	CreatedAt  time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at" json:"updated_at"`

	Holdings []Holding `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"-"`
	Orders   []Order   `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}
