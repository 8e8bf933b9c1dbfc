package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade actions recorded on Order rows.
const (
	ActionBuy  = "buy"
	ActionSell = "sell"
)

// Order is one executed trade. Rows are append-only: never updated or
// deleted, so the log is a full audit trail of the portfolio.
// ProfitLoss is set on sells only (realized against average cost).
type Order struct {
	ID          uint                `gorm:"column:id;primaryKey" json:"id"`
	PortfolioID uint                `gorm:"column:portfolio_id;not null;index" json:"portfolio_id"`
	Symbol      string              `gorm:"column:symbol;type:varchar(20);not null" json:"symbol"`
	CompanyName string              `gorm:"column:company_name;type:varchar(200)" json:"company_name"`
	Action      string              `gorm:"column:action;type:varchar(10);not null" json:"action"`
	Shares      int64               `gorm:"column:shares;not null" json:"shares"`
	Price       decimal.Decimal     `gorm:"column:price;type:decimal(15,2);not null" json:"price"`
	Total       decimal.Decimal     `gorm:"column:total;type:decimal(15,2);not null" json:"total"`
	ProfitLoss  decimal.NullDecimal `gorm:"column:profit_loss;type:decimal(15,2)" json:"profit_loss"`
	CreatedAt   time.Time           `gorm:"column:timestamp" json:"timestamp"`
}

func (Order) TableName() string {
	return "orders"
}
