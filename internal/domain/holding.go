package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is an open position in one symbol, unique per portfolio.
// Shares is always positive: a position sold down to zero is deleted, so a
// later buy of the same symbol starts a fresh average cost.
//
// Invariant at rest: TotalInvested == Shares * AvgPrice (2dp).
type Holding struct {
	ID            uint            `gorm:"column:id;primaryKey" json:"id"`
	PortfolioID   uint            `gorm:"column:portfolio_id;not null;uniqueIndex:idx_holdings_portfolio_symbol" json:"portfolio_id"`
	Symbol        string          `gorm:"column:symbol;type:varchar(20);not null;uniqueIndex:idx_holdings_portfolio_symbol" json:"symbol"`
	CompanyName   string          `gorm:"column:company_name;type:varchar(200)" json:"company_name"`
	Shares        int64           `gorm:"column:shares;not null" json:"shares"`
	AvgPrice      decimal.Decimal `gorm:"column:avg_price;type:decimal(15,2);not null" json:"avg_price"`
	TotalInvested decimal.Decimal `gorm:"column:total_invested;type:decimal(15,2);not null" json:"total_invested"`
	CreatedAt     time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Holding) TableName() string {
	return "holdings"
}
