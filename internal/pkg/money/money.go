package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter renders decimal amounts in one display currency.
type Formatter struct {
	cur *money.Currency
}

// NewFormatter builds a formatter for an ISO currency code ("USD", "EUR").
// Unknown codes fall back to go-money's default currency rendering.
func NewFormatter(code string) Formatter {
	return Formatter{cur: money.New(0, code).Currency()}
}

// Format renders an amount with the currency's symbol and grouping,
// e.g. 1234.5 in USD -> "$1,234.50".
func (f Formatter) Format(amount decimal.Decimal) string {
	minor := amount.Shift(int32(f.cur.Fraction)).Round(0)
	return f.cur.Formatter().Format(minor.IntPart())
}

// Round2 normalizes an amount to cent precision, the resolution all ledger
// columns are stored at.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// SameCents reports whether two amounts agree once rounded to cents.
// Currency comparisons elsewhere must use this, never exact equality on
// unrounded values.
func SameCents(a, b decimal.Decimal) bool {
	return a.Round(2).Equal(b.Round(2))
}
