package ledger

import "errors"

// Trade and storage failures surfaced to callers. Handlers map these to
// HTTP statuses; everything else coming out of the store wraps
// ErrUnavailable and is safe to retry.
var (
	ErrInsufficientFunds  = errors.New("Insufficient funds")
	ErrNoPosition         = errors.New("No shares to sell")
	ErrInsufficientShares = errors.New("Insufficient shares")
	ErrUnavailable        = errors.New("Service unavailable")
)
