package trading

import (
	"errors"
	"strings"

	"learn2trade-backend/internal/application/ledger"
	tradesvc "learn2trade-backend/internal/application/trading"
	"learn2trade-backend/internal/domain"
	"learn2trade-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type Handlers struct {
	Service *tradesvc.Service
}

// orderBody is the shared buy/sell request body. Price accepts a JSON
// number or string; decimal parses both without float drift.
type orderBody struct {
	UserID      uint            `json:"user_id"`
	Symbol      string          `json:"symbol"`
	CompanyName string          `json:"company_name"`
	Shares      int64           `json:"shares"`
	Price       decimal.Decimal `json:"price"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, tradesvc.ErrInvalidOrder):
		return fiber.StatusBadRequest
	case errors.Is(err, ledger.ErrNoPosition):
		return fiber.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrInsufficientShares):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handlers) execute(c *fiber.Ctx, action string) error {
	var body orderBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if body.UserID == 0 || strings.TrimSpace(body.Symbol) == "" {
		return response.Error(c, "user_id and symbol are required", fiber.StatusBadRequest, nil)
	}

	symbol := strings.ToUpper(strings.TrimSpace(body.Symbol))
	msg, err := h.Service.Execute(c.Context(), body.UserID, symbol, body.CompanyName, action, body.Shares, body.Price)
	if err != nil {
		return response.Error(c, err.Error(), statusFor(err), nil)
	}
	return response.Success(c, msg, fiber.Map{
		"symbol": symbol,
		"action": action,
		"shares": body.Shares,
		"price":  body.Price,
		"total":  body.Price.Mul(decimal.NewFromInt(body.Shares)).Round(2),
	}, nil)
}

// Buy POST /api/v1/trading/buy
func (h *Handlers) Buy(c *fiber.Ctx) error {
	return h.execute(c, domain.ActionBuy)
}

// Sell POST /api/v1/trading/sell
func (h *Handlers) Sell(c *fiber.Ctx) error {
	return h.execute(c, domain.ActionSell)
}
