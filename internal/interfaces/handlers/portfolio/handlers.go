package portfolio

import (
	"errors"

	"learn2trade-backend/internal/application/ledger"
	"learn2trade-backend/internal/application/valuation"
	"learn2trade-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Ledger   *ledger.Store
	Valuator *valuation.Service
}

func userIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("userID")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid user id")
	}
	return uint(id), nil
}

func statusFor(err error) int {
	if errors.Is(err, ledger.ErrUnavailable) {
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// Snapshot GET /api/v1/portfolio/:userID — cash, holdings and recent
// orders; provisions the portfolio on first access.
func (h *Handlers) Snapshot(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.Error(c, "Invalid user id", fiber.StatusBadRequest, nil)
	}

	snap, err := h.Ledger.Load(c.Context(), userID)
	if err != nil {
		return response.Error(c, err.Error(), statusFor(err), nil)
	}
	return response.Success(c, "Portfolio loaded", snap, nil)
}

// Value GET /api/v1/portfolio/:userID/value — live-priced valuation with
// average-cost fallback per symbol.
func (h *Handlers) Value(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.Error(c, "Invalid user id", fiber.StatusBadRequest, nil)
	}

	v, err := h.Valuator.Valuate(c.Context(), userID)
	if err != nil {
		return response.Error(c, err.Error(), statusFor(err), nil)
	}
	return response.Success(c, "Portfolio valued", v, nil)
}

// Orders GET /api/v1/orders/:userID — the recent order log, newest first.
func (h *Handlers) Orders(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return response.Error(c, "Invalid user id", fiber.StatusBadRequest, nil)
	}

	snap, err := h.Ledger.Load(c.Context(), userID)
	if err != nil {
		return response.Error(c, err.Error(), statusFor(err), nil)
	}
	return response.Success(c, "Orders loaded", fiber.Map{
		"orders": snap.Orders,
	}, nil)
}
