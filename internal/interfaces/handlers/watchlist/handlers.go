package watchlist

import (
	"errors"

	watchsvc "learn2trade-backend/internal/application/watchlist"
	"learn2trade-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *watchsvc.Service
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, watchsvc.ErrInvalidSymbol):
		return fiber.StatusBadRequest
	case errors.Is(err, watchsvc.ErrAlreadyWatched):
		return fiber.StatusConflict
	case errors.Is(err, watchsvc.ErrNotWatched):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// List GET /api/v1/watchlist/:userID
func (h *Handlers) List(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return response.Error(c, "Invalid user id", fiber.StatusBadRequest, nil)
	}

	items, err := h.Service.List(c.Context(), uint(userID))
	if err != nil {
		return response.Error(c, err.Error(), statusFor(err), nil)
	}
	return response.Success(c, "Watchlist loaded", fiber.Map{"items": items}, nil)
}

// Add POST /api/v1/watchlist
func (h *Handlers) Add(c *fiber.Ctx) error {
	var body struct {
		UserID      uint   `json:"user_id"`
		Symbol      string `json:"symbol"`
		CompanyName string `json:"company_name"`
		Notes       string `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if body.UserID == 0 {
		return response.Error(c, "user_id is required", fiber.StatusBadRequest, nil)
	}

	item, err := h.Service.Add(c.Context(), body.UserID, body.Symbol, body.CompanyName, body.Notes)
	if err != nil {
		return response.Error(c, err.Error(), statusFor(err), nil)
	}
	return response.SuccessCreated(c, "Stock added to watchlist", item, nil)
}

// Remove DELETE /api/v1/watchlist/:userID/:symbol
func (h *Handlers) Remove(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return response.Error(c, "Invalid user id", fiber.StatusBadRequest, nil)
	}

	if err := h.Service.Remove(c.Context(), uint(userID), c.Params("symbol")); err != nil {
		return response.Error(c, err.Error(), statusFor(err), nil)
	}
	return response.Success(c, "Stock removed from watchlist", nil, nil)
}
