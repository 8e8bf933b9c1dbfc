package quotes

import (
	"errors"
	"strings"

	"learn2trade-backend/internal/marketdata"
	"learn2trade-backend/internal/pkg/response"
	"learn2trade-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Source marketdata.Source
}

// Quote GET /api/v1/quotes/:symbol — one current price, cached when the
// wired source carries the Redis decorator.
func (h *Handlers) Quote(c *fiber.Ctx) error {
	symbol := strings.ToUpper(strings.TrimSpace(c.Params("symbol")))
	if !validation.IsValidSymbol(symbol) {
		return response.Error(c, "Invalid symbol", fiber.StatusBadRequest, nil)
	}

	q, err := h.Source.Quote(c.Context(), symbol)
	if err != nil {
		if errors.Is(err, marketdata.ErrPriceUnavailable) {
			return response.Error(c, marketdata.ErrPriceUnavailable.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, err.Error(), fiber.StatusServiceUnavailable, nil)
	}
	return response.Success(c, "Quote loaded", q, nil)
}
