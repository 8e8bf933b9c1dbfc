package health

import (
	"learn2trade-backend/internal/health"
	"learn2trade-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Rdb *redis.Client
	DB  health.DBPinger
	Env string
}

// Banner GET / — service banner for load balancers and the curious.
func (h *Handlers) Banner(c *fiber.Ctx) error {
	return response.Success(c, "learn2trade API", fiber.Map{
		"service": "learn2trade-backend",
		"health":  "/health/json",
	}, nil)
}

// JSON GET /health/json — dependency probes; degraded components are
// reported, never turned into a failing status code.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	report := health.Collect(c.Context(), h.Rdb, h.DB, h.Env)
	return c.JSON(report)
}
