package learning

import (
	"errors"

	learnsvc "learn2trade-backend/internal/application/learning"
	"learn2trade-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *learnsvc.Service
}

// Courses GET /api/v1/learning/courses — the static curriculum.
func (h *Handlers) Courses(c *fiber.Ctx) error {
	return response.Success(c, "Courses loaded", fiber.Map{
		"courses": learnsvc.Catalog(),
	}, nil)
}

// Progress GET /api/v1/learning/progress/:userID
func (h *Handlers) Progress(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return response.Error(c, "Invalid user id", fiber.StatusBadRequest, nil)
	}

	report, err := h.Service.Progress(c.Context(), uint(userID))
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Progress loaded", report, nil)
}

// Complete POST /api/v1/learning/complete
func (h *Handlers) Complete(c *fiber.Ctx) error {
	var body struct {
		UserID   uint   `json:"user_id"`
		Category string `json:"category"`
		Lesson   string `json:"lesson"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if body.UserID == 0 || body.Category == "" || body.Lesson == "" {
		return response.Error(c, "user_id, category and lesson are required", fiber.StatusBadRequest, nil)
	}

	newly, err := h.Service.CompleteLesson(c.Context(), body.UserID, body.Category, body.Lesson)
	if err != nil {
		if errors.Is(err, learnsvc.ErrUnknownLesson) {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}

	msg := "Lesson completed"
	if !newly {
		msg = "Lesson was already completed"
	}
	return response.Success(c, msg, fiber.Map{"newly_completed": newly}, nil)
}
