package accounts

import (
	"errors"

	acctsvc "learn2trade-backend/internal/application/accounts"
	"learn2trade-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *acctsvc.Service
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, acctsvc.ErrInvalidUsername),
		errors.Is(err, acctsvc.ErrInvalidEmail),
		errors.Is(err, acctsvc.ErrInvalidPassword):
		return fiber.StatusBadRequest
	case errors.Is(err, acctsvc.ErrUsernameTaken),
		errors.Is(err, acctsvc.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, acctsvc.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// Register POST /api/v1/accounts/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var body acctsvc.RegisterInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	u, err := h.Service.Register(c.Context(), body)
	if err != nil {
		return response.Error(c, err.Error(), statusFor(err), nil)
	}
	return response.SuccessCreated(c, "Account created", fiber.Map{
		"user_id":  u.ID,
		"username": u.Username,
		"email":    u.Email,
	}, nil)
}

// Login POST /api/v1/accounts/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	u, err := h.Service.Authenticate(c.Context(), body.Username, body.Password)
	if err != nil {
		return response.Error(c, err.Error(), statusFor(err), nil)
	}
	return response.Success(c, "Login successful", fiber.Map{
		"user_id":    u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"last_login": u.LastLogin,
	}, nil)
}
