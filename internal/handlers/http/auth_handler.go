package http

import (
	"github.com/gofiber/fiber/v2"

	authService "github.com/hueylin/groupballot/internal/services/auth"
)

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login authenticates an admin and returns a bearer token
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := ValidateBody(c, &req); err != nil {
		return respondError(c, err.Error(), fiber.StatusBadRequest)
	}

	output, err := h.authSvc.Login(c.Context(), &authService.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, fiber.Map{
		"token":    output.Token,
		"username": output.Admin.Username,
	}, "Login successful")
}
