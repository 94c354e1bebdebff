package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	sessionService "github.com/hueylin/groupballot/internal/services/session"
)

// CreateSessionRequest is the body for POST /sessions
type CreateSessionRequest struct {
	Name        string    `json:"name" validate:"required"`
	SessionDate time.Time `json:"sessionDate"`
}

// CreateSession creates a session and makes it current
func (h *Handler) CreateSession(c *fiber.Ctx) error {
	var req CreateSessionRequest
	if err := ValidateBody(c, &req); err != nil {
		return respondError(c, err.Error(), fiber.StatusBadRequest)
	}

	output, err := h.sessionSvc.CreateSession(c.Context(), &sessionService.CreateSessionInput{
		Name:        req.Name,
		SessionDate: req.SessionDate,
		CreatedBy:   usernameFromContext(c),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Session, "Session created", fiber.StatusCreated)
}

// SelectSession makes an existing session the current one
func (h *Handler) SelectSession(c *fiber.Ctx) error {
	output, err := h.sessionSvc.SelectSession(c.Context(), &sessionService.SelectSessionInput{
		SessionID: c.Params("id"),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Session, "Session selected")
}

// CloseSession deactivates a session
func (h *Handler) CloseSession(c *fiber.Ctx) error {
	output, err := h.sessionSvc.CloseSession(c.Context(), &sessionService.CloseSessionInput{
		SessionID: c.Params("id"),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Session, "Session closed")
}

// ListSessions returns every session
func (h *Handler) ListSessions(c *fiber.Ctx) error {
	output, err := h.sessionSvc.ListSessions(c.Context(), &sessionService.ListSessionsInput{})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Sessions, "")
}
