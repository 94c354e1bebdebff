package http

import (
	"github.com/gofiber/fiber/v2"

	statsService "github.com/hueylin/groupballot/internal/services/stats"
)

// GetStats returns the registration and ballot counts for a session,
// defaulting to the current one
func (h *Handler) GetStats(c *fiber.Ctx) error {
	output, err := h.statsSvc.SessionStats(c.Context(), &statsService.SessionStatsInput{
		SessionID: c.Query("session_id"),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output, "")
}
