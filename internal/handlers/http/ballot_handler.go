package http

import (
	"github.com/gofiber/fiber/v2"

	ballotService "github.com/hueylin/groupballot/internal/services/ballot"
)

// DrawRequest is the body for POST /ballot/draw
type DrawRequest struct {
	GroupID             string `json:"groupId" validate:"required"`
	RepresentativeEmail string `json:"representativeEmail" validate:"required,email"`
}

// StartBallot opens the current session's ballot for drawing
func (h *Handler) StartBallot(c *fiber.Ctx) error {
	output, err := h.ballotSvc.StartBallot(c.Context(), &ballotService.StartBallotInput{})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, fiber.Map{
		"result": output.Result,
		"groups": output.Groups,
	}, "Ballot started")
}

// Draw assigns a random remaining position to the caller's group
func (h *Handler) Draw(c *fiber.Ctx) error {
	var req DrawRequest
	if err := ValidateBody(c, &req); err != nil {
		return respondError(c, err.Error(), fiber.StatusBadRequest)
	}

	output, err := h.ballotSvc.Draw(c.Context(), &ballotService.DrawInput{
		GroupID:             req.GroupID,
		RepresentativeEmail: req.RepresentativeEmail,
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, fiber.Map{
		"position":  output.Position,
		"completed": output.Completed,
		"group":     output.Group,
		"result":    output.Result,
	}, "Position drawn")
}

// CanDraw reports whether a draw with the same arguments would be accepted
func (h *Handler) CanDraw(c *fiber.Ctx) error {
	output, err := h.ballotSvc.CanDraw(c.Context(), &ballotService.CanDrawInput{
		GroupID: c.Query("group_id"),
		Email:   c.Query("email"),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, fiber.Map{
		"canDraw": output.CanDraw,
		"reason":  output.Reason,
	}, "")
}

// GetBallotResult returns the ballot result of a session, defaulting to the
// current one
func (h *Handler) GetBallotResult(c *fiber.Ctx) error {
	output, err := h.ballotSvc.GetResult(c.Context(), &ballotService.GetResultInput{
		SessionID: c.Query("session_id"),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Result, "")
}
