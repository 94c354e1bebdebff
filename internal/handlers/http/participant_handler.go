package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hueylin/groupballot/internal/models"
	registryService "github.com/hueylin/groupballot/internal/services/registry"
)

// RegisterParticipantRequest is the body for POST /register
type RegisterParticipantRequest struct {
	Email        string `json:"email" validate:"required,email"`
	WechatHandle string `json:"wechatHandle" validate:"required"`
}

// RegisterParticipant handles self-service participant registration
func (h *Handler) RegisterParticipant(c *fiber.Ctx) error {
	var req RegisterParticipantRequest
	if err := ValidateBody(c, &req); err != nil {
		return respondError(c, err.Error(), fiber.StatusBadRequest)
	}

	output, err := h.registrySvc.Register(c.Context(), &registryService.RegisterInput{
		Email:        req.Email,
		WechatHandle: req.WechatHandle,
		AddedBy:      models.AddedBySelf,
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Participant, "Registration successful", fiber.StatusCreated)
}

// RemoveParticipant handles admin removal of a participant
func (h *Handler) RemoveParticipant(c *fiber.Ctx) error {
	output, err := h.registrySvc.Remove(c.Context(), &registryService.RemoveInput{
		Email: c.Params("email"),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	if !output.Removed {
		return respondError(c, "Participant not found", fiber.StatusNotFound)
	}

	return respondSuccess(c, fiber.Map{
		"groupsDeleted": output.GroupsDeleted,
	}, "Participant removed")
}

// DesignateRepresentative grants the representative role to a participant
func (h *Handler) DesignateRepresentative(c *fiber.Ctx) error {
	output, err := h.registrySvc.DesignateRepresentative(c.Context(), &registryService.DesignateRepresentativeInput{
		Email:        c.Params("email"),
		DesignatedBy: usernameFromContext(c),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Participant, "Representative designated")
}

// RemoveRepresentativeRole reverts a participant to the user role
func (h *Handler) RemoveRepresentativeRole(c *fiber.Ctx) error {
	output, err := h.registrySvc.RemoveRepresentativeRole(c.Context(), &registryService.RemoveRepresentativeRoleInput{
		Email: c.Params("email"),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Participant, "Representative role removed")
}

// ListParticipants returns all registered participants
func (h *Handler) ListParticipants(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID != "" {
		output, err := h.registrySvc.ListParticipantsBySession(c.Context(), &registryService.ListParticipantsBySessionInput{
			SessionID: sessionID,
		})
		if err != nil {
			return h.serviceError(c, err)
		}
		return respondSuccess(c, output.Participants, "")
	}

	output, err := h.registrySvc.ListParticipants(c.Context(), &registryService.ListParticipantsInput{})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Participants, "")
}
