package http

import (
	"github.com/gofiber/fiber/v2"

	groupsService "github.com/hueylin/groupballot/internal/services/groups"
)

// CreateGroupRequest is the body for POST /groups
type CreateGroupRequest struct {
	Representative string   `json:"representative" validate:"required,email"`
	Members        []string `json:"members" validate:"max=2,dive,email"`
	Name           string   `json:"name"`
}

// CreateGroup creates a pending group led by a representative
func (h *Handler) CreateGroup(c *fiber.Ctx) error {
	var req CreateGroupRequest
	if err := ValidateBody(c, &req); err != nil {
		return respondError(c, err.Error(), fiber.StatusBadRequest)
	}

	output, err := h.groupsSvc.CreateGroup(c.Context(), &groupsService.CreateGroupInput{
		Representative: req.Representative,
		Members:        req.Members,
		Name:           req.Name,
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Group, "Group created", fiber.StatusCreated)
}

// ApproveGroup moves a pending group to approved
func (h *Handler) ApproveGroup(c *fiber.Ctx) error {
	output, err := h.groupsSvc.ApproveGroup(c.Context(), &groupsService.ApproveGroupInput{
		GroupID: c.Params("id"),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Group, "Group approved")
}

// RemoveGroup deletes a group that has not entered the ballot
func (h *Handler) RemoveGroup(c *fiber.Ctx) error {
	_, err := h.groupsSvc.RemoveGroup(c.Context(), &groupsService.RemoveGroupInput{
		GroupID: c.Params("id"),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, nil, "Group removed")
}

// ListGroups returns the groups of a session, defaulting to the current one
func (h *Handler) ListGroups(c *fiber.Ctx) error {
	output, err := h.groupsSvc.ListGroupsBySession(c.Context(), &groupsService.ListGroupsBySessionInput{
		SessionID: c.Query("session_id"),
	})
	if err != nil {
		return h.serviceError(c, err)
	}

	return respondSuccess(c, output.Groups, "")
}
