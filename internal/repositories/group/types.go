package group

import "github.com/hueylin/groupballot/internal/models"

// SaveGroupInput contains parameters for saving a group
type SaveGroupInput struct {
	Group *models.Group
}

// GetGroupInput contains parameters for retrieving a group
type GetGroupInput struct {
	GroupID string
}

// DeleteGroupInput contains parameters for removing a group
type DeleteGroupInput struct {
	GroupID string
}

// ListGroupsInput contains parameters for listing all groups
type ListGroupsInput struct{}

// ListGroupsOutput contains the result of listing all groups
type ListGroupsOutput struct {
	Groups []*models.Group
}

// ListGroupsBySessionInput contains parameters for listing groups in a session
type ListGroupsBySessionInput struct {
	SessionID string
}

// ListGroupsBySessionOutput contains the result of listing groups in a session
type ListGroupsBySessionOutput struct {
	Groups []*models.Group
}
