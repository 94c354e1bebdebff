package group

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hueylin/groupballot/internal/repositories/group Repository

import (
	"context"

	"github.com/hueylin/groupballot/internal/models"
)

// Repository defines the interface for group data persistence
type Repository interface {
	// SaveGroup persists a group
	SaveGroup(ctx context.Context, input *SaveGroupInput) error

	// GetGroup retrieves a group by ID
	GetGroup(ctx context.Context, input *GetGroupInput) (*models.Group, error)

	// DeleteGroup removes a group
	DeleteGroup(ctx context.Context, input *DeleteGroupInput) error

	// ListGroups retrieves all groups across all sessions
	ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error)

	// ListGroupsBySession retrieves all groups in a session
	ListGroupsBySession(ctx context.Context, input *ListGroupsBySessionInput) (*ListGroupsBySessionOutput, error)
}
