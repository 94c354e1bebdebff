package groups

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hueylin/groupballot/internal/services/groups Service

import (
	"context"
)

// Service manages group composition and the group lifecycle up to admin
// approval. The ballot engine owns the later transitions.
type Service interface {
	// CreateGroup validates composition and creates a pending group in the
	// current session
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error)

	// ApproveGroup moves a pending group to approved
	ApproveGroup(ctx context.Context, input *ApproveGroupInput) (*ApproveGroupOutput, error)

	// RemoveGroup deletes a pending or approved group
	RemoveGroup(ctx context.Context, input *RemoveGroupInput) (*RemoveGroupOutput, error)

	// GetGroup retrieves a group by ID
	GetGroup(ctx context.Context, input *GetGroupInput) (*GetGroupOutput, error)

	// ListGroupsBySession retrieves the groups in a session
	ListGroupsBySession(ctx context.Context, input *ListGroupsBySessionInput) (*ListGroupsBySessionOutput, error)
}
