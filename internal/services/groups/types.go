package groups

import (
	"github.com/hueylin/groupballot/internal/common/clock"
	"github.com/hueylin/groupballot/internal/common/uuid"
	"github.com/hueylin/groupballot/internal/models"
	groupRepo "github.com/hueylin/groupballot/internal/repositories/group"
	participantRepo "github.com/hueylin/groupballot/internal/repositories/participant"
	"github.com/hueylin/groupballot/internal/rng"
	sessionService "github.com/hueylin/groupballot/internal/services/session"
)

// MaxGroupSize is the head count cap including the representative
const MaxGroupSize = 3

// Config holds configuration for the group registry service
type Config struct {
	// Repository dependencies
	GroupRepo       groupRepo.Repository
	ParticipantRepo participantRepo.Repository

	// Service dependencies
	SessionService sessionService.Service
	Clock          clock.Clock
	UUIDGenerator  uuid.UUID
	Rand           rng.Rand
}

// CreateGroupInput contains parameters for creating a group
type CreateGroupInput struct {
	// Representative is the email of the participant leading the group
	Representative string

	// Members are the emails of the non-representative members, at most two
	Members []string

	// Name is the optional group name; one is drawn from the name pool
	// when omitted
	Name string
}

// CreateGroupOutput contains the result of creating a group
type CreateGroupOutput struct {
	// Group is the newly created group in pending status
	Group *models.Group
}

// ApproveGroupInput contains parameters for approving a group
type ApproveGroupInput struct {
	// GroupID identifies the group to approve
	GroupID string
}

// ApproveGroupOutput contains the result of approving a group
type ApproveGroupOutput struct {
	Group *models.Group
}

// RemoveGroupInput contains parameters for removing a group
type RemoveGroupInput struct {
	// GroupID identifies the group to remove
	GroupID string
}

// RemoveGroupOutput contains the result of removing a group
type RemoveGroupOutput struct {
	Removed bool
}

// GetGroupInput contains parameters for retrieving a group
type GetGroupInput struct {
	GroupID string
}

// GetGroupOutput contains the result of retrieving a group
type GetGroupOutput struct {
	Group *models.Group
}

// ListGroupsBySessionInput contains parameters for listing a session's groups
type ListGroupsBySessionInput struct {
	// SessionID identifies the session; empty means the current session
	SessionID string
}

// ListGroupsBySessionOutput contains the result of listing a session's groups
type ListGroupsBySessionOutput struct {
	Groups []*models.Group
}
