package registry

import (
	"github.com/hueylin/groupballot/internal/common/clock"
	"github.com/hueylin/groupballot/internal/models"
	groupRepo "github.com/hueylin/groupballot/internal/repositories/group"
	participantRepo "github.com/hueylin/groupballot/internal/repositories/participant"
	sessionService "github.com/hueylin/groupballot/internal/services/session"
)

// Config holds configuration for the participant registry service
type Config struct {
	// Repository dependencies
	ParticipantRepo participantRepo.Repository
	GroupRepo       groupRepo.Repository

	// Service dependencies
	SessionService sessionService.Service
	Clock          clock.Clock
}

// RegisterInput contains parameters for registering a participant
type RegisterInput struct {
	// Email is the participant's email address
	Email string

	// WechatHandle is the participant's WeChat contact handle
	WechatHandle string

	// AddedBy records whether the registration is self-service or admin-made
	AddedBy models.AddedBy
}

// RegisterOutput contains the result of registering a participant
type RegisterOutput struct {
	// Participant is the newly registered participant
	Participant *models.Participant

	// SessionCreated indicates a default session was auto-created
	SessionCreated bool
}

// RemoveInput contains parameters for removing a participant
type RemoveInput struct {
	// Email identifies the participant to remove
	Email string
}

// RemoveOutput contains the result of removing a participant
type RemoveOutput struct {
	// Removed is false when no such participant existed
	Removed bool

	// GroupsDeleted lists IDs of groups deleted by the removal cascade
	GroupsDeleted []string
}

// DesignateRepresentativeInput contains parameters for granting the
// representative role
type DesignateRepresentativeInput struct {
	// Email identifies the participant
	Email string

	// DesignatedBy is the admin granting the role
	DesignatedBy string
}

// DesignateRepresentativeOutput contains the result of granting the role
type DesignateRepresentativeOutput struct {
	Participant *models.Participant
}

// RemoveRepresentativeRoleInput contains parameters for revoking the
// representative role
type RemoveRepresentativeRoleInput struct {
	// Email identifies the participant
	Email string
}

// RemoveRepresentativeRoleOutput contains the result of revoking the role
type RemoveRepresentativeRoleOutput struct {
	Participant *models.Participant
}

// GetRoleInput contains parameters for querying a participant's role
type GetRoleInput struct {
	// Email identifies the participant
	Email string
}

// GetRoleOutput contains the result of querying a participant's role
type GetRoleOutput struct {
	// Registered is false when no such participant exists
	Registered bool

	// Role is the participant's role, empty when unregistered
	Role models.ParticipantRole
}

// ListParticipantsInput contains parameters for listing all participants
type ListParticipantsInput struct{}

// ListParticipantsOutput contains the result of listing all participants
type ListParticipantsOutput struct {
	Participants []*models.Participant
}

// ListParticipantsBySessionInput contains parameters for listing a session's
// participants
type ListParticipantsBySessionInput struct {
	SessionID string
}

// ListParticipantsBySessionOutput contains the result of listing a session's
// participants
type ListParticipantsBySessionOutput struct {
	Participants []*models.Participant
}
