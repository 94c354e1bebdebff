package registry

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hueylin/groupballot/internal/services/registry Service

import (
	"context"
)

// Service manages registered participants and their roles. Emails and WeChat
// handles are globally unique, compared case-insensitively.
type Service interface {
	// Register creates a new participant with role user, tagged with the
	// current session (auto-created on first registration)
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Remove deletes a participant and strips them from group member lists
	// in every session
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)

	// DesignateRepresentative grants the representative role
	DesignateRepresentative(ctx context.Context, input *DesignateRepresentativeInput) (*DesignateRepresentativeOutput, error)

	// RemoveRepresentativeRole reverts a participant to role user; the
	// caller is responsible for any group consistency implications
	RemoveRepresentativeRole(ctx context.Context, input *RemoveRepresentativeRoleInput) (*RemoveRepresentativeRoleOutput, error)

	// GetRole reports a participant's role
	GetRole(ctx context.Context, input *GetRoleInput) (*GetRoleOutput, error)

	// ListParticipants retrieves all participants
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// ListParticipantsBySession retrieves the participants registered in a session
	ListParticipantsBySession(ctx context.Context, input *ListParticipantsBySessionInput) (*ListParticipantsBySessionOutput, error)
}
