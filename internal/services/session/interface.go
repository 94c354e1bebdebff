package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hueylin/groupballot/internal/services/session Service

import (
	"context"
)

// Service manages ballot sessions and the current-session pointer. At most
// one session is current at a time; everything registered while it is
// current is tagged with its ID.
type Service interface {
	// CreateSession creates a new active session and makes it current
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// SelectSession makes an existing open session the current one
	SelectSession(ctx context.Context, input *SelectSessionInput) (*SelectSessionOutput, error)

	// CloseSession deactivates a session; sessions are never deleted
	CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error)

	// GetCurrentSession retrieves the current session
	GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*GetCurrentSessionOutput, error)

	// EnsureCurrentSession retrieves the current session, creating a
	// default one when none exists
	EnsureCurrentSession(ctx context.Context, input *EnsureCurrentSessionInput) (*EnsureCurrentSessionOutput, error)

	// ListSessions retrieves all sessions
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
}
