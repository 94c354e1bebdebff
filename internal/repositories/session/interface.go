package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hueylin/groupballot/internal/repositories/session Repository

import (
	"context"

	"github.com/hueylin/groupballot/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// SaveSession persists a session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// ListSessions retrieves all sessions
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// GetCurrentSession retrieves the current session, nil when none is set
	GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*GetCurrentSessionOutput, error)

	// SetCurrentSession points the current-session pointer at a session;
	// an empty session ID clears the pointer
	SetCurrentSession(ctx context.Context, input *SetCurrentSessionInput) error
}
