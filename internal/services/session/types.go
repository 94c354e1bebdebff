package session

import (
	"time"

	"github.com/hueylin/groupballot/internal/common/clock"
	"github.com/hueylin/groupballot/internal/common/uuid"
	"github.com/hueylin/groupballot/internal/models"
	sessionRepo "github.com/hueylin/groupballot/internal/repositories/session"
)

// DefaultSessionName is used when a session is auto-created on first
// registration
const DefaultSessionName = "Default Session"

// Config holds configuration for the session service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateSessionInput contains parameters for creating a new session
type CreateSessionInput struct {
	// Name is the display name for the session
	Name string

	// SessionDate is the calendar date the ballot is held for
	SessionDate time.Time

	// CreatedBy is the admin username creating the session
	CreatedBy string
}

// CreateSessionOutput contains the result of creating a new session
type CreateSessionOutput struct {
	// Session is the newly created session, now current
	Session *models.Session
}

// SelectSessionInput contains parameters for selecting the current session
type SelectSessionInput struct {
	// SessionID is the session to make current
	SessionID string
}

// SelectSessionOutput contains the result of selecting a session
type SelectSessionOutput struct {
	Session *models.Session
}

// CloseSessionInput contains parameters for closing a session
type CloseSessionInput struct {
	// SessionID is the session to close
	SessionID string
}

// CloseSessionOutput contains the result of closing a session
type CloseSessionOutput struct {
	Session *models.Session
}

// GetCurrentSessionInput contains parameters for retrieving the current session
type GetCurrentSessionInput struct{}

// GetCurrentSessionOutput contains the result of retrieving the current session
type GetCurrentSessionOutput struct {
	Session *models.Session
}

// EnsureCurrentSessionInput contains parameters for lazily resolving the
// current session
type EnsureCurrentSessionInput struct {
	// CreatedBy is recorded on the auto-created default session
	CreatedBy string
}

// EnsureCurrentSessionOutput contains the result of resolving the current session
type EnsureCurrentSessionOutput struct {
	// Session is the current session, auto-created when none existed
	Session *models.Session

	// Created indicates a default session was created by this call
	Created bool
}

// ListSessionsInput contains parameters for listing sessions
type ListSessionsInput struct{}

// ListSessionsOutput contains the result of listing sessions
type ListSessionsOutput struct {
	Sessions []*models.Session
}
