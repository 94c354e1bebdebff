package session

import "github.com/hueylin/groupballot/internal/models"

// SaveSessionInput contains parameters for saving a session
type SaveSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// ListSessionsInput contains parameters for listing sessions
type ListSessionsInput struct{}

// ListSessionsOutput contains the result of listing sessions
type ListSessionsOutput struct {
	Sessions []*models.Session
}

// GetCurrentSessionInput contains parameters for retrieving the current session
type GetCurrentSessionInput struct{}

// GetCurrentSessionOutput contains the result of retrieving the current session
type GetCurrentSessionOutput struct {
	// Session is the current session, or nil if none is set
	Session *models.Session
}

// SetCurrentSessionInput contains parameters for updating the current-session pointer
type SetCurrentSessionInput struct {
	// SessionID is the session to make current; empty clears the pointer
	SessionID string
}
