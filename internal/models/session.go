package models

import (
	"time"
)

// Session represents one run of registration plus ballot. All participants,
// groups and ballot results created while a session is current carry its ID.
type Session struct {
	// ID is the unique identifier for this session
	ID string `json:"id"`

	// Name is the display name of the session
	Name string `json:"name"`

	// SessionDate is the calendar date the ballot is held for
	SessionDate time.Time `json:"sessionDate"`

	// Active indicates whether the session is still open
	Active bool `json:"isActive"`

	// CreatedBy is the admin username that created the session
	CreatedBy string `json:"createdBy"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"createdAt"`

	// ClosedAt is when the session was closed, nil while open
	ClosedAt *time.Time `json:"closedAt,omitempty"`
}
