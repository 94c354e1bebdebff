package models

import (
	"time"
)

// GroupStatus represents the current state of a group
type GroupStatus string

const (
	// GroupStatusPending indicates a group is waiting for admin approval
	GroupStatusPending GroupStatus = "pending"

	// GroupStatusApproved indicates an admin has approved the group
	GroupStatusApproved GroupStatus = "approved"

	// GroupStatusBallotReady indicates the ballot has started and the group
	// is waiting for its representative to draw
	GroupStatusBallotReady GroupStatus = "ballot-ready"

	// GroupStatusBallotDrawn indicates the group has drawn its position
	GroupStatusBallotDrawn GroupStatus = "ballot-drawn"

	// GroupStatusLocked indicates every group in the session has drawn;
	// this is the terminal state
	GroupStatusLocked GroupStatus = "locked"
)

// Group represents a registered group within a session. The representative
// counts toward the three-person cap, so len(Members)+1 is the group size.
type Group struct {
	// ID is the unique identifier for the group
	ID string `json:"id"`

	// SessionID is the session the group belongs to
	SessionID string `json:"sessionId"`

	// Name is the group's display name, unique within a session
	Name string `json:"name"`

	// Representative is the email of the participant leading the group
	Representative string `json:"representative"`

	// Members are the emails of the non-representative members
	Members []string `json:"members"`

	// Status is the current lifecycle state of the group
	Status GroupStatus `json:"status"`

	// CreatedAt is when the group was created
	CreatedAt time.Time `json:"createdAt"`

	// ValidatedAt is when an admin approved the group
	ValidatedAt *time.Time `json:"validatedAt,omitempty"`

	// BallotPosition is the drawn priority position, zero until drawn
	BallotPosition int `json:"ballotPosition,omitempty"`

	// BallotDrawnAt is when the group drew its position
	BallotDrawnAt *time.Time `json:"ballotDrawnAt,omitempty"`
}

// Size returns the total head count including the representative.
func (g *Group) Size() int {
	return len(g.Members) + 1
}
