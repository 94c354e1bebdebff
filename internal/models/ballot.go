package models

import (
	"time"
)

// BallotStatus represents the progress of a session's ballot
type BallotStatus string

const (
	// BallotStatusNotStarted indicates no ballot has been started
	BallotStatusNotStarted BallotStatus = "not-started"

	// BallotStatusInProgress indicates the ballot has started and groups
	// are still drawing
	BallotStatusInProgress BallotStatus = "in-progress"

	// BallotStatusCompleted indicates every group has drawn its position
	BallotStatusCompleted BallotStatus = "completed"
)

// BallotEntry records one group's draw
type BallotEntry struct {
	// GroupID is the group that drew
	GroupID string `json:"groupId"`

	// Position is the drawn priority position, 1..TotalGroups
	Position int `json:"position"`

	// DrawnAt is when the position was drawn
	DrawnAt time.Time `json:"drawnAt"`
}

// BallotResult is the aggregate outcome of a session's ballot. At most one
// result exists per session; starting a new ballot replaces it.
type BallotResult struct {
	// SessionID is the session the result belongs to
	SessionID string `json:"sessionId"`

	// Entries accumulate one per group as each representative draws
	Entries []BallotEntry `json:"entries"`

	// TotalGroups is the number of groups frozen in at ballot start
	TotalGroups int `json:"totalGroups"`

	// TotalParticipants is the member head count at ballot start,
	// representatives excluded
	TotalParticipants int `json:"totalParticipants"`

	// Status is the ballot's progress
	Status BallotStatus `json:"ballotStatus"`

	// StartedAt is when the ballot was started
	StartedAt *time.Time `json:"startedAt,omitempty"`

	// CompletedAt is when the last group drew
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
