package stats

import (
	"github.com/hueylin/groupballot/internal/models"
	ballotRepo "github.com/hueylin/groupballot/internal/repositories/ballot"
	groupRepo "github.com/hueylin/groupballot/internal/repositories/group"
	participantRepo "github.com/hueylin/groupballot/internal/repositories/participant"
	sessionService "github.com/hueylin/groupballot/internal/services/session"
)

// Config holds configuration for the stats service
type Config struct {
	// Repository dependencies
	ParticipantRepo participantRepo.Repository
	GroupRepo       groupRepo.Repository
	BallotRepo      ballotRepo.Repository

	// Service dependencies
	SessionService sessionService.Service
}

// SessionStatsInput contains parameters for deriving session statistics
type SessionStatsInput struct {
	// SessionID identifies the session; empty means the current session
	SessionID string
}

// SessionStatsOutput contains the derived statistics for a session
type SessionStatsOutput struct {
	// SessionID is the session the counts describe
	SessionID string

	// Participants is the number of participants registered in the session
	Participants int

	// Representatives is the number of those holding the representative role
	Representatives int

	// Groups is the total group count in the session
	Groups int

	// GroupsByStatus breaks the group count down per lifecycle state
	GroupsByStatus map[models.GroupStatus]int

	// Drawn is the number of groups that have drawn a position
	Drawn int

	// BallotStatus is the session ballot's progress
	BallotStatus models.BallotStatus
}
