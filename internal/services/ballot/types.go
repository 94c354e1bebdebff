package ballot

import (
	"github.com/hueylin/groupballot/internal/common/clock"
	"github.com/hueylin/groupballot/internal/models"
	ballotRepo "github.com/hueylin/groupballot/internal/repositories/ballot"
	groupRepo "github.com/hueylin/groupballot/internal/repositories/group"
	"github.com/hueylin/groupballot/internal/rng"
	sessionService "github.com/hueylin/groupballot/internal/services/session"
)

// Config holds configuration for the ballot engine
type Config struct {
	// Repository dependencies
	GroupRepo  groupRepo.Repository
	BallotRepo ballotRepo.Repository

	// Service dependencies
	SessionService sessionService.Service
	Clock          clock.Clock
	Rand           rng.Rand
}

// StartBallotInput contains parameters for starting a session's ballot
type StartBallotInput struct{}

// StartBallotOutput contains the result of starting a ballot
type StartBallotOutput struct {
	// Result is the freshly created ballot result, status in-progress
	Result *models.BallotResult

	// Groups are the session's groups, now ballot-ready
	Groups []*models.Group
}

// DrawInput contains parameters for a group's position draw
type DrawInput struct {
	// GroupID identifies the drawing group
	GroupID string

	// RepresentativeEmail must match the group's representative
	RepresentativeEmail string
}

// DrawOutput contains the result of a position draw
type DrawOutput struct {
	// Position is the drawn priority position, 1..TotalGroups
	Position int

	// Completed indicates this draw finished the session's ballot
	Completed bool

	// Group is the updated group
	Group *models.Group

	// Result is the updated ballot result
	Result *models.BallotResult
}

// CanDrawInput contains parameters for the draw precondition check
type CanDrawInput struct {
	// GroupID identifies the group
	GroupID string

	// Email is the caller claiming to be the representative
	Email string
}

// CanDrawOutput contains the result of the draw precondition check
type CanDrawOutput struct {
	// CanDraw is true when a Draw call with the same arguments would be
	// accepted
	CanDraw bool

	// Reason explains a false answer
	Reason string
}

// GetResultInput contains parameters for retrieving a session's ballot result
type GetResultInput struct {
	// SessionID identifies the session; empty means the current session
	SessionID string
}

// GetResultOutput contains the result of retrieving a ballot result
type GetResultOutput struct {
	// Result is the session's ballot result; a not-started placeholder is
	// returned when no ballot was ever run
	Result *models.BallotResult
}
