package ballot

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hueylin/groupballot/internal/services/ballot Service

import (
	"context"
)

// Service runs the two-phase ballot draw. Phase one freezes the approved
// group set and marks every group ballot-ready; phase two lets each group's
// representative draw one unique position. Once the last group draws, the
// session's groups lock.
type Service interface {
	// StartBallot begins the current session's ballot
	StartBallot(ctx context.Context, input *StartBallotInput) (*StartBallotOutput, error)

	// Draw assigns a uniformly random free position to a group
	Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error)

	// CanDraw mirrors Draw's preconditions without mutating anything
	CanDraw(ctx context.Context, input *CanDrawInput) (*CanDrawOutput, error)

	// GetResult retrieves a session's ballot result
	GetResult(ctx context.Context, input *GetResultInput) (*GetResultOutput, error)
}
