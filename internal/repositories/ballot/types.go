package ballot

import "github.com/hueylin/groupballot/internal/models"

// SaveResultInput contains parameters for saving a ballot result
type SaveResultInput struct {
	Result *models.BallotResult
}

// GetResultInput contains parameters for retrieving a session's ballot result
type GetResultInput struct {
	SessionID string
}
