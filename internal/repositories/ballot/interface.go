package ballot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hueylin/groupballot/internal/repositories/ballot Repository

import (
	"context"

	"github.com/hueylin/groupballot/internal/models"
)

// Repository defines the interface for ballot result persistence. One result
// is stored per session; saving replaces whatever was there.
type Repository interface {
	// SaveResult persists a ballot result
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves the ballot result for a session
	GetResult(ctx context.Context, input *GetResultInput) (*models.BallotResult, error)
}
