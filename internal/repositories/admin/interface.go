package admin

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hueylin/groupballot/internal/repositories/admin Repository

import (
	"context"

	"github.com/hueylin/groupballot/internal/models"
)

// Repository defines the interface for admin credential persistence
type Repository interface {
	// SaveAdmin persists an admin credential record
	SaveAdmin(ctx context.Context, input *SaveAdminInput) error

	// GetAdmin retrieves an admin by username
	GetAdmin(ctx context.Context, input *GetAdminInput) (*models.Admin, error)
}
