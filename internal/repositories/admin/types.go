package admin

import "github.com/hueylin/groupballot/internal/models"

// SaveAdminInput contains parameters for saving an admin record
type SaveAdminInput struct {
	Admin *models.Admin
}

// GetAdminInput contains parameters for retrieving an admin record
type GetAdminInput struct {
	Username string
}
