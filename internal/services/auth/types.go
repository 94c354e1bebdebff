package auth

import (
	"time"

	"github.com/hueylin/groupballot/internal/common/clock"
	"github.com/hueylin/groupballot/internal/models"
	adminRepo "github.com/hueylin/groupballot/internal/repositories/admin"
)

// Config holds configuration for the auth service
type Config struct {
	// Repository dependencies
	AdminRepo adminRepo.Repository

	// Service dependencies
	Clock clock.Clock

	// JWTSecret signs issued tokens
	JWTSecret string

	// TokenTTL bounds issued token lifetime; defaults to 24h
	TokenTTL time.Duration
}

// CreateAdminInput contains parameters for creating an admin account
type CreateAdminInput struct {
	// Username is the login name for the new account
	Username string

	// Password is the plaintext password, hashed before storage
	Password string

	// CreatedBy is the username creating the account
	CreatedBy string
}

// CreateAdminOutput contains the result of creating an admin account
type CreateAdminOutput struct {
	Admin *models.Admin
}

// LoginInput contains parameters for an admin login
type LoginInput struct {
	// Username is the admin's login name
	Username string

	// Password is the plaintext password to verify
	Password string
}

// LoginOutput contains the result of an admin login
type LoginOutput struct {
	// Token is a signed JWT carrying the admin identity
	Token string

	// Admin is the authenticated account
	Admin *models.Admin
}
