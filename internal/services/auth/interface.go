package auth

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hueylin/groupballot/internal/services/auth Service

import (
	"context"
)

// Service is the credential checker gating admin-only operations. It is a
// boolean gate, not a hardened credential store.
type Service interface {
	// CreateAdmin creates an admin account with a bcrypt-hashed password
	CreateAdmin(ctx context.Context, input *CreateAdminInput) (*CreateAdminOutput, error)

	// Login verifies credentials, stamps last-login and issues a JWT
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// EnsureAdmin creates an admin account unless the username is taken;
	// used to bootstrap the first account at startup
	EnsureAdmin(ctx context.Context, input *CreateAdminInput) (*CreateAdminOutput, error)
}
