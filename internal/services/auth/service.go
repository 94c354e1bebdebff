package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/hueylin/groupballot/internal/common/clock"
	"github.com/hueylin/groupballot/internal/models"
	adminRepo "github.com/hueylin/groupballot/internal/repositories/admin"
)

// service implements the Service interface
type service struct {
	adminRepo adminRepo.Repository
	clock     clock.Clock
	jwtSecret []byte
	tokenTTL  time.Duration
}

// New creates a new auth service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.AdminRepo == nil {
		return nil, ErrNilAdminRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}

	tokenTTL := cfg.TokenTTL
	if tokenTTL == 0 {
		tokenTTL = 24 * time.Hour
	}

	return &service{
		adminRepo: cfg.AdminRepo,
		clock:     cfg.Clock,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  tokenTTL,
	}, nil
}

// CreateAdmin creates an admin account with a bcrypt-hashed password
func (s *service) CreateAdmin(ctx context.Context, input *CreateAdminInput) (*CreateAdminOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	username := strings.ToLower(strings.TrimSpace(input.Username))
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}

	if len(input.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	_, err := s.adminRepo.GetAdmin(ctx, &adminRepo.GetAdminInput{
		Username: username,
	})
	if err == nil {
		return nil, ErrAdminExists
	}
	if !errors.Is(err, adminRepo.ErrAdminNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hashed),
		CreatedAt:    s.clock.Now(),
		CreatedBy:    input.CreatedBy,
	}

	err = s.adminRepo.SaveAdmin(ctx, &adminRepo.SaveAdminInput{
		Admin: admin,
	})
	if err != nil {
		return nil, err
	}

	return &CreateAdminOutput{
		Admin: admin,
	}, nil
}

// Login verifies credentials, stamps last-login and issues a JWT
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	username := strings.ToLower(strings.TrimSpace(input.Username))
	if username == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.adminRepo.GetAdmin(ctx, &adminRepo.GetAdminInput{
		Username: username,
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.clock.Now()
	admin.LastLogin = &now
	err = s.adminRepo.SaveAdmin(ctx, &adminRepo.SaveAdminInput{
		Admin: admin,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.generateJWT(admin, now)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Token: token,
		Admin: admin,
	}, nil
}

// EnsureAdmin creates an admin account unless the username is taken
func (s *service) EnsureAdmin(ctx context.Context, input *CreateAdminInput) (*CreateAdminOutput, error) {
	output, err := s.CreateAdmin(ctx, input)
	if err != nil {
		if errors.Is(err, ErrAdminExists) {
			admin, getErr := s.adminRepo.GetAdmin(ctx, &adminRepo.GetAdminInput{
				Username: strings.ToLower(strings.TrimSpace(input.Username)),
			})
			if getErr != nil {
				return nil, getErr
			}
			return &CreateAdminOutput{Admin: admin}, nil
		}
		return nil, err
	}

	return output, nil
}

func (s *service) generateJWT(admin *models.Admin, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"username": admin.Username,
		"role":     "admin",
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
