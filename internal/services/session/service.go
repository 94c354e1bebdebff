package session

import (
	"context"
	"errors"

	"github.com/hueylin/groupballot/internal/common/clock"
	"github.com/hueylin/groupballot/internal/common/uuid"
	"github.com/hueylin/groupballot/internal/models"
	sessionRepo "github.com/hueylin/groupballot/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessionRepo:   cfg.SessionRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateSession creates a new active session and makes it current
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" {
		return nil, ErrNameRequired
	}

	now := s.clock.Now()

	sessionDate := input.SessionDate
	if sessionDate.IsZero() {
		sessionDate = now
	}

	session := &models.Session{
		ID:          s.uuidGenerator.NewUUID(),
		Name:        input.Name,
		SessionDate: sessionDate,
		Active:      true,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
	}

	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	err = s.sessionRepo.SetCurrentSession(ctx, &sessionRepo.SetCurrentSessionInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{
		Session: session,
	}, nil
}

// SelectSession makes an existing open session the current one
func (s *service) SelectSession(ctx context.Context, input *SelectSessionInput) (*SelectSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if !session.Active {
		return nil, ErrSessionClosed
	}

	err = s.sessionRepo.SetCurrentSession(ctx, &sessionRepo.SetCurrentSessionInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, err
	}

	return &SelectSessionOutput{
		Session: session,
	}, nil
}

// CloseSession deactivates a session and clears the current-session pointer
// when it pointed at this session
func (s *service) CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if !session.Active {
		return nil, ErrSessionClosed
	}

	now := s.clock.Now()
	session.Active = false
	session.ClosedAt = &now

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	current, err := s.sessionRepo.GetCurrentSession(ctx, &sessionRepo.GetCurrentSessionInput{})
	if err != nil {
		return nil, err
	}

	if current.Session != nil && current.Session.ID == session.ID {
		err = s.sessionRepo.SetCurrentSession(ctx, &sessionRepo.SetCurrentSessionInput{
			SessionID: "",
		})
		if err != nil {
			return nil, err
		}
	}

	return &CloseSessionOutput{
		Session: session,
	}, nil
}

// GetCurrentSession retrieves the current session
func (s *service) GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*GetCurrentSessionOutput, error) {
	current, err := s.sessionRepo.GetCurrentSession(ctx, &sessionRepo.GetCurrentSessionInput{})
	if err != nil {
		return nil, err
	}

	if current.Session == nil {
		return nil, ErrNoActiveSession
	}

	return &GetCurrentSessionOutput{
		Session: current.Session,
	}, nil
}

// EnsureCurrentSession retrieves the current session, creating a default
// one when none exists. First registration relies on this.
func (s *service) EnsureCurrentSession(ctx context.Context, input *EnsureCurrentSessionInput) (*EnsureCurrentSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	current, err := s.sessionRepo.GetCurrentSession(ctx, &sessionRepo.GetCurrentSessionInput{})
	if err != nil {
		return nil, err
	}

	if current.Session != nil {
		return &EnsureCurrentSessionOutput{
			Session: current.Session,
		}, nil
	}

	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = "system"
	}

	created, err := s.CreateSession(ctx, &CreateSessionInput{
		Name:      DefaultSessionName,
		CreatedBy: createdBy,
	})
	if err != nil {
		return nil, err
	}

	return &EnsureCurrentSessionOutput{
		Session: created.Session,
		Created: true,
	}, nil
}

// ListSessions retrieves all sessions
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	listOutput, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{})
	if err != nil {
		return nil, err
	}

	return &ListSessionsOutput{
		Sessions: listOutput.Sessions,
	}, nil
}
