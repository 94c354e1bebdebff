package stats

import (
	"context"
	"errors"

	"github.com/hueylin/groupballot/internal/models"
	ballotRepo "github.com/hueylin/groupballot/internal/repositories/ballot"
	groupRepo "github.com/hueylin/groupballot/internal/repositories/group"
	participantRepo "github.com/hueylin/groupballot/internal/repositories/participant"
	sessionService "github.com/hueylin/groupballot/internal/services/session"
)

// service implements the Service interface
type service struct {
	participantRepo participantRepo.Repository
	groupRepo       groupRepo.Repository
	ballotRepo      ballotRepo.Repository
	sessionService  sessionService.Service
}

// New creates a new stats service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ParticipantRepo == nil {
		return nil, errors.New("participant repository cannot be nil")
	}

	if cfg.GroupRepo == nil {
		return nil, errors.New("group repository cannot be nil")
	}

	if cfg.BallotRepo == nil {
		return nil, errors.New("ballot repository cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	return &service{
		participantRepo: cfg.ParticipantRepo,
		groupRepo:       cfg.GroupRepo,
		ballotRepo:      cfg.BallotRepo,
		sessionService:  cfg.SessionService,
	}, nil
}

// SessionStats derives the counts for one session
func (s *service) SessionStats(ctx context.Context, input *SessionStatsInput) (*SessionStatsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sessionID := input.SessionID
	if sessionID == "" {
		currentOutput, err := s.sessionService.GetCurrentSession(ctx, &sessionService.GetCurrentSessionInput{})
		if err != nil {
			return nil, err
		}
		sessionID = currentOutput.Session.ID
	}

	participantsOutput, err := s.participantRepo.ListParticipantsBySession(ctx, &participantRepo.ListParticipantsBySessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, err
	}

	representatives := 0
	for _, p := range participantsOutput.Participants {
		if p.Role == models.RoleRepresentative {
			representatives++
		}
	}

	groupsOutput, err := s.groupRepo.ListGroupsBySession(ctx, &groupRepo.ListGroupsBySessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, err
	}

	byStatus := make(map[models.GroupStatus]int)
	drawn := 0
	for _, g := range groupsOutput.Groups {
		byStatus[g.Status]++
		if g.BallotPosition > 0 {
			drawn++
		}
	}

	ballotStatus := models.BallotStatusNotStarted
	result, err := s.ballotRepo.GetResult(ctx, &ballotRepo.GetResultInput{
		SessionID: sessionID,
	})
	if err != nil && !errors.Is(err, ballotRepo.ErrResultNotFound) {
		return nil, err
	}
	if result != nil {
		ballotStatus = result.Status
	}

	return &SessionStatsOutput{
		SessionID:       sessionID,
		Participants:    len(participantsOutput.Participants),
		Representatives: representatives,
		Groups:          len(groupsOutput.Groups),
		GroupsByStatus:  byStatus,
		Drawn:           drawn,
		BallotStatus:    ballotStatus,
	}, nil
}
