package registry

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/hueylin/groupballot/internal/common/clock"
	"github.com/hueylin/groupballot/internal/models"
	groupRepo "github.com/hueylin/groupballot/internal/repositories/group"
	participantRepo "github.com/hueylin/groupballot/internal/repositories/participant"
	sessionService "github.com/hueylin/groupballot/internal/services/session"
)

// RFC-light: local@domain.tld is enough for this system
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// service implements the Service interface
type service struct {
	participantRepo participantRepo.Repository
	groupRepo       groupRepo.Repository
	sessionService  sessionService.Service
	clock           clock.Clock
}

// New creates a new participant registry service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}

	if cfg.GroupRepo == nil {
		return nil, ErrNilGroupRepo
	}

	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		participantRepo: cfg.ParticipantRepo,
		groupRepo:       cfg.GroupRepo,
		sessionService:  cfg.SessionService,
		clock:           cfg.Clock,
	}, nil
}

// Register creates a new participant with role user
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	handle := strings.TrimSpace(input.WechatHandle)

	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if handle == "" {
		return nil, ErrHandleRequired
	}

	// Both uniqueness checks run before any write
	_, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Email: email,
	})
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, participantRepo.ErrParticipantNotFound) {
		return nil, err
	}

	_, err = s.participantRepo.GetParticipantByWechat(ctx, &participantRepo.GetParticipantByWechatInput{
		WechatHandle: handle,
	})
	if err == nil {
		return nil, ErrDuplicateWechatHandle
	}
	if !errors.Is(err, participantRepo.ErrParticipantNotFound) {
		return nil, err
	}

	// First registration lazily creates the default session
	sessionOutput, err := s.sessionService.EnsureCurrentSession(ctx, &sessionService.EnsureCurrentSessionInput{
		CreatedBy: "system",
	})
	if err != nil {
		return nil, err
	}

	addedBy := input.AddedBy
	if addedBy == "" {
		addedBy = models.AddedBySelf
	}

	participant := &models.Participant{
		Email:        email,
		WechatHandle: handle,
		RegisteredAt: s.clock.Now(),
		AddedBy:      addedBy,
		Role:         models.RoleUser,
		SessionID:    sessionOutput.Session.ID,
	}

	err = s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: participant,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterOutput{
		Participant:    participant,
		SessionCreated: sessionOutput.Created,
	}, nil
}

// Remove deletes a participant and strips their email from every group's
// member list in every session. A group is deleted only when the removed
// email was its representative and no members remain; stripping a member
// merely shrinks the group.
func (s *service) Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	_, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return &RemoveOutput{Removed: false}, nil
		}
		return nil, err
	}

	err = s.participantRepo.DeleteParticipant(ctx, &participantRepo.DeleteParticipantInput{
		Email: input.Email,
	})
	if err != nil {
		return nil, err
	}

	groupsOutput, err := s.groupRepo.ListGroups(ctx, &groupRepo.ListGroupsInput{})
	if err != nil {
		return nil, err
	}

	var deleted []string
	for _, g := range groupsOutput.Groups {
		changed := false
		members := make([]string, 0, len(g.Members))
		for _, member := range g.Members {
			if strings.EqualFold(member, input.Email) {
				changed = true
				continue
			}
			members = append(members, member)
		}

		if strings.EqualFold(g.Representative, input.Email) && len(members) == 0 {
			err = s.groupRepo.DeleteGroup(ctx, &groupRepo.DeleteGroupInput{
				GroupID: g.ID,
			})
			if err != nil {
				return nil, err
			}
			deleted = append(deleted, g.ID)
			continue
		}

		if changed {
			g.Members = members
			err = s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{
				Group: g,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	return &RemoveOutput{
		Removed:       true,
		GroupsDeleted: deleted,
	}, nil
}

// DesignateRepresentative grants the representative role
func (s *service) DesignateRepresentative(ctx context.Context, input *DesignateRepresentativeInput) (*DesignateRepresentativeOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	participant, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	// Group membership only constrains designation within the current
	// session; without one there is nothing to conflict with
	currentOutput, err := s.sessionService.GetCurrentSession(ctx, &sessionService.GetCurrentSessionInput{})
	if err != nil && !errors.Is(err, sessionService.ErrNoActiveSession) {
		return nil, err
	}

	if currentOutput != nil {
		groupsOutput, err := s.groupRepo.ListGroupsBySession(ctx, &groupRepo.ListGroupsBySessionInput{
			SessionID: currentOutput.Session.ID,
		})
		if err != nil {
			return nil, err
		}

		for _, g := range groupsOutput.Groups {
			if strings.EqualFold(g.Representative, participant.Email) {
				// Already leading this group, nothing to change
				return &DesignateRepresentativeOutput{
					Participant: participant,
				}, nil
			}

			for _, member := range g.Members {
				if strings.EqualFold(member, participant.Email) {
					return nil, ErrRoleConflict
				}
			}
		}
	}

	now := s.clock.Now()
	participant.Role = models.RoleRepresentative
	participant.DesignatedBy = input.DesignatedBy
	participant.DesignatedAt = &now

	err = s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: participant,
	})
	if err != nil {
		return nil, err
	}

	return &DesignateRepresentativeOutput{
		Participant: participant,
	}, nil
}

// RemoveRepresentativeRole reverts a participant to role user
func (s *service) RemoveRepresentativeRole(ctx context.Context, input *RemoveRepresentativeRoleInput) (*RemoveRepresentativeRoleOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	participant, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	participant.Role = models.RoleUser
	participant.DesignatedBy = ""
	participant.DesignatedAt = nil

	err = s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: participant,
	})
	if err != nil {
		return nil, err
	}

	return &RemoveRepresentativeRoleOutput{
		Participant: participant,
	}, nil
}

// GetRole reports a participant's role
func (s *service) GetRole(ctx context.Context, input *GetRoleInput) (*GetRoleOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	participant, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return &GetRoleOutput{Registered: false}, nil
		}
		return nil, err
	}

	return &GetRoleOutput{
		Registered: true,
		Role:       participant.Role,
	}, nil
}

// ListParticipants retrieves all participants
func (s *service) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	listOutput, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{})
	if err != nil {
		return nil, err
	}

	return &ListParticipantsOutput{
		Participants: listOutput.Participants,
	}, nil
}

// ListParticipantsBySession retrieves the participants registered in a session
func (s *service) ListParticipantsBySession(ctx context.Context, input *ListParticipantsBySessionInput) (*ListParticipantsBySessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	listOutput, err := s.participantRepo.ListParticipantsBySession(ctx, &participantRepo.ListParticipantsBySessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return &ListParticipantsBySessionOutput{
		Participants: listOutput.Participants,
	}, nil
}
