package groups

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hueylin/groupballot/internal/common/clock"
	"github.com/hueylin/groupballot/internal/common/uuid"
	"github.com/hueylin/groupballot/internal/models"
	groupRepo "github.com/hueylin/groupballot/internal/repositories/group"
	participantRepo "github.com/hueylin/groupballot/internal/repositories/participant"
	"github.com/hueylin/groupballot/internal/rng"
	sessionService "github.com/hueylin/groupballot/internal/services/session"
)

// service implements the Service interface
type service struct {
	groupRepo       groupRepo.Repository
	participantRepo participantRepo.Repository
	sessionService  sessionService.Service
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	rand            rng.Rand
}

// New creates a new group registry service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GroupRepo == nil {
		return nil, ErrNilGroupRepo
	}

	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}

	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Rand == nil {
		return nil, ErrNilRand
	}

	return &service{
		groupRepo:       cfg.GroupRepo,
		participantRepo: cfg.ParticipantRepo,
		sessionService:  cfg.SessionService,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		rand:            cfg.Rand,
	}, nil
}

// CreateGroup validates composition and creates a pending group in the
// current session. Every check runs before the first write, so a failure
// leaves no partial state behind.
func (s *service) CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	currentOutput, err := s.sessionService.GetCurrentSession(ctx, &sessionService.GetCurrentSessionInput{})
	if err != nil {
		return nil, err
	}
	session := currentOutput.Session

	repEmail := strings.ToLower(strings.TrimSpace(input.Representative))

	// Representative must be registered and hold the role
	rep, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		Email: repEmail,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrRepresentativeNotRegistered
		}
		return nil, err
	}

	if rep.Role != models.RoleRepresentative {
		return nil, ErrNotRepresentative
	}

	// The representative counts toward the cap
	if len(input.Members)+1 > MaxGroupSize {
		return nil, ErrGroupTooLarge
	}

	members := make([]string, 0, len(input.Members))
	seen := map[string]bool{repEmail: true}
	for _, raw := range input.Members {
		member := strings.ToLower(strings.TrimSpace(raw))
		if seen[member] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMember, member)
		}
		seen[member] = true

		_, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
			Email: member,
		})
		if err != nil {
			if errors.Is(err, participantRepo.ErrParticipantNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrMemberNotRegistered, member)
			}
			return nil, err
		}

		members = append(members, member)
	}

	groupsOutput, err := s.groupRepo.ListGroupsBySession(ctx, &groupRepo.ListGroupsBySessionInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, err
	}

	usedNames := make(map[string]bool, len(groupsOutput.Groups))
	for _, g := range groupsOutput.Groups {
		usedNames[strings.ToLower(g.Name)] = true

		if s.groupContains(g, repEmail) {
			return nil, ErrRepresentativeInGroup
		}

		for _, member := range members {
			if s.groupContains(g, member) {
				return nil, fmt.Errorf("%w: %s", ErrMemberInGroup, member)
			}
		}
	}

	name := strings.TrimSpace(input.Name)
	if name != "" {
		if usedNames[strings.ToLower(name)] {
			return nil, ErrGroupNameTaken
		}
	} else {
		name = s.pickName(usedNames)
	}

	group := &models.Group{
		ID:             s.uuidGenerator.NewUUID(),
		SessionID:      session.ID,
		Name:           name,
		Representative: repEmail,
		Members:        members,
		Status:         models.GroupStatusPending,
		CreatedAt:      s.clock.Now(),
	}

	err = s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{
		Group: group,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGroupOutput{
		Group: group,
	}, nil
}

// ApproveGroup moves a pending group to approved
func (s *service) ApproveGroup(ctx context.Context, input *ApproveGroupInput) (*ApproveGroupOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	group, err := s.getGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	if group.Status != models.GroupStatusPending {
		return nil, ErrInvalidGroupState
	}

	now := s.clock.Now()
	group.Status = models.GroupStatusApproved
	group.ValidatedAt = &now

	err = s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{
		Group: group,
	})
	if err != nil {
		return nil, err
	}

	return &ApproveGroupOutput{
		Group: group,
	}, nil
}

// RemoveGroup deletes a pending or approved group. Groups that entered the
// ballot stay put.
func (s *service) RemoveGroup(ctx context.Context, input *RemoveGroupInput) (*RemoveGroupOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	group, err := s.getGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	if group.Status != models.GroupStatusPending && group.Status != models.GroupStatusApproved {
		return nil, ErrInvalidGroupState
	}

	err = s.groupRepo.DeleteGroup(ctx, &groupRepo.DeleteGroupInput{
		GroupID: group.ID,
	})
	if err != nil {
		return nil, err
	}

	return &RemoveGroupOutput{
		Removed: true,
	}, nil
}

// GetGroup retrieves a group by ID
func (s *service) GetGroup(ctx context.Context, input *GetGroupInput) (*GetGroupOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	group, err := s.getGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	return &GetGroupOutput{
		Group: group,
	}, nil
}

// ListGroupsBySession retrieves the groups in a session, defaulting to the
// current one
func (s *service) ListGroupsBySession(ctx context.Context, input *ListGroupsBySessionInput) (*ListGroupsBySessionOutput, error) {
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

	groupsOutput, err := s.groupRepo.ListGroupsBySession(ctx, &groupRepo.ListGroupsBySessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, err
	}

	return &ListGroupsBySessionOutput{
		Groups: groupsOutput.Groups,
	}, nil
}

func (s *service) getGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := s.groupRepo.GetGroup(ctx, &groupRepo.GetGroupInput{
		GroupID: groupID,
	})
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	return group, nil
}

func (s *service) groupContains(g *models.Group, email string) bool {
	if strings.EqualFold(g.Representative, email) {
		return true
	}
	for _, member := range g.Members {
		if strings.EqualFold(member, email) {
			return true
		}
	}
	return false
}
