package ballot

import (
	"context"
	"errors"
	"strings"

	"github.com/hueylin/groupballot/internal/common/clock"
	"github.com/hueylin/groupballot/internal/models"
	ballotRepo "github.com/hueylin/groupballot/internal/repositories/ballot"
	groupRepo "github.com/hueylin/groupballot/internal/repositories/group"
	"github.com/hueylin/groupballot/internal/rng"
	sessionService "github.com/hueylin/groupballot/internal/services/session"
)

// service implements the Service interface
type service struct {
	groupRepo      groupRepo.Repository
	ballotRepo     ballotRepo.Repository
	sessionService sessionService.Service
	clock          clock.Clock
	rand           rng.Rand
}

// New creates a new ballot engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GroupRepo == nil {
		return nil, ErrNilGroupRepo
	}

	if cfg.BallotRepo == nil {
		return nil, ErrNilBallotRepo
	}

	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Rand == nil {
		return nil, ErrNilRand
	}

	return &service{
		groupRepo:      cfg.GroupRepo,
		ballotRepo:     cfg.BallotRepo,
		sessionService: cfg.SessionService,
		clock:          cfg.Clock,
		rand:           cfg.Rand,
	}, nil
}

// StartBallot begins the current session's ballot. Every approved group
// becomes ballot-ready and a fresh result replaces whatever the session had
// before. The approved set is frozen here; TotalGroups is the position
// space for the whole ballot.
func (s *service) StartBallot(ctx context.Context, input *StartBallotInput) (*StartBallotOutput, error) {
	currentOutput, err := s.sessionService.GetCurrentSession(ctx, &sessionService.GetCurrentSessionInput{})
	if err != nil {
		if errors.Is(err, sessionService.ErrNoActiveSession) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}
	session := currentOutput.Session

	groupsOutput, err := s.groupRepo.ListGroupsBySession(ctx, &groupRepo.ListGroupsBySessionInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, err
	}

	approved := make([]*models.Group, 0, len(groupsOutput.Groups))
	totalParticipants := 0
	for _, g := range groupsOutput.Groups {
		if g.Status == models.GroupStatusApproved {
			approved = append(approved, g)
			totalParticipants += len(g.Members)
		}
	}

	if len(approved) == 0 {
		return nil, ErrNoApprovedGroups
	}

	for _, g := range approved {
		g.Status = models.GroupStatusBallotReady
		err = s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{
			Group: g,
		})
		if err != nil {
			return nil, err
		}
	}

	now := s.clock.Now()
	result := &models.BallotResult{
		SessionID:         session.ID,
		Entries:           []models.BallotEntry{},
		TotalGroups:       len(approved),
		TotalParticipants: totalParticipants,
		Status:            models.BallotStatusInProgress,
		StartedAt:         &now,
	}

	err = s.ballotRepo.SaveResult(ctx, &ballotRepo.SaveResultInput{
		Result: result,
	})
	if err != nil {
		return nil, err
	}

	return &StartBallotOutput{
		Result: result,
		Groups: approved,
	}, nil
}

// Draw assigns a uniformly random free position to a group. The position
// space is 1..N for N groups in the ballot; each draw removes the drawn
// position, so the kth group picks uniformly among N-k+1 leftovers and the
// final assignment is a bijection onto 1..N.
func (s *service) Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	group, err := s.groupRepo.GetGroup(ctx, &groupRepo.GetGroupInput{
		GroupID: input.GroupID,
	})
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	if !strings.EqualFold(group.Representative, strings.TrimSpace(input.RepresentativeEmail)) {
		return nil, ErrNotRepresentative
	}

	if group.Status != models.GroupStatusBallotReady {
		return nil, ErrGroupNotReady
	}

	result, err := s.ballotRepo.GetResult(ctx, &ballotRepo.GetResultInput{
		SessionID: group.SessionID,
	})
	if err != nil {
		if errors.Is(err, ballotRepo.ErrResultNotFound) {
			return nil, ErrBallotNotActive
		}
		return nil, err
	}

	if result.Status != models.BallotStatusInProgress {
		return nil, ErrBallotNotActive
	}

	groupsOutput, err := s.groupRepo.ListGroupsBySession(ctx, &groupRepo.ListGroupsBySessionInput{
		SessionID: group.SessionID,
	})
	if err != nil {
		return nil, err
	}

	// Position space is the live count of groups in the ballot; taken
	// positions come off it
	total := 0
	taken := make(map[int]bool)
	for _, g := range groupsOutput.Groups {
		switch g.Status {
		case models.GroupStatusBallotReady:
			total++
		case models.GroupStatusBallotDrawn:
			total++
			taken[g.BallotPosition] = true
		}
	}

	available := make([]int, 0, total)
	for pos := 1; pos <= total; pos++ {
		if !taken[pos] {
			available = append(available, pos)
		}
	}

	// Unreachable while the bookkeeping holds, but never swallowed
	if len(available) == 0 {
		return nil, ErrNoPositionsAvailable
	}

	position := available[s.rand.Intn(len(available))]
	now := s.clock.Now()

	group.Status = models.GroupStatusBallotDrawn
	group.BallotPosition = position
	group.BallotDrawnAt = &now

	err = s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{
		Group: group,
	})
	if err != nil {
		return nil, err
	}

	result.Entries = append(result.Entries, models.BallotEntry{
		GroupID:  group.ID,
		Position: position,
		DrawnAt:  now,
	})

	// Completion check: no group in the session may still be waiting
	remaining := 0
	for _, g := range groupsOutput.Groups {
		if g.ID == group.ID {
			continue
		}
		if g.Status == models.GroupStatusBallotReady {
			remaining++
		}
	}

	completed := remaining == 0
	if completed {
		result.Status = models.BallotStatusCompleted
		result.CompletedAt = &now

		group.Status = models.GroupStatusLocked
		err = s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{
			Group: group,
		})
		if err != nil {
			return nil, err
		}

		for _, g := range groupsOutput.Groups {
			if g.ID == group.ID || g.Status != models.GroupStatusBallotDrawn {
				continue
			}
			g.Status = models.GroupStatusLocked
			err = s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{
				Group: g,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	err = s.ballotRepo.SaveResult(ctx, &ballotRepo.SaveResultInput{
		Result: result,
	})
	if err != nil {
		return nil, err
	}

	return &DrawOutput{
		Position:  position,
		Completed: completed,
		Group:     group,
		Result:    result,
	}, nil
}

// CanDraw mirrors Draw's preconditions without mutating anything. Used by
// callers to gate the draw button.
func (s *service) CanDraw(ctx context.Context, input *CanDrawInput) (*CanDrawOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	group, err := s.groupRepo.GetGroup(ctx, &groupRepo.GetGroupInput{
		GroupID: input.GroupID,
	})
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			return &CanDrawOutput{CanDraw: false, Reason: ErrGroupNotFound.Error()}, nil
		}
		return nil, err
	}

	if !strings.EqualFold(group.Representative, strings.TrimSpace(input.Email)) {
		return &CanDrawOutput{CanDraw: false, Reason: ErrNotRepresentative.Error()}, nil
	}

	if group.Status != models.GroupStatusBallotReady {
		return &CanDrawOutput{CanDraw: false, Reason: ErrGroupNotReady.Error()}, nil
	}

	result, err := s.ballotRepo.GetResult(ctx, &ballotRepo.GetResultInput{
		SessionID: group.SessionID,
	})
	if err != nil {
		if errors.Is(err, ballotRepo.ErrResultNotFound) {
			return &CanDrawOutput{CanDraw: false, Reason: ErrBallotNotActive.Error()}, nil
		}
		return nil, err
	}

	if result.Status != models.BallotStatusInProgress {
		return &CanDrawOutput{CanDraw: false, Reason: ErrBallotNotActive.Error()}, nil
	}

	return &CanDrawOutput{CanDraw: true}, nil
}

// GetResult retrieves a session's ballot result, defaulting to the current
// session. A not-started placeholder stands in when no ballot was ever run.
func (s *service) GetResult(ctx context.Context, input *GetResultInput) (*GetResultOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sessionID := input.SessionID
	if sessionID == "" {
		currentOutput, err := s.sessionService.GetCurrentSession(ctx, &sessionService.GetCurrentSessionInput{})
		if err != nil {
			if errors.Is(err, sessionService.ErrNoActiveSession) {
				return nil, ErrNoActiveSession
			}
			return nil, err
		}
		sessionID = currentOutput.Session.ID
	}

	result, err := s.ballotRepo.GetResult(ctx, &ballotRepo.GetResultInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, ballotRepo.ErrResultNotFound) {
			return &GetResultOutput{
				Result: &models.BallotResult{
					SessionID: sessionID,
					Entries:   []models.BallotEntry{},
					Status:    models.BallotStatusNotStarted,
				},
			}, nil
		}
		return nil, err
	}

	return &GetResultOutput{
		Result: result,
	}, nil
}
