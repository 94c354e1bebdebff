package stats

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/hueylin/groupballot/internal/common/clock/mocks"
	uuidMocks "github.com/hueylin/groupballot/internal/common/uuid/mocks"
	"github.com/hueylin/groupballot/internal/models"
	ballotRepo "github.com/hueylin/groupballot/internal/repositories/ballot"
	groupRepo "github.com/hueylin/groupballot/internal/repositories/group"
	participantRepo "github.com/hueylin/groupballot/internal/repositories/participant"
	sessionRepo "github.com/hueylin/groupballot/internal/repositories/session"
	sessionService "github.com/hueylin/groupballot/internal/services/session"
)

type StatsServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	mr        *miniredis.Miniredis
	client    *redis.Client

	participantRepo participantRepo.Repository
	groupRepo       groupRepo.Repository
	ballotRepo      ballotRepo.Repository
	service         Service
	ctx             context.Context

	testTime      time.Time
	testSessionID string
}

func (s *StatsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	pRepo, err := participantRepo.NewRedis(&participantRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.participantRepo = pRepo

	gRepo, err := groupRepo.NewRedis(&groupRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.groupRepo = gRepo

	bRepo, err := ballotRepo.NewRedis(&ballotRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.ballotRepo = bRepo

	sRepo, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	sessionSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo:   sRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	svc, err := New(&Config{
		ParticipantRepo: pRepo,
		GroupRepo:       gRepo,
		BallotRepo:      bRepo,
		SessionService:  sessionSvc,
	})
	s.Require().NoError(err)
	s.service = svc

	s.testTime = time.Date(2025, 11, 8, 12, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	_, err = sessionSvc.CreateSession(s.ctx, &sessionService.CreateSessionInput{
		Name:      "Test Session",
		CreatedBy: "admin",
	})
	s.Require().NoError(err)
}

func (s *StatsServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

func (s *StatsServiceTestSuite) TestSessionStats() {
	for _, p := range []*models.Participant{
		{Email: "rep@example.com", WechatHandle: "rep_wx", Role: models.RoleRepresentative, SessionID: s.testSessionID, RegisteredAt: s.testTime},
		{Email: "bob@example.com", WechatHandle: "bob_wx", Role: models.RoleUser, SessionID: s.testSessionID, RegisteredAt: s.testTime},
		{Email: "carol@example.com", WechatHandle: "carol_wx", Role: models.RoleUser, SessionID: s.testSessionID, RegisteredAt: s.testTime},
	} {
		err := s.participantRepo.SaveParticipant(s.ctx, &participantRepo.SaveParticipantInput{Participant: p})
		s.Require().NoError(err)
	}

	for _, g := range []*models.Group{
		{ID: "group-a", SessionID: s.testSessionID, Status: models.GroupStatusPending, CreatedAt: s.testTime},
		{ID: "group-b", SessionID: s.testSessionID, Status: models.GroupStatusBallotDrawn, BallotPosition: 1, CreatedAt: s.testTime},
	} {
		err := s.groupRepo.SaveGroup(s.ctx, &groupRepo.SaveGroupInput{Group: g})
		s.Require().NoError(err)
	}

	err := s.ballotRepo.SaveResult(s.ctx, &ballotRepo.SaveResultInput{
		Result: &models.BallotResult{
			SessionID:   s.testSessionID,
			Entries:     []models.BallotEntry{},
			TotalGroups: 2,
			Status:      models.BallotStatusInProgress,
		},
	})
	s.Require().NoError(err)

	output, err := s.service.SessionStats(s.ctx, &SessionStatsInput{})
	s.Require().NoError(err)

	s.Equal(s.testSessionID, output.SessionID)
	s.Equal(3, output.Participants)
	s.Equal(1, output.Representatives)
	s.Equal(2, output.Groups)
	s.Equal(1, output.GroupsByStatus[models.GroupStatusPending])
	s.Equal(1, output.GroupsByStatus[models.GroupStatusBallotDrawn])
	s.Equal(1, output.Drawn)
	s.Equal(models.BallotStatusInProgress, output.BallotStatus)
}

func (s *StatsServiceTestSuite) TestSessionStatsEmptySession() {
	output, err := s.service.SessionStats(s.ctx, &SessionStatsInput{})
	s.Require().NoError(err)

	s.Zero(output.Participants)
	s.Zero(output.Groups)
	s.Zero(output.Drawn)
	s.Equal(models.BallotStatusNotStarted, output.BallotStatus)
}
