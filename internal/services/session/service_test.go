package session

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
	sessionRepo "github.com/hueylin/groupballot/internal/repositories/session"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	mr        *miniredis.Miniredis
	client    *redis.Client
	service   Service
	ctx       context.Context

	testTime time.Time
}

func (s *SessionServiceTestSuite) SetupTest() {
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

	repo, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	svc, err := New(&Config{
		SessionRepo:   repo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc

	s.testTime = time.Date(2025, 11, 8, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) TestCreateSessionBecomesCurrent() {
	s.mockUUID.EXPECT().NewUUID().Return("session-id-1")

	output, err := s.service.CreateSession(s.ctx, &CreateSessionInput{
		Name:      "November Ballot",
		CreatedBy: "admin",
	})
	s.Require().NoError(err)
	s.Equal("session-id-1", output.Session.ID)
	s.True(output.Session.Active)
	s.Equal(s.testTime, output.Session.CreatedAt)
	// SessionDate falls back to the creation time
	s.Equal(s.testTime, output.Session.SessionDate)

	current, err := s.service.GetCurrentSession(s.ctx, &GetCurrentSessionInput{})
	s.Require().NoError(err)
	s.Equal("session-id-1", current.Session.ID)
}

func (s *SessionServiceTestSuite) TestCreateSessionRequiresName() {
	_, err := s.service.CreateSession(s.ctx, &CreateSessionInput{})
	s.Require().Error(err)
	s.ErrorIs(err, ErrNameRequired)
}

func (s *SessionServiceTestSuite) TestGetCurrentSessionWithoutOne() {
	_, err := s.service.GetCurrentSession(s.ctx, &GetCurrentSessionInput{})
	s.Require().Error(err)
	s.ErrorIs(err, ErrNoActiveSession)
}

func (s *SessionServiceTestSuite) TestSelectSession() {
	s.mockUUID.EXPECT().NewUUID().Return("session-id-1")
	s.mockUUID.EXPECT().NewUUID().Return("session-id-2")

	_, err := s.service.CreateSession(s.ctx, &CreateSessionInput{Name: "First"})
	s.Require().NoError(err)
	_, err = s.service.CreateSession(s.ctx, &CreateSessionInput{Name: "Second"})
	s.Require().NoError(err)

	output, err := s.service.SelectSession(s.ctx, &SelectSessionInput{
		SessionID: "session-id-1",
	})
	s.Require().NoError(err)
	s.Equal("First", output.Session.Name)

	current, err := s.service.GetCurrentSession(s.ctx, &GetCurrentSessionInput{})
	s.Require().NoError(err)
	s.Equal("session-id-1", current.Session.ID)
}

func (s *SessionServiceTestSuite) TestSelectUnknownSession() {
	_, err := s.service.SelectSession(s.ctx, &SelectSessionInput{
		SessionID: "no-such-session",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestSelectClosedSession() {
	s.mockUUID.EXPECT().NewUUID().Return("session-id-1")

	_, err := s.service.CreateSession(s.ctx, &CreateSessionInput{Name: "First"})
	s.Require().NoError(err)

	_, err = s.service.CloseSession(s.ctx, &CloseSessionInput{
		SessionID: "session-id-1",
	})
	s.Require().NoError(err)

	_, err = s.service.SelectSession(s.ctx, &SelectSessionInput{
		SessionID: "session-id-1",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionClosed)
}

func (s *SessionServiceTestSuite) TestCloseCurrentSessionClearsPointer() {
	s.mockUUID.EXPECT().NewUUID().Return("session-id-1")

	_, err := s.service.CreateSession(s.ctx, &CreateSessionInput{Name: "First"})
	s.Require().NoError(err)

	output, err := s.service.CloseSession(s.ctx, &CloseSessionInput{
		SessionID: "session-id-1",
	})
	s.Require().NoError(err)
	s.False(output.Session.Active)
	s.Require().NotNil(output.Session.ClosedAt)
	s.Equal(s.testTime, *output.Session.ClosedAt)

	_, err = s.service.GetCurrentSession(s.ctx, &GetCurrentSessionInput{})
	s.ErrorIs(err, ErrNoActiveSession)
}

func (s *SessionServiceTestSuite) TestCloseSessionTwice() {
	s.mockUUID.EXPECT().NewUUID().Return("session-id-1")

	_, err := s.service.CreateSession(s.ctx, &CreateSessionInput{Name: "First"})
	s.Require().NoError(err)

	_, err = s.service.CloseSession(s.ctx, &CloseSessionInput{SessionID: "session-id-1"})
	s.Require().NoError(err)

	_, err = s.service.CloseSession(s.ctx, &CloseSessionInput{SessionID: "session-id-1"})
	s.ErrorIs(err, ErrSessionClosed)
}

func (s *SessionServiceTestSuite) TestEnsureCurrentSessionCreatesDefault() {
	s.mockUUID.EXPECT().NewUUID().Return("session-id-1")

	output, err := s.service.EnsureCurrentSession(s.ctx, &EnsureCurrentSessionInput{})
	s.Require().NoError(err)
	s.True(output.Created)
	s.Equal(DefaultSessionName, output.Session.Name)
	s.Equal("system", output.Session.CreatedBy)

	// The second call reuses the session it just made
	again, err := s.service.EnsureCurrentSession(s.ctx, &EnsureCurrentSessionInput{})
	s.Require().NoError(err)
	s.False(again.Created)
	s.Equal(output.Session.ID, again.Session.ID)
}
