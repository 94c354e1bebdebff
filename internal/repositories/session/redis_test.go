package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/hueylin/groupballot/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 11, 8, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	session := &models.Session{
		ID:          "test-session-id",
		Name:        "November Ballot",
		SessionDate: s.testNow,
		Active:      true,
		CreatedBy:   "admin",
		CreatedAt:   s.testNow,
	}

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-session-id", retrieved.ID)
	s.Equal("November Ballot", retrieved.Name)
	s.True(retrieved.Active)
	s.Equal("admin", retrieved.CreatedBy)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
	s.Nil(retrieved.ClosedAt)
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "no-such-session",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestCurrentSessionPointer() {
	session := &models.Session{
		ID:        "test-session-id",
		Name:      "November Ballot",
		Active:    true,
		CreatedAt: s.testNow,
	}

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	// No pointer set yet
	current, err := s.repo.GetCurrentSession(context.Background(), &GetCurrentSessionInput{})
	s.Require().NoError(err)
	s.Nil(current.Session)

	err = s.repo.SetCurrentSession(context.Background(), &SetCurrentSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)

	current, err = s.repo.GetCurrentSession(context.Background(), &GetCurrentSessionInput{})
	s.Require().NoError(err)
	s.Require().NotNil(current.Session)
	s.Equal("test-session-id", current.Session.ID)

	// Clearing with an empty ID removes the pointer
	err = s.repo.SetCurrentSession(context.Background(), &SetCurrentSessionInput{
		SessionID: "",
	})
	s.Require().NoError(err)

	current, err = s.repo.GetCurrentSession(context.Background(), &GetCurrentSessionInput{})
	s.Require().NoError(err)
	s.Nil(current.Session)
}

func (s *RedisRepositoryTestSuite) TestListSessions() {
	for _, id := range []string{"session-a", "session-b"} {
		err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
			Session: &models.Session{
				ID:        id,
				Name:      id,
				Active:    true,
				CreatedAt: s.testNow,
			},
		})
		s.Require().NoError(err)
	}

	listOutput, err := s.repo.ListSessions(context.Background(), &ListSessionsInput{})
	s.Require().NoError(err)
	s.Len(listOutput.Sessions, 2)

	ids := make(map[string]bool)
	for _, session := range listOutput.Sessions {
		ids[session.ID] = true
	}
	s.True(ids["session-a"])
	s.True(ids["session-b"])
}
