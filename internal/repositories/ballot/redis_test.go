package ballot

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

func (s *RedisRepositoryTestSuite) TestSaveAndGetResult() {
	result := &models.BallotResult{
		SessionID: "session-a",
		Entries: []models.BallotEntry{
			{GroupID: "group-a", Position: 2, DrawnAt: s.testNow},
		},
		TotalGroups:       3,
		TotalParticipants: 5,
		Status:            models.BallotStatusInProgress,
		StartedAt:         &s.testNow,
	}

	err := s.repo.SaveResult(context.Background(), &SaveResultInput{
		Result: result,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetResult(context.Background(), &GetResultInput{
		SessionID: "session-a",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("session-a", retrieved.SessionID)
	s.Len(retrieved.Entries, 1)
	s.Equal("group-a", retrieved.Entries[0].GroupID)
	s.Equal(2, retrieved.Entries[0].Position)
	s.Equal(3, retrieved.TotalGroups)
	s.Equal(5, retrieved.TotalParticipants)
	s.Equal(models.BallotStatusInProgress, retrieved.Status)
}

func (s *RedisRepositoryTestSuite) TestGetResultNotFound() {
	_, err := s.repo.GetResult(context.Background(), &GetResultInput{
		SessionID: "no-such-session",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrResultNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveResultReplaces() {
	first := &models.BallotResult{
		SessionID:   "session-a",
		Entries:     []models.BallotEntry{},
		TotalGroups: 2,
		Status:      models.BallotStatusInProgress,
	}
	err := s.repo.SaveResult(context.Background(), &SaveResultInput{Result: first})
	s.Require().NoError(err)

	second := &models.BallotResult{
		SessionID:   "session-a",
		Entries:     []models.BallotEntry{},
		TotalGroups: 4,
		Status:      models.BallotStatusCompleted,
	}
	err = s.repo.SaveResult(context.Background(), &SaveResultInput{Result: second})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetResult(context.Background(), &GetResultInput{
		SessionID: "session-a",
	})
	s.Require().NoError(err)
	s.Equal(4, retrieved.TotalGroups)
	s.Equal(models.BallotStatusCompleted, retrieved.Status)
}
