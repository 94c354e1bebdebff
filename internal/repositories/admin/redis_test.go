package admin

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

func (s *RedisRepositoryTestSuite) TestSaveAndGetAdmin() {
	err := s.repo.SaveAdmin(context.Background(), &SaveAdminInput{
		Admin: &models.Admin{
			Username:     "root",
			PasswordHash: "$2a$10$fakehash",
			CreatedAt:    s.testNow,
			CreatedBy:    "bootstrap",
		},
	})
	s.Require().NoError(err)

	// Lookup is keyed case-insensitively
	retrieved, err := s.repo.GetAdmin(context.Background(), &GetAdminInput{
		Username: "ROOT",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("root", retrieved.Username)
	// The hash round-trips even though the model hides it from API output
	s.Equal("$2a$10$fakehash", retrieved.PasswordHash)
	s.Equal("bootstrap", retrieved.CreatedBy)
}

func (s *RedisRepositoryTestSuite) TestGetAdminNotFound() {
	_, err := s.repo.GetAdmin(context.Background(), &GetAdminInput{
		Username: "nobody",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrAdminNotFound)
}
