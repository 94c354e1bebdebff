package participant

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

func (s *RedisRepositoryTestSuite) saveParticipant(email, handle, sessionID string) {
	err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
		Participant: &models.Participant{
			Email:        email,
			WechatHandle: handle,
			RegisteredAt: s.testNow,
			AddedBy:      models.AddedBySelf,
			Role:         models.RoleUser,
			SessionID:    sessionID,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetParticipant() {
	s.saveParticipant("alice@example.com", "alice_wx", "session-a")

	retrieved, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		Email: "alice@example.com",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("alice@example.com", retrieved.Email)
	s.Equal("alice_wx", retrieved.WechatHandle)
	s.Equal(models.RoleUser, retrieved.Role)
	s.Equal("session-a", retrieved.SessionID)
	s.Equal(s.testNow.Unix(), retrieved.RegisteredAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetParticipantCaseInsensitive() {
	s.saveParticipant("Alice@Example.com", "alice_wx", "session-a")

	retrieved, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		Email: "ALICE@EXAMPLE.COM",
	})
	s.Require().NoError(err)
	s.Equal("alice@example.com", retrieved.Email)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantNotFound() {
	_, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		Email: "nobody@example.com",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantByWechat() {
	s.saveParticipant("alice@example.com", "Alice_WX", "session-a")

	retrieved, err := s.repo.GetParticipantByWechat(context.Background(), &GetParticipantByWechatInput{
		WechatHandle: "alice_wx",
	})
	s.Require().NoError(err)
	s.Equal("alice@example.com", retrieved.Email)

	_, err = s.repo.GetParticipantByWechat(context.Background(), &GetParticipantByWechatInput{
		WechatHandle: "unknown_wx",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteParticipantCleansIndexes() {
	s.saveParticipant("alice@example.com", "alice_wx", "session-a")

	err := s.repo.DeleteParticipant(context.Background(), &DeleteParticipantInput{
		Email: "alice@example.com",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		Email: "alice@example.com",
	})
	s.ErrorIs(err, ErrParticipantNotFound)

	// The handle index must go with the record, so the handle is reusable
	_, err = s.repo.GetParticipantByWechat(context.Background(), &GetParticipantByWechatInput{
		WechatHandle: "alice_wx",
	})
	s.ErrorIs(err, ErrParticipantNotFound)

	listOutput, err := s.repo.ListParticipantsBySession(context.Background(), &ListParticipantsBySessionInput{
		SessionID: "session-a",
	})
	s.Require().NoError(err)
	s.Empty(listOutput.Participants)
}

func (s *RedisRepositoryTestSuite) TestListParticipantsBySession() {
	s.saveParticipant("alice@example.com", "alice_wx", "session-a")
	s.saveParticipant("bob@example.com", "bob_wx", "session-a")
	s.saveParticipant("carol@example.com", "carol_wx", "session-b")

	listOutput, err := s.repo.ListParticipantsBySession(context.Background(), &ListParticipantsBySessionInput{
		SessionID: "session-a",
	})
	s.Require().NoError(err)
	s.Len(listOutput.Participants, 2)

	allOutput, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{})
	s.Require().NoError(err)
	s.Len(allOutput.Participants, 3)
}
