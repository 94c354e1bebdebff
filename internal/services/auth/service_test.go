package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/hueylin/groupballot/internal/common/clock/mocks"
	adminRepo "github.com/hueylin/groupballot/internal/repositories/admin"
)

const testSecret = "test-secret"

type AuthServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mr        *miniredis.Miniredis
	client    *redis.Client
	service   Service
	ctx       context.Context

	testTime time.Time
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := adminRepo.NewRedis(&adminRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	svc, err := New(&Config{
		AdminRepo: repo,
		Clock:     s.mockClock,
		JWTSecret: testSecret,
	})
	s.Require().NoError(err)
	s.service = svc

	s.testTime = time.Date(2025, 11, 8, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestCreateAdmin() {
	output, err := s.service.CreateAdmin(s.ctx, &CreateAdminInput{
		Username:  "Root",
		Password:  "hunter22",
		CreatedBy: "bootstrap",
	})
	s.Require().NoError(err)

	s.Equal("root", output.Admin.Username)
	s.NotEqual("hunter22", output.Admin.PasswordHash)
	s.Equal(s.testTime, output.Admin.CreatedAt)
}

func (s *AuthServiceTestSuite) TestCreateAdminDuplicate() {
	_, err := s.service.CreateAdmin(s.ctx, &CreateAdminInput{
		Username: "root",
		Password: "hunter22",
	})
	s.Require().NoError(err)

	_, err = s.service.CreateAdmin(s.ctx, &CreateAdminInput{
		Username: "ROOT",
		Password: "other-password",
	})
	s.ErrorIs(err, ErrAdminExists)
}

func (s *AuthServiceTestSuite) TestCreateAdminShortPassword() {
	_, err := s.service.CreateAdmin(s.ctx, &CreateAdminInput{
		Username: "root",
		Password: "short",
	})
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *AuthServiceTestSuite) TestLogin() {
	_, err := s.service.CreateAdmin(s.ctx, &CreateAdminInput{
		Username: "root",
		Password: "hunter22",
	})
	s.Require().NoError(err)

	output, err := s.service.Login(s.ctx, &LoginInput{
		Username: "root",
		Password: "hunter22",
	})
	s.Require().NoError(err)
	s.NotEmpty(output.Token)
	s.Require().NotNil(output.Admin.LastLogin)
	s.Equal(s.testTime, *output.Admin.LastLogin)

	// The token verifies against the signing secret and carries the
	// identity. Expiry is checked against the mocked clock's era, so claim
	// validation is skipped here.
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, err := parser.Parse(output.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	s.Require().NoError(err)
	s.True(token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	s.Require().True(ok)
	s.Equal("root", claims["username"])
	s.Equal("admin", claims["role"])
	s.Equal(float64(s.testTime.Add(24*time.Hour).Unix()), claims["exp"])
}

func (s *AuthServiceTestSuite) TestLoginWrongPassword() {
	_, err := s.service.CreateAdmin(s.ctx, &CreateAdminInput{
		Username: "root",
		Password: "hunter22",
	})
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, &LoginInput{
		Username: "root",
		Password: "wrong-password",
	})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLoginUnknownAdmin() {
	_, err := s.service.Login(s.ctx, &LoginInput{
		Username: "nobody",
		Password: "whatever",
	})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestEnsureAdminIsIdempotent() {
	first, err := s.service.EnsureAdmin(s.ctx, &CreateAdminInput{
		Username:  "root",
		Password:  "hunter22",
		CreatedBy: "bootstrap",
	})
	s.Require().NoError(err)

	second, err := s.service.EnsureAdmin(s.ctx, &CreateAdminInput{
		Username: "root",
		Password: "hunter22",
	})
	s.Require().NoError(err)
	s.Equal(first.Admin.Username, second.Admin.Username)

	// The original credentials still work
	_, err = s.service.Login(s.ctx, &LoginInput{
		Username: "root",
		Password: "hunter22",
	})
	s.Require().NoError(err)
}
