package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hueylin/groupballot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix  = "ballot_session:"
	sessionsKey       = "ballot_sessions"
	currentSessionKey = "current_session"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()

	sessionKey := sessionKeyPrefix + input.Session.ID
	pipe.Set(ctx, sessionKey, sessionJSON, 0)
	pipe.SAdd(ctx, sessionsKey, input.Session.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := sessionKeyPrefix + input.SessionID
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// ListSessions retrieves all sessions from Redis
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	sessionIDs, err := r.client.SMembers(ctx, sessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for _, sessionID := range sessionIDs {
		session, err := r.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
		if err != nil {
			// Session was deleted between getting the IDs and fetching it
			if errors.Is(err, ErrSessionNotFound) {
				continue
			}
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// GetCurrentSession retrieves the current session from Redis
func (r *redisRepository) GetCurrentSession(ctx context.Context, input *GetCurrentSessionInput) (*GetCurrentSessionOutput, error) {
	sessionID, err := r.client.Get(ctx, currentSessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			// No current session is set
			return &GetCurrentSessionOutput{
				Session: nil,
			}, nil
		}
		return nil, fmt.Errorf("failed to get current session ID: %w", err)
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			// Session record is gone, clear the stale pointer
			r.client.Del(ctx, currentSessionKey)
			return &GetCurrentSessionOutput{
				Session: nil,
			}, nil
		}
		return nil, err
	}

	return &GetCurrentSessionOutput{
		Session: session,
	}, nil
}

// SetCurrentSession updates the current-session pointer in Redis
func (r *redisRepository) SetCurrentSession(ctx context.Context, input *SetCurrentSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.SessionID == "" {
		if err := r.client.Del(ctx, currentSessionKey).Err(); err != nil {
			return fmt.Errorf("failed to clear current session: %w", err)
		}
		return nil
	}

	if err := r.client.Set(ctx, currentSessionKey, input.SessionID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set current session: %w", err)
	}

	return nil
}
