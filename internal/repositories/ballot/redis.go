package ballot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hueylin/groupballot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	resultKeyPrefix = "ballot_result:"
)

// ErrResultNotFound is returned when no ballot result exists for a session
var ErrResultNotFound = errors.New("ballot result not found")

// Config holds configuration for the Redis ballot repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ballot repository
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

// SaveResult persists a ballot result to Redis, replacing any previous
// result for the session
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	if input.Result.SessionID == "" {
		return errors.New("result session ID cannot be empty")
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal ballot result: %w", err)
	}

	err = r.client.Set(ctx, resultKeyPrefix+input.Result.SessionID, resultJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to save ballot result: %w", err)
	}

	return nil
}

// GetResult retrieves the ballot result for a session from Redis
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.BallotResult, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	resultJSON, err := r.client.Get(ctx, resultKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get ballot result: %w", err)
	}

	var result models.BallotResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ballot result: %w", err)
	}

	return &result, nil
}
