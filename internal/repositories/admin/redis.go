package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hueylin/groupballot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	adminKeyPrefix = "admin:"
)

// ErrAdminNotFound is returned when an admin record is not found
var ErrAdminNotFound = errors.New("admin not found")

// Config holds configuration for the Redis admin repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed admin repository
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

// SaveAdmin persists an admin record to Redis
func (r *redisRepository) SaveAdmin(ctx context.Context, input *SaveAdminInput) error {
	if input == nil || input.Admin == nil {
		return errors.New("input and admin cannot be nil")
	}

	adminJSON, err := json.Marshal(struct {
		*models.Admin
		PasswordHash string `json:"passwordHash"`
	}{input.Admin, input.Admin.PasswordHash})
	if err != nil {
		return fmt.Errorf("failed to marshal admin: %w", err)
	}

	err = r.client.Set(ctx, adminKeyPrefix+strings.ToLower(input.Admin.Username), adminJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to save admin: %w", err)
	}

	return nil
}

// GetAdmin retrieves an admin by username from Redis
func (r *redisRepository) GetAdmin(ctx context.Context, input *GetAdminInput) (*models.Admin, error) {
	if input == nil || input.Username == "" {
		return nil, errors.New("input and username cannot be empty")
	}

	adminJSON, err := r.client.Get(ctx, adminKeyPrefix+strings.ToLower(input.Username)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	var record struct {
		models.Admin
		PasswordHash string `json:"passwordHash"`
	}
	if err := json.Unmarshal([]byte(adminJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin: %w", err)
	}

	admin := record.Admin
	admin.PasswordHash = record.PasswordHash

	return &admin, nil
}
