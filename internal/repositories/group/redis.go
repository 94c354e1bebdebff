package group

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
	groupKeyPrefix     = "group:"
	groupsKey          = "groups"
	sessionIndexPrefix = "session_groups:"
)

// ErrGroupNotFound is returned when a group is not found
var ErrGroupNotFound = errors.New("group not found")

// Config holds configuration for the Redis group repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed group repository
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

// SaveGroup persists a group to Redis
func (r *redisRepository) SaveGroup(ctx context.Context, input *SaveGroupInput) error {
	if input == nil || input.Group == nil {
		return errors.New("input and group cannot be nil")
	}

	groupJSON, err := json.Marshal(input.Group)
	if err != nil {
		return fmt.Errorf("failed to marshal group: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.Set(ctx, groupKeyPrefix+input.Group.ID, groupJSON, 0)
	pipe.SAdd(ctx, groupsKey, input.Group.ID)

	if input.Group.SessionID != "" {
		pipe.SAdd(ctx, sessionIndexPrefix+input.Group.SessionID, input.Group.ID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save group: %w", err)
	}

	return nil
}

// GetGroup retrieves a group by ID from Redis
func (r *redisRepository) GetGroup(ctx context.Context, input *GetGroupInput) (*models.Group, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	groupJSON, err := r.client.Get(ctx, groupKeyPrefix+input.GroupID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	var group models.Group
	if err := json.Unmarshal([]byte(groupJSON), &group); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group: %w", err)
	}

	return &group, nil
}

// DeleteGroup removes a group from Redis
func (r *redisRepository) DeleteGroup(ctx context.Context, input *DeleteGroupInput) error {
	if input == nil || input.GroupID == "" {
		return errors.New("input and group ID cannot be empty")
	}

	// Get the group first for its session index
	group, err := r.GetGroup(ctx, &GetGroupInput{
		GroupID: input.GroupID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	pipe.Del(ctx, groupKeyPrefix+input.GroupID)
	pipe.SRem(ctx, groupsKey, input.GroupID)

	if group.SessionID != "" {
		pipe.SRem(ctx, sessionIndexPrefix+group.SessionID, input.GroupID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	return nil
}

// ListGroups retrieves all groups from Redis
func (r *redisRepository) ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error) {
	groupIDs, err := r.client.SMembers(ctx, groupsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get group IDs: %w", err)
	}

	groups, err := r.getAll(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	return &ListGroupsOutput{
		Groups: groups,
	}, nil
}

// ListGroupsBySession retrieves all groups in a session from Redis
func (r *redisRepository) ListGroupsBySession(ctx context.Context, input *ListGroupsBySessionInput) (*ListGroupsBySessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	groupIDs, err := r.client.SMembers(ctx, sessionIndexPrefix+input.SessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session group IDs: %w", err)
	}

	groups, err := r.getAll(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	return &ListGroupsBySessionOutput{
		Groups: groups,
	}, nil
}

func (r *redisRepository) getAll(ctx context.Context, groupIDs []string) ([]*models.Group, error) {
	groups := make([]*models.Group, 0, len(groupIDs))
	for _, groupID := range groupIDs {
		group, err := r.GetGroup(ctx, &GetGroupInput{GroupID: groupID})
		if err != nil {
			// Group was deleted between getting the IDs and fetching it
			if errors.Is(err, ErrGroupNotFound) {
				continue
			}
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, nil
}
