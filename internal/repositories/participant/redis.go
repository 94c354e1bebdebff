package participant

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
	// Key prefixes for Redis
	participantKeyPrefix = "participant:"
	wechatKeyPrefix      = "wechat_handle:" // Index mapping handle -> email
	participantsKey      = "participants"
	sessionIndexPrefix   = "session_participants:"
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
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

// SaveParticipant persists a participant to Redis
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	email := strings.ToLower(input.Participant.Email)
	input.Participant.Email = email

	participantJSON, err := json.Marshal(input.Participant)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.Set(ctx, participantKeyPrefix+email, participantJSON, 0)
	pipe.SAdd(ctx, participantsKey, email)

	// Handle index keyed by lowercased handle for case-insensitive uniqueness
	pipe.Set(ctx, wechatKeyPrefix+strings.ToLower(input.Participant.WechatHandle), email, 0)

	if input.Participant.SessionID != "" {
		pipe.SAdd(ctx, sessionIndexPrefix+input.Participant.SessionID, email)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant by email from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	participantJSON, err := r.client.Get(ctx, participantKeyPrefix+strings.ToLower(input.Email)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var participant models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &participant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &participant, nil
}

// GetParticipantByWechat retrieves a participant by WeChat handle from Redis
func (r *redisRepository) GetParticipantByWechat(ctx context.Context, input *GetParticipantByWechatInput) (*models.Participant, error) {
	if input == nil || input.WechatHandle == "" {
		return nil, errors.New("input and wechat handle cannot be empty")
	}

	email, err := r.client.Get(ctx, wechatKeyPrefix+strings.ToLower(input.WechatHandle)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get email for wechat handle: %w", err)
	}

	return r.GetParticipant(ctx, &GetParticipantInput{
		Email: email,
	})
}

// DeleteParticipant removes a participant from Redis
func (r *redisRepository) DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error {
	if input == nil || input.Email == "" {
		return errors.New("input and email cannot be empty")
	}

	// Get the participant first for its wechat handle and session index
	participant, err := r.GetParticipant(ctx, &GetParticipantInput{
		Email: input.Email,
	})
	if err != nil {
		return err
	}

	email := strings.ToLower(input.Email)

	pipe := r.client.Pipeline()

	pipe.Del(ctx, participantKeyPrefix+email)
	pipe.SRem(ctx, participantsKey, email)
	pipe.Del(ctx, wechatKeyPrefix+strings.ToLower(participant.WechatHandle))

	if participant.SessionID != "" {
		pipe.SRem(ctx, sessionIndexPrefix+participant.SessionID, email)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	return nil
}

// ListParticipants retrieves all participants from Redis
func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	emails, err := r.client.SMembers(ctx, participantsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant emails: %w", err)
	}

	participants, err := r.getAll(ctx, emails)
	if err != nil {
		return nil, err
	}

	return &ListParticipantsOutput{
		Participants: participants,
	}, nil
}

// ListParticipantsBySession retrieves all participants registered in a session
func (r *redisRepository) ListParticipantsBySession(ctx context.Context, input *ListParticipantsBySessionInput) (*ListParticipantsBySessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	emails, err := r.client.SMembers(ctx, sessionIndexPrefix+input.SessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session participant emails: %w", err)
	}

	participants, err := r.getAll(ctx, emails)
	if err != nil {
		return nil, err
	}

	return &ListParticipantsBySessionOutput{
		Participants: participants,
	}, nil
}

func (r *redisRepository) getAll(ctx context.Context, emails []string) ([]*models.Participant, error) {
	participants := make([]*models.Participant, 0, len(emails))
	for _, email := range emails {
		participant, err := r.GetParticipant(ctx, &GetParticipantInput{Email: email})
		if err != nil {
			// Participant was deleted between getting the emails and fetching it
			if errors.Is(err, ErrParticipantNotFound) {
				continue
			}
			return nil, err
		}
		participants = append(participants, participant)
	}

	return participants, nil
}
