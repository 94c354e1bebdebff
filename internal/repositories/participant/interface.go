package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hueylin/groupballot/internal/repositories/participant Repository

import (
	"context"

	"github.com/hueylin/groupballot/internal/models"
)

// Repository defines the interface for participant data persistence.
// Emails and WeChat handles are compared case-insensitively; implementations
// normalize both before storing or looking up.
type Repository interface {
	// SaveParticipant persists a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant retrieves a participant by email
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// GetParticipantByWechat retrieves a participant by WeChat handle
	GetParticipantByWechat(ctx context.Context, input *GetParticipantByWechatInput) (*models.Participant, error)

	// DeleteParticipant removes a participant
	DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error

	// ListParticipants retrieves all participants
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// ListParticipantsBySession retrieves all participants registered in a session
	ListParticipantsBySession(ctx context.Context, input *ListParticipantsBySessionInput) (*ListParticipantsBySessionOutput, error)
}
