package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hueylin/groupballot/internal/services/stats Service

import (
	"context"
)

// Service derives aggregate counts for display. Read-only.
type Service interface {
	// SessionStats derives the counts for one session
	SessionStats(ctx context.Context, input *SessionStatsInput) (*SessionStatsOutput, error)
}
