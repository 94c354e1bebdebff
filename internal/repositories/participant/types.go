package participant

import "github.com/hueylin/groupballot/internal/models"

// SaveParticipantInput contains parameters for saving a participant
type SaveParticipantInput struct {
	Participant *models.Participant
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	Email string
}

// GetParticipantByWechatInput contains parameters for retrieving a participant
// by WeChat handle
type GetParticipantByWechatInput struct {
	WechatHandle string
}

// DeleteParticipantInput contains parameters for removing a participant
type DeleteParticipantInput struct {
	Email string
}

// ListParticipantsInput contains parameters for listing all participants
type ListParticipantsInput struct{}

// ListParticipantsOutput contains the result of listing all participants
type ListParticipantsOutput struct {
	Participants []*models.Participant
}

// ListParticipantsBySessionInput contains parameters for listing participants
// registered in a session
type ListParticipantsBySessionInput struct {
	SessionID string
}

// ListParticipantsBySessionOutput contains the result of listing participants
// registered in a session
type ListParticipantsBySessionOutput struct {
	Participants []*models.Participant
}
