package models

import (
	"time"
)

// ParticipantRole represents what a participant may do within a session
type ParticipantRole string

const (
	// RoleUser is the default role assigned at registration
	RoleUser ParticipantRole = "user"

	// RoleRepresentative marks the participant as eligible to lead a group
	// and perform its ballot draw
	RoleRepresentative ParticipantRole = "representative"
)

// AddedBy records who created a participant record
type AddedBy string

const (
	// AddedBySelf indicates the participant registered themselves
	AddedBySelf AddedBy = "self"

	// AddedByAdmin indicates an admin registered the participant
	AddedByAdmin AddedBy = "admin"
)

// Participant represents a registered identity. Email and WeChat handle are
// each globally unique across all sessions, compared case-insensitively;
// the email is lowercased before it is stored.
type Participant struct {
	// Email is the participant's email address and primary key
	Email string `json:"email"`

	// WechatHandle is the participant's WeChat contact handle
	WechatHandle string `json:"wechatHandle"`

	// RegisteredAt is when the participant registered
	RegisteredAt time.Time `json:"registeredAt"`

	// AddedBy records whether the record was self-registered or admin-created
	AddedBy AddedBy `json:"addedBy"`

	// Role is the participant's current role
	Role ParticipantRole `json:"role"`

	// DesignatedBy is the admin that granted the representative role
	DesignatedBy string `json:"designatedBy,omitempty"`

	// DesignatedAt is when the representative role was granted
	DesignatedAt *time.Time `json:"designatedAt,omitempty"`

	// SessionID is the session that was current at registration time
	SessionID string `json:"sessionId"`
}
