package models

import (
	"time"
)

// Admin is a credential record for an administrator account.
type Admin struct {
	// Username is the admin's login name and primary key
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the admin's password
	PasswordHash string `json:"-"`

	// CreatedAt is when the account was created
	CreatedAt time.Time `json:"createdAt"`

	// CreatedBy is the username that created this account
	CreatedBy string `json:"createdBy"`

	// LastLogin is when the admin last logged in
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
