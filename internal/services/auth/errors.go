package auth

// AuthError is a custom error type for credential-check errors
type AuthError string

// Error implements the error interface
func (e AuthError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidCredentials AuthError = "invalid username or password"
	ErrAdminExists        AuthError = "admin username is already taken"
	ErrPasswordTooShort   AuthError = "password must be at least 6 characters"
	ErrNilConfig          AuthError = "config cannot be nil"
	ErrNilAdminRepo       AuthError = "admin repository cannot be nil"
	ErrNilClock           AuthError = "clock cannot be nil"
	ErrMissingSecret      AuthError = "JWT secret cannot be empty"
)
