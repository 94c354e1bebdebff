package registry

// RegistryError is a custom error type for participant registry errors
type RegistryError string

// Error implements the error interface
func (e RegistryError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidEmail          RegistryError = "invalid email address"
	ErrHandleRequired        RegistryError = "wechat handle is required"
	ErrDuplicateEmail        RegistryError = "email is already registered"
	ErrDuplicateWechatHandle RegistryError = "wechat handle is already registered"
	ErrParticipantNotFound   RegistryError = "participant not found"
	ErrRoleConflict          RegistryError = "participant is already a member of another group in this session"
	ErrNilConfig             RegistryError = "config cannot be nil"
	ErrNilParticipantRepo    RegistryError = "participant repository cannot be nil"
	ErrNilGroupRepo          RegistryError = "group repository cannot be nil"
	ErrNilSessionService     RegistryError = "session service cannot be nil"
	ErrNilClock              RegistryError = "clock cannot be nil"
)
