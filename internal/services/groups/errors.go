package groups

// GroupError is a custom error type for group registry errors
type GroupError string

// Error implements the error interface
func (e GroupError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGroupNotFound               GroupError = "group not found"
	ErrRepresentativeNotRegistered GroupError = "representative is not a registered participant"
	ErrNotRepresentative           GroupError = "participant does not hold the representative role"
	ErrMemberNotRegistered         GroupError = "member is not a registered participant"
	ErrGroupTooLarge               GroupError = "group cannot exceed 3 people including the representative"
	ErrDuplicateMember             GroupError = "member is listed more than once"
	ErrRepresentativeInGroup       GroupError = "representative already belongs to a group in this session"
	ErrMemberInGroup               GroupError = "member already belongs to a group in this session"
	ErrGroupNameTaken              GroupError = "group name is already used in this session"
	ErrInvalidGroupState           GroupError = "invalid group state for this operation"
	ErrNilConfig                   GroupError = "config cannot be nil"
	ErrNilGroupRepo                GroupError = "group repository cannot be nil"
	ErrNilParticipantRepo          GroupError = "participant repository cannot be nil"
	ErrNilSessionService           GroupError = "session service cannot be nil"
	ErrNilClock                    GroupError = "clock cannot be nil"
	ErrNilUUIDGenerator            GroupError = "UUID generator cannot be nil"
	ErrNilRand                     GroupError = "random source cannot be nil"
)
