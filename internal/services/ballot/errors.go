package ballot

// BallotError is a custom error type for ballot engine errors
type BallotError string

// Error implements the error interface
func (e BallotError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoActiveSession      BallotError = "no active session"
	ErrNoApprovedGroups     BallotError = "no approved groups in this session"
	ErrGroupNotFound        BallotError = "group not found"
	ErrNotRepresentative    BallotError = "only the group's representative may draw"
	ErrGroupNotReady        BallotError = "group is not ready to draw"
	ErrBallotNotActive      BallotError = "no ballot in progress for this session"
	ErrNoPositionsAvailable BallotError = "no positions left to draw"
	ErrNilConfig            BallotError = "config cannot be nil"
	ErrNilGroupRepo         BallotError = "group repository cannot be nil"
	ErrNilBallotRepo        BallotError = "ballot repository cannot be nil"
	ErrNilSessionService    BallotError = "session service cannot be nil"
	ErrNilClock             BallotError = "clock cannot be nil"
	ErrNilRand              BallotError = "random source cannot be nil"
)
