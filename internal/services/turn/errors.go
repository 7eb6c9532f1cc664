package turn

// TurnError is a custom error type for turn-related errors
type TurnError string

// Error implements the error interface
func (e TurnError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     TurnError = "config cannot be nil"
	ErrNilDiceRoller TurnError = "dice roller cannot be nil"
	ErrNilDecider    TurnError = "decider cannot be nil"
	ErrNilPlayer     TurnError = "player cannot be nil"
)
