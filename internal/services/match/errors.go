package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidPlayerCount  MatchError = "player count must be a whole number between 1 and the maximum"
	ErrDuplicatePlayerName MatchError = "player names must be unique"
	ErrNoPlayers           MatchError = "match needs at least one player"
	ErrNilPlayer           MatchError = "player cannot be nil"
	ErrNilConfig           MatchError = "config cannot be nil"
	ErrNilTurnService      MatchError = "turn service cannot be nil"
	ErrNilPrompter         MatchError = "prompter cannot be nil"
	ErrNilClock            MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator    MatchError = "UUID generator cannot be nil"
)
