package models

// EventType identifies something observable that happened during a match
type EventType string

const (
	// EventTypeTurnStart marks the beginning of a player's turn
	EventTypeTurnStart EventType = "turn_start"

	// EventTypeRoll is emitted after every throw
	EventTypeRoll EventType = "roll"

	// EventTypeBust indicates a throw scored nothing and the round points were lost
	EventTypeBust EventType = "bust"

	// EventTypeHotDice indicates every die scored and a fresh set is rolled
	EventTypeHotDice EventType = "hot_dice"

	// EventTypeRoundStart marks the start of a regular round
	EventTypeRoundStart EventType = "round_start"

	// EventTypeFinalRound precedes every turn of the final round
	EventTypeFinalRound EventType = "final_round"

	// EventTypeEntryDenied indicates round points were below the entry threshold
	EventTypeEntryDenied EventType = "entry_denied"

	// EventTypeGameOver carries the final standings
	EventTypeGameOver EventType = "game_over"

	// EventTypeRecords carries all-time player records after a saved match
	EventTypeRecords EventType = "records"

	// EventTypeRecentMatches carries the latest finished matches from history
	EventTypeRecentMatches EventType = "recent_matches"
)

// Event is a status update emitted by the turn and match engines
type Event struct {
	Type EventType

	// PlayerName is the player the event concerns, if any
	PlayerName string

	// Roll is set for roll events
	Roll *Roll

	// RoundPoints accumulated in the current turn
	RoundPoints int

	// TotalPoints is the player's banked total
	TotalPoints int

	// DiceCount is the number of dice for the next throw
	DiceCount int

	// Round is the regular round number for round start events
	Round int

	Standings []*Standing
	Records   []*PlayerRecord
	Matches   []*MatchResult
}
