package turn

import (
	"github.com/KirkDiggler/farkle/internal/dice"
	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/KirkDiggler/farkle/internal/services/scoring"
)

// State is where a turn ended up after its latest throw
type State string

const (
	// StateRolling indicates the dice are being thrown
	StateRolling State = "rolling"

	// StateScoredContinue indicates the throw scored and the player chose to roll on
	StateScoredContinue State = "scored_continue"

	// StateBusted indicates a throw scored nothing and the round points were lost
	StateBusted State = "busted"

	// StateHotDice indicates every die scored and a fresh set is thrown
	StateHotDice State = "hot_dice"

	// StateStopped indicates the player banked the round
	StateStopped State = "stopped"
)

// Config holds configuration for the turn service
type Config struct {
	// DiceRoller throws the dice in play
	DiceRoller dice.Roller

	// Scorer defaults to the fixed scoring table
	Scorer scoring.Scorer

	// Decider is asked after every scoring throw that leaves dice unscored
	Decider Decider

	// Reporter is optional; events are always returned in the output
	Reporter Reporter

	// TotalDice in a fresh throw, defaults to models.TotalDice
	TotalDice int
}

// PlayTurnInput contains parameters for playing a turn
type PlayTurnInput struct {
	Player *models.Player
}

// PlayTurnOutput contains the result of a turn
type PlayTurnOutput struct {
	// Points earned this turn, zero on a bust
	Points int

	// State the turn ended in, either busted or stopped
	State State

	// Rolls in the order they were thrown
	Rolls []*models.Roll

	// Events emitted during the turn
	Events []*models.Event
}

// DecisionInput describes the choice offered to the player
type DecisionInput struct {
	PlayerName  string
	DiceCount   int
	RoundPoints int
}
