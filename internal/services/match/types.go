package match

import (
	"github.com/KirkDiggler/farkle/internal/common/clock"
	"github.com/KirkDiggler/farkle/internal/common/uuid"
	"github.com/KirkDiggler/farkle/internal/models"
	matchRepo "github.com/KirkDiggler/farkle/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/farkle/internal/repositories/player"
	"github.com/KirkDiggler/farkle/internal/services/turn"
)

// Config holds configuration for the match service
type Config struct {
	// Maximum number of players per match
	MaxPlayers int

	// Entry threshold, defaults to models.EntryThreshold
	EntryThreshold int

	// Final round threshold, defaults to models.FinalRoundThreshold
	FinalRoundThreshold int

	// Service dependencies
	TurnService   turn.Service
	Prompter      Prompter
	Reporter      Reporter
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Optional history repositories, both nil disables history
	MatchRepo  matchRepo.Repository
	PlayerRepo playerRepo.Repository
}

// CreatePlayersInput contains parameters for creating players
type CreatePlayersInput struct {
}

// CreatePlayersOutput contains the players in turn order
type CreatePlayersOutput struct {
	Players []*models.Player
}

// UpdatePlayerPointsInput contains parameters for banking a round
type UpdatePlayerPointsInput struct {
	Player      *models.Player
	RoundPoints int
}

// UpdatePlayerPointsOutput contains the result of banking a round
type UpdatePlayerPointsOutput struct {
	// Banked indicates the round points were added to the total
	Banked bool

	// Points is the player's total after the update
	Points int
}

// RunInput contains parameters for running a match
type RunInput struct {
	// Players in turn order
	Players []*models.Player
}

// RunOutput contains the result of a finished match
type RunOutput struct {
	// MatchID identifies the match in history
	MatchID string

	Status models.MatchStatus

	// Rounds is the number of regular rounds started
	Rounds int

	// Turns is the total number of turns played, final round included
	Turns int

	// Standings in rank order
	Standings []*models.Standing

	// Records holds all-time records when history is enabled
	Records []*models.PlayerRecord

	// RecentMatches holds the latest matches from history, newest first
	RecentMatches []*models.MatchResult
}
