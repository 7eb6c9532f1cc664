package match

import (
	"context"

	"github.com/KirkDiggler/farkle/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/farkle/internal/services/match Prompter,Reporter

// Service defines the interface for match operations
type Service interface {
	// CreatePlayers asks for the player count and each player's name
	CreatePlayers(ctx context.Context, input *CreatePlayersInput) (*CreatePlayersOutput, error)

	// UpdatePlayerPoints banks round points subject to the entry threshold
	UpdatePlayerPoints(ctx context.Context, input *UpdatePlayerPointsInput) (*UpdatePlayerPointsOutput, error)

	// Run plays rounds until the final round completes and ranks the players
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// Prompter reads setup answers from the players
type Prompter interface {
	AskPlayerCount(ctx context.Context) (string, error)
	AskPlayerName(ctx context.Context, number int) (string, error)
}

// Reporter receives match status events
type Reporter interface {
	Report(ctx context.Context, event *models.Event) error
}
