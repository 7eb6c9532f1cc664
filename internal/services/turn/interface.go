package turn

import (
	"context"

	"github.com/KirkDiggler/farkle/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/farkle/internal/services/turn Service,Decider,Reporter

// Service plays a single player's turn
type Service interface {
	// PlayTurn rolls until the player busts or stops and returns the round points
	PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error)
}

// Decider asks the player whether to keep rolling
type Decider interface {
	// ShouldContinue returns false when the player banks the round
	ShouldContinue(ctx context.Context, input *DecisionInput) (bool, error)
}

// Reporter receives status events as the turn progresses
type Reporter interface {
	Report(ctx context.Context, event *models.Event) error
}
