package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/farkle/internal/repositories/match Repository

import (
	"context"

	"github.com/KirkDiggler/farkle/internal/models"
)

// Repository defines the interface for finished match persistence
type Repository interface {
	// SaveMatch persists a finished match
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.MatchResult, error)

	// GetRecentMatches retrieves the most recently completed matches, newest first
	GetRecentMatches(ctx context.Context, input *GetRecentMatchesInput) (*GetRecentMatchesOutput, error)
}
