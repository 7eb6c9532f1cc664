package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/farkle/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/farkle/internal/models"
)

// Repository defines the interface for all-time player records
type Repository interface {
	// RecordResult folds one finished match into the player's record
	RecordResult(ctx context.Context, input *RecordResultInput) (*models.PlayerRecord, error)

	// GetPlayerRecord retrieves a player's record by name
	GetPlayerRecord(ctx context.Context, input *GetPlayerRecordInput) (*models.PlayerRecord, error)
}
