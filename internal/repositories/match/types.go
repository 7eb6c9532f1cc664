package match

import "github.com/KirkDiggler/farkle/internal/models"

type SaveMatchInput struct {
	Match *models.MatchResult
}

type GetMatchInput struct {
	MatchID string
}

type GetRecentMatchesInput struct {
	// Limit defaults to 10
	Limit int
}

type GetRecentMatchesOutput struct {
	Matches []*models.MatchResult
}
