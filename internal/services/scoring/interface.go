package scoring

//go:generate mockgen -package=mocks -destination=mocks/mock_scorer.go github.com/KirkDiggler/farkle/internal/services/scoring Scorer

// Scorer maps a throw to the points it earns
type Scorer interface {
	// CalculatePoints returns the points for faces and how many dice scored
	CalculatePoints(faces []int) (points, diceUsed int)
}
