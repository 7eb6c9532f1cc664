package scoring

import "github.com/KirkDiggler/farkle/internal/models"

// Table scores throws with the fixed triplet and single tables
type Table struct{}

// New creates the fixed table scorer
func New() *Table {
	return &Table{}
}

// CalculatePoints implements Scorer
func (t *Table) CalculatePoints(faces []int) (points, diceUsed int) {
	return CalculatePoints(faces)
}

// CalculatePoints scores a throw. Each face earns at most one triplet bonus;
// leftover 1s and 5s then score as singles. Four or more of a kind earn
// nothing beyond the triplet. Faces outside 1..6 are ignored.
func CalculatePoints(faces []int) (points, diceUsed int) {
	var counts [models.DieSides + 1]int
	for _, face := range faces {
		if face < 1 || face > models.DieSides {
			continue
		}
		counts[face]++
	}

	for face := 1; face <= models.DieSides; face++ {
		count := counts[face]
		if count >= 3 {
			score, _ := TripletScore(face)
			points += score
			count -= 3
			diceUsed += 3
		}

		if single, ok := SingleScore(face); ok && count > 0 {
			points += single * count
			diceUsed += count
		}
	}

	return points, diceUsed
}
