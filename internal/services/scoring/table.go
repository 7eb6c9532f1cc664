package scoring

import "github.com/KirkDiggler/farkle/internal/models"

// tripletScores is indexed by face; index 0 is unused
var tripletScores = [models.DieSides + 1]int{0, 1000, 200, 300, 400, 500, 600}

// singleScores is indexed by face; only 1 and 5 score on their own
var singleScores = [models.DieSides + 1]int{0, 100, 0, 0, 0, 50, 0}

// TripletScore returns the points for three of face
func TripletScore(face int) (int, bool) {
	if face < 1 || face > models.DieSides {
		return 0, false
	}
	return tripletScores[face], true
}

// SingleScore returns the points for a single die showing face
func SingleScore(face int) (int, bool) {
	if face < 1 || face > models.DieSides || singleScores[face] == 0 {
		return 0, false
	}
	return singleScores[face], true
}
