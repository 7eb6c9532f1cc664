package models

// Roll is one throw of the dice in play and how it scored
type Roll struct {
	// Faces are the die values in the order they were rolled
	Faces []int

	// Points awarded for this throw
	Points int

	// DiceUsed is how many of the faces contributed to Points
	DiceUsed int
}

// IsBust reports whether the throw scored nothing
func (r *Roll) IsBust() bool {
	return r.Points == 0
}

// IsHotDice reports whether every die in the throw scored
func (r *Roll) IsHotDice() bool {
	return r.Points > 0 && r.DiceUsed >= len(r.Faces)
}
