package models

const (
	// DieSides is the number of faces on every die
	DieSides = 6

	// TotalDice is the number of dice in a fresh roll
	TotalDice = 5

	// EntryThreshold is the round or banked score a player needs before
	// round points are added to their total
	EntryThreshold = 300

	// FinalRoundThreshold is the banked score that starts the final round
	FinalRoundThreshold = 3000
)
