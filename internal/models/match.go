package models

import (
	"time"
)

// MatchStatus represents the current phase of a match
type MatchStatus string

const (
	// MatchStatusSetup indicates players are still being registered
	MatchStatusSetup MatchStatus = "setup"

	// MatchStatusRoundPlay indicates regular round-robin play
	MatchStatusRoundPlay MatchStatus = "round_play"

	// MatchStatusFinalRound indicates a player crossed the final round threshold
	MatchStatusFinalRound MatchStatus = "final_round"

	// MatchStatusComplete indicates the match has been ranked
	MatchStatusComplete MatchStatus = "complete"
)

// Standing is a player's final placement
type Standing struct {
	// Rank is the 1-based position in the final order
	Rank int

	// Name is the display name of the player
	Name string

	// Points is the banked total at the end of the match
	Points int
}

// MatchResult is the record of a finished match
type MatchResult struct {
	// ID is the unique identifier for the match
	ID string

	// Standings in rank order
	Standings []*Standing

	// Rounds is the number of regular rounds started
	Rounds int

	// StartedAt is when play began
	StartedAt time.Time

	// CompletedAt is when the standings were produced
	CompletedAt time.Time
}

// Winner returns the first placed standing, or nil for an empty result
func (m *MatchResult) Winner() *Standing {
	if m == nil || len(m.Standings) == 0 {
		return nil
	}
	return m.Standings[0]
}

// PlayerRecord aggregates a player's results across finished matches
type PlayerRecord struct {
	Name        string
	GamesPlayed int
	Wins        int
	BestScore   int
	TotalPoints int
}
