package match

import (
	"testing"

	"github.com/KirkDiggler/farkle/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankPlayersSortsByPointsDescending(t *testing.T) {
	players := newPlayers("Alpha", "Beta", "Gamma")
	players[0].Award(600)
	players[1].Award(3250)
	players[2].Award(1800)

	standings := RankPlayers(players)
	require.Len(t, standings, 3)

	assert.Equal(t, []*models.Standing{
		{Rank: 1, Name: "Beta", Points: 3250},
		{Rank: 2, Name: "Gamma", Points: 1800},
		{Rank: 3, Name: "Alpha", Points: 600},
	}, standings)
}

func TestRankPlayersKeepsTurnOrderForTies(t *testing.T) {
	players := newPlayers("Alpha", "Beta", "Gamma", "Delta")
	players[1].Award(900)
	players[2].Award(900)
	players[3].Award(1200)

	standings := RankPlayers(players)

	names := make([]string, len(standings))
	for i, standing := range standings {
		names[i] = standing.Name
	}
	assert.Equal(t, []string{"Delta", "Beta", "Gamma", "Alpha"}, names)
	assert.Equal(t, 2, standings[1].Rank)
	assert.Equal(t, 3, standings[2].Rank)
}

func TestRankPlayersDoesNotReorderInput(t *testing.T) {
	players := newPlayers("Alpha", "Beta")
	players[1].Award(500)

	RankPlayers(players)

	assert.Equal(t, "Alpha", players[0].Name())
}

func TestRankPlayersEmpty(t *testing.T) {
	assert.Empty(t, RankPlayers(nil))
}
