package match

import (
	"cmp"
	"slices"

	"github.com/KirkDiggler/farkle/internal/models"
)

// RankPlayers orders players by banked points, highest first. Equal scores
// keep turn order and still get distinct ranks.
func RankPlayers(players []*models.Player) []*models.Standing {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b *models.Player) int {
		return cmp.Compare(b.Points(), a.Points())
	})

	standings := make([]*models.Standing, len(sorted))
	for i, player := range sorted {
		standings[i] = &models.Standing{
			Rank:   i + 1,
			Name:   player.Name(),
			Points: player.Points(),
		}
	}
	return standings
}
