package dice

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/KirkDiggler/farkle/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/farkle/internal/dice Roller

// Roller throws six-sided dice
type Roller interface {
	// Roll returns count values, each uniform over 1..6
	Roll(count int) []int
}

// SeededRoller is a Roller backed by a PCG source
type SeededRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed uint64
}

// New creates a new dice roller
func New(cfg *Config) *SeededRoller {
	var seed uint64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = uint64(time.Now().UnixNano())
	}

	return &SeededRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll throws count dice. A non-positive count yields an empty roll.
func (r *SeededRoller) Roll(count int) []int {
	if count < 1 {
		return []int{}
	}

	faces := make([]int, count)
	for i := range faces {
		faces[i] = r.random.Intn(models.DieSides) + 1
	}
	return faces
}
