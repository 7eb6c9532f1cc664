package models

// Player is a participant in a local match. The name is fixed at creation and
// points only grow through Award.
type Player struct {
	name   string
	points int
}

// NewPlayer creates a player with zero banked points
func NewPlayer(name string) *Player {
	return &Player{name: name}
}

// Name is the display name of the player
func (p *Player) Name() string {
	return p.name
}

// Points is the player's banked total
func (p *Player) Points() int {
	return p.points
}

// Award adds points to the banked total. Non-positive amounts are ignored.
func (p *Player) Award(points int) {
	if points <= 0 {
		return
	}
	p.points += points
}
