package entity

import "github.com/vovakirdan/tui-chase/internal/core"

// Collectible is the item the player picks up for score. It is relocated,
// never destroyed, when collected.
type Collectible struct {
	position core.Point2D[uint16]
}

// NewCollectible creates a collectible at (x, y).
func NewCollectible(x, y uint16) *Collectible {
	return &Collectible{position: core.NewPoint(x, y)}
}

func (c *Collectible) Position() core.Point2D[uint16] {
	return c.position
}

func (c *Collectible) SetPosition(pos core.Point2D[uint16]) {
	c.position.X = pos.X
	c.position.Y = pos.Y
}
