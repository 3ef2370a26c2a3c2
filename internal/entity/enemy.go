package entity

import "github.com/vovakirdan/tui-chase/internal/core"

// Enemy chases the player at a fixed speed.
type Enemy struct {
	position core.Point2D[float64]
	speed    float64
}

// NewEnemy creates an enemy at the origin with the given pursuit speed.
func NewEnemy(speed float64) *Enemy {
	return &Enemy{
		position: core.NewPoint(0.0, 0.0),
		speed:    speed,
	}
}

// Speed returns the fixed pursuit speed.
func (e *Enemy) Speed() float64 {
	return e.speed
}

// Position returns the enemy's continuous position.
func (e *Enemy) Position() core.Point2D[float64] {
	return e.position
}

// SetPosition moves the enemy, keeping its heading.
func (e *Enemy) SetPosition(pos core.Point2D[float64]) {
	e.position.X = pos.X
	e.position.Y = pos.Y
}

// Pursue steps speed units straight toward target. When the enemy already
// sits exactly on target there is no direction to move in, so it stays put
// and Pursue reports false.
func (e *Enemy) Pursue(target core.Point2D[float64]) bool {
	d := core.Sub(target, e.position)
	length := core.Length(d)
	if length == 0 {
		return false
	}
	e.position.X += e.speed * d.X / length
	e.position.Y += e.speed * d.Y / length
	return true
}
