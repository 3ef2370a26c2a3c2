package entity

import (
	"math"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// speedStep is how much one Accelerate or Decelerate changes speed.
const speedStep = 0.1

// faces are indexed by health-1; low health looks worse.
var faces = []rune("😭😱😨😫😩😧😖😞😑😐")

// Player is the user-controlled actor.
type Player struct {
	position   core.Point2D[float64]
	speed      float64
	health     uint8
	noClip     bool
	speedLimit bool
	invincible bool
}

// NewPlayer creates a player at pos with the given speed and health.
// The speed limit starts enabled.
func NewPlayer(pos core.Point2D[float64], speed float64, health uint8) *Player {
	return &Player{
		position:   pos,
		speed:      speed,
		health:     health,
		speedLimit: true,
	}
}

// Position returns the player's continuous position and heading.
func (p *Player) Position() core.Point2D[float64] {
	return p.position
}

// SetPosition replaces the position, heading included.
func (p *Player) SetPosition(pos core.Point2D[float64]) {
	p.position = pos
}

// IsAlive reports whether health is above zero.
func (p *Player) IsAlive() bool {
	return p.health > 0
}

// TakeDamage subtracts damage from health, stopping at zero.
// Does nothing while invincibility is on.
func (p *Player) TakeDamage(damage uint8) {
	if p.invincible {
		return
	}
	if p.health >= damage {
		p.health -= damage
	} else {
		p.health = 0
	}
}

// Health returns remaining health.
func (p *Player) Health() uint8 {
	return p.health
}

// UnlimitedHealth sets health to its maximum value.
func (p *Player) UnlimitedHealth() {
	p.health = math.MaxUint8
}

// Speed returns the distance moved per tick.
func (p *Player) Speed() float64 {
	return p.speed
}

// Accelerate adds one speed step. With the speed limit on, the last step
// snaps to exactly 1.0 instead of overshooting.
func (p *Player) Accelerate() {
	if p.speed <= 1.0-speedStep || !p.speedLimit {
		p.speed += speedStep
	} else {
		p.speed = 1.0
	}
}

// Decelerate removes one speed step. With the speed limit on, the last step
// snaps to exactly 0.0.
func (p *Player) Decelerate() {
	if p.speed >= speedStep || !p.speedLimit {
		p.speed -= speedStep
	} else {
		p.speed = 0.0
	}
}

// MoveForward advances the player along its heading at the current speed.
func (p *Player) MoveForward() {
	core.MoveForward(&p.position, p.speed)
}

// ForwardCell returns the grid cell MoveForward would land in.
func (p *Player) ForwardCell() core.Point2D[uint16] {
	return core.ToCell(core.SimulateMoveForward(p.position, p.speed))
}

// TurnLeft rotates the heading one sector counter-clockwise.
func (p *Player) TurnLeft() {
	p.position.Turn(-1)
}

// TurnRight rotates the heading one sector clockwise.
func (p *Player) TurnRight() {
	p.position.Turn(1)
}

func (p *Player) ToggleNoClip()        { p.noClip = !p.noClip }
func (p *Player) ToggleSpeedLimit()    { p.speedLimit = !p.speedLimit }
func (p *Player) ToggleInvincibility() { p.invincible = !p.invincible }

func (p *Player) NoClip() bool     { return p.noClip }
func (p *Player) SpeedLimit() bool { return p.speedLimit }
func (p *Player) Invincible() bool { return p.invincible }

// Face returns the glyph for the current health.
func (p *Player) Face() rune {
	switch {
	case p.health == 0:
		return '💀'
	case int(p.health) > len(faces):
		return faces[len(faces)-1]
	default:
		return faces[p.health-1]
	}
}
