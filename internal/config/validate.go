package config

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors.
var (
	ErrArenaTooSmall   = errors.New("config: arena must be at least 3x3")
	ErrTickInterval    = errors.New("config: tick_interval must be positive")
	ErrNoHealth        = errors.New("config: player health must be positive")
	ErrInteriorCovered = errors.New("config: walls cover the whole interior")
	ErrPlayerPlacement = errors.New("config: player must start on a free interior cell")
)

// Validate checks that the configuration can produce a playable game.
func (c GameConfig) Validate() error {
	if c.Arena.Width < 3 || c.Arena.Height < 3 {
		return fmt.Errorf("%w (got %dx%d)", ErrArenaTooSmall, c.Arena.Width, c.Arena.Height)
	}
	if c.TickInterval <= 0 {
		return ErrTickInterval
	}
	if c.Player.Health == 0 {
		return ErrNoHealth
	}
	if c.Arena.RandomWalls < 0 {
		return fmt.Errorf("config: random_walls must not be negative (got %d)", c.Arena.RandomWalls)
	}

	for i, e := range c.Enemies {
		if e.Speed < 0 {
			return fmt.Errorf("config: enemy %d has negative speed %v", i, e.Speed)
		}
	}

	// Pre-placed walls must be inside the arena; ring cells are walls anyway.
	interior := make(map[WallConfig]struct{})
	for i, w := range c.Walls {
		if w.X >= c.Arena.Width || w.Y >= c.Arena.Height {
			return fmt.Errorf("config: wall %d at (%d, %d) is outside the %dx%d arena",
				i, w.X, w.Y, c.Arena.Width, c.Arena.Height)
		}
		if c.Arena.IsInterior(w.X, w.Y) {
			interior[w] = struct{}{}
		}
	}

	// The collectible needs at least one free interior cell.
	if len(interior) >= c.Arena.InteriorCells() {
		return ErrInteriorCovered
	}

	// The player starts inside the ring and off every pre-placed wall.
	p := c.Player
	if math.IsNaN(p.X) || math.IsNaN(p.Y) ||
		p.X < 1 || p.Y < 1 || p.X >= float64(c.Arena.Width-1) || p.Y >= float64(c.Arena.Height-1) {
		return fmt.Errorf("%w: (%v, %v) is outside the %dx%d interior",
			ErrPlayerPlacement, p.X, p.Y, c.Arena.Width, c.Arena.Height)
	}
	cell := WallConfig{X: uint16(p.X), Y: uint16(p.Y)}
	if _, ok := interior[cell]; ok {
		return fmt.Errorf("%w: (%v, %v) is a wall", ErrPlayerPlacement, p.X, p.Y)
	}

	return nil
}
