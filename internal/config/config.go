// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import "time"

// GameConfig contains everything needed to build a game. It is read once at
// startup and never changes while the game runs.
type GameConfig struct {
	Arena        ArenaConfig   `yaml:"arena"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Player       PlayerConfig  `yaml:"player"`
	Enemies      []EnemyConfig `yaml:"enemies"`
	Walls        []WallConfig  `yaml:"walls"`
}

// ArenaConfig defines the playing field. The outermost ring of cells is
// always wall.
type ArenaConfig struct {
	Width       uint16 `yaml:"width"`
	Height      uint16 `yaml:"height"`
	RandomWalls int    `yaml:"random_walls"` // Interior walls scattered at random
}

// PlayerConfig defines the player's starting state.
type PlayerConfig struct {
	Health uint8   `yaml:"health"`
	Speed  float64 `yaml:"speed"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Sector int8    `yaml:"sector"` // Starting heading, 0 = east, clockwise
}

// EnemyConfig defines a single pursuer.
type EnemyConfig struct {
	Speed float64 `yaml:"speed"`
}

// WallConfig is a pre-placed wall cell.
type WallConfig struct {
	X uint16 `yaml:"x"`
	Y uint16 `yaml:"y"`
}

// InteriorCells returns how many cells lie inside the boundary ring.
func (a ArenaConfig) InteriorCells() int {
	if a.Width < 3 || a.Height < 3 {
		return 0
	}
	return int(a.Width-2) * int(a.Height-2)
}

// IsInterior reports whether (x, y) lies strictly inside the boundary ring.
func (a ArenaConfig) IsInterior(x, y uint16) bool {
	return x >= 1 && y >= 1 && x+1 < a.Width && y+1 < a.Height
}
