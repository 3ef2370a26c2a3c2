package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultGameConfig returns the built-in configuration used when no YAML is
// available at all: an 80x48 arena without scattered walls and three enemies.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Width:       80,
			Height:      48,
			RandomWalls: 0,
		},
		TickInterval: 50 * time.Millisecond,
		Player: PlayerConfig{
			Health: 10,
			Speed:  0.0,
			X:      30,
			Y:      15,
		},
		Enemies: []EnemyConfig{
			{Speed: 0.6},
			{Speed: 0.5},
			{Speed: 0.4},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultChaseYAML
}
