package core

import "time"

// RuntimeConfig contains configuration passed to terminal backends at startup.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters (arena + margin)
	ScreenH      int           // Screen height in characters (arena + HUD)
	TickInterval time.Duration // Fixed simulation tick length
	Seed         int64         // RNG seed; 0 means derive from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      51,
		TickInterval: 50 * time.Millisecond,
		Seed:         0, // 0 means use current time in the CLI
	}
}

// HUDRows is the number of rows the HUD occupies below the arena.
const HUDRows = 3
