package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScaling holds the per-preset adjustments.
type presetScaling struct {
	enemySpeed  float64 // Multiplier applied to every enemy speed
	healthBonus int     // Added to starting health
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {enemySpeed: 0.75, healthBonus: 5},
	DifficultyNormal: {enemySpeed: 1.0, healthBonus: 0},
	DifficultyHard:   {enemySpeed: 1.5, healthBonus: -5},
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(name)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
	return p, nil
}

// ApplyPreset modifies the config based on a difficulty preset.
// Starting health never drops below 1.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	scaling, ok := presets[preset]
	if !ok {
		return
	}

	for i := range cfg.Enemies {
		cfg.Enemies[i].Speed *= scaling.enemySpeed
	}

	health := int(cfg.Player.Health) + scaling.healthBonus
	cfg.Player.Health = uint8(min(max(health, 1), 255))
}
