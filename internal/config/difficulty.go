package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 10
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset adjusts cfg for a named preset. An empty preset leaves cfg
// untouched.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
	default:
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}
	cfg.Levels.Start = StartLevelForPreset(preset)
	cfg.Levels.Progression = !IsFixedPreset(preset)
	return nil
}
