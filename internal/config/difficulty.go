package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. An empty value is normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// LivesForPreset returns the spare lives a preset grants.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 0
	default:
		return 2
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *AdventureConfig, preset DifficultyPreset) {
	cfg.Player.Lives = LivesForPreset(preset)

	// A harder game leaves less time to take the continue.
	switch preset {
	case DifficultyEasy:
		cfg.Timing.ContinueCountdown = 15
	case DifficultyHard:
		cfg.Timing.ContinueCountdown = 5
	}
}
