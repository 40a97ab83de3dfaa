package config

import (
	_ "embed"
)

//go:embed defaults/adventure.yaml
var defaultAdventureYAML []byte

// DefaultAdventureConfig returns the default configuration.
func DefaultAdventureConfig() AdventureConfig {
	return AdventureConfig{
		Start: StartConfig{
			Map:   "central",
			X:     5,
			Y:     11,
			Level: 1,
		},
		Player: PlayerConfig{
			Lives:      2,
			TotalCoins: 10,
		},
		Timing: TimingConfig{
			TickRate:          60,
			HoldTicks:         8,
			ContinueCountdown: 10,
		},
		ShowPlayer: ShowPlayerConfig{
			Vertical:   12,
			Horizontal: 8,
			Doorway:    8,
		},
	}
}
