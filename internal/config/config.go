// Package config provides YAML-based configuration loading and difficulty
// presets for the adventure.
package config

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// AdventureConfig contains all configuration for a game.
type AdventureConfig struct {
	Start      StartConfig      `yaml:"start"`
	Player     PlayerConfig     `yaml:"player"`
	Timing     TimingConfig     `yaml:"timing"`
	Maps       MapsConfig       `yaml:"maps"`
	ShowPlayer ShowPlayerConfig `yaml:"show_player"`
}

// StartConfig is where a new game begins.
type StartConfig struct {
	Map   string `yaml:"map"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Level int    `yaml:"level"`
}

// PlayerConfig defines the player's allowance.
type PlayerConfig struct {
	Lives      int `yaml:"lives"`       // spare lives; the game ends when they run out
	TotalCoins int `yaml:"total_coins"` // coins hidden across all maps
}

// TimingConfig defines tick rate and input timing.
type TimingConfig struct {
	TickRate          int `yaml:"tick_rate"`          // ticks per second
	HoldTicks         int `yaml:"hold_ticks"`         // ticks a key press keeps its direction held
	ContinueCountdown int `yaml:"continue_countdown"` // seconds to accept a continue after dying
}

// MapsConfig locates map files.
type MapsConfig struct {
	Dir   string `yaml:"dir"`   // directory overriding the built-in maps
	Watch bool   `yaml:"watch"` // reload maps from Dir when they change
}

// ShowPlayerConfig is how many ticks the player walks in after entering a
// map: from an edge crossed vertically, horizontally, or through a doorway.
type ShowPlayerConfig struct {
	Vertical   int `yaml:"vertical"`
	Horizontal int `yaml:"horizontal"`
	Doorway    int `yaml:"doorway"`
}

// Ticks returns the walk-in length after crossing b. BoundaryNone is a doorway.
func (s ShowPlayerConfig) Ticks(b core.Boundary) int {
	switch b {
	case core.BoundaryUp, core.BoundaryDown:
		return s.Vertical
	case core.BoundaryLeft, core.BoundaryRight:
		return s.Horizontal
	default:
		return s.Doorway
	}
}

// sanitize replaces out-of-range values with the defaults.
func (c *AdventureConfig) sanitize() {
	d := DefaultAdventureConfig()
	if c.Start.Map == "" {
		c.Start.Map = d.Start.Map
	}
	if c.Start.Level <= 0 {
		c.Start.Level = d.Start.Level
	}
	if c.Player.TotalCoins <= 0 {
		c.Player.TotalCoins = d.Player.TotalCoins
	}
	if c.Player.Lives < 0 {
		c.Player.Lives = d.Player.Lives
	}
	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = d.Timing.TickRate
	}
	if c.Timing.HoldTicks <= 0 {
		c.Timing.HoldTicks = d.Timing.HoldTicks
	}
	if c.Timing.ContinueCountdown <= 0 {
		c.Timing.ContinueCountdown = d.Timing.ContinueCountdown
	}
	if c.ShowPlayer.Vertical <= 0 {
		c.ShowPlayer.Vertical = d.ShowPlayer.Vertical
	}
	if c.ShowPlayer.Horizontal <= 0 {
		c.ShowPlayer.Horizontal = d.ShowPlayer.Horizontal
	}
	if c.ShowPlayer.Doorway <= 0 {
		c.ShowPlayer.Doorway = d.ShowPlayer.Doorway
	}
}
