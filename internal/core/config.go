package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of the game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Phase    string // Name of the active state machine state
	Map      string // Name of the loaded map
	Coins    int
	Keys     int
	Lives    int
	GameOver bool // Whether the game over screen is showing
	Finished bool // Whether the end game screen is showing
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
