package core

// RuntimeConfig contains configuration passed to front-ends at startup.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for reproducible spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}

// GameState summarizes a game for the platform layer.
type GameState struct {
	Score    int  // Current score
	Running  bool // Whether moves are accepted
	GameOver bool // Whether the game has ended (won or lost)
	Won      bool // Whether the game ended by reaching the target
}

// StepResult is returned after applying one input frame.
type StepResult struct {
	State   GameState
	Changed bool // Whether the board changed and needs a redraw
}
