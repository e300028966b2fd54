package core

// RuntimeConfig carries the terminal-dependent settings a game is reset with.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters, help line excluded
	TickRate int   // Frames per second (default 60)
	Seed     int64 // Piece sequence seed; 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 screen at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the summary a game reports to the platform after each frame.
type GameState struct {
	Score    int
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
