package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (render target)
	ScreenH  int   // Terminal height in characters (render target)
	TickRate int   // Frames per second requested from the frame driver
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// FrameTime is the timing sample a frame driver hands to the simulation.
type FrameTime struct {
	Delta float64 // Seconds since the previous frame
	Now   float64 // Wall clock, milliseconds since the Unix epoch
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Lives remaining in the round
	Mode     string // Human-readable mode name
	Frozen   bool   // Paddle is currently ignoring input
	GameOver bool   // Round finished (won or died)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
