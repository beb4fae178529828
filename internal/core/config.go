package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Ticks survived in the current run
	Speed    float64 // Current obstacle speed in world units per tick
	GameOver bool    // Whether the run has ended
	Paused   bool    // Whether the run is paused
	Airborne bool    // Whether the player is mid-jump
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	Collided bool // The run ended on this tick
	Landed   bool // The player touched down on this tick
	Spawned  int  // Obstacles added on this tick
	Culled   int  // Obstacles removed on this tick
}
