package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for seeded simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for monster spawning
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (team total for co-op games)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished co-op run for persistence.
type RunSummary struct {
	Outcome string // "victory" or "defeat"
	Level   int    // Level reached when the run ended
	Score1  int    // Player 1 final score
	Score2  int    // Player 2 final score
	Frames  int    // Simulated frames played
}

// LogEvent is a notable game moment forwarded to the platform logger.
// Keyvals alternate key and value, as accepted by structured loggers.
type LogEvent struct {
	Msg     string
	Keyvals []any
	Verbose bool // routine events, logged at debug level
	Warn    bool // problems the player should know about
}
