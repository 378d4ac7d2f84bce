package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// TickDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int           // Furthest progress this round
	Best      int           // Best score seen this session
	GameOver  bool          // Whether the current round has ended
	Phase     string        // Human-readable phase name
	RoundID   string        // Identifier of the round the state belongs to
	EndReason string        // Why the round ended, empty while running
	Moves     int           // Validated moves this round
	Elapsed   time.Duration // Simulated time since the round went active
}

// StepResult is returned by Game.Step() after each simulation tick.
// Err is set when the game cannot continue (e.g. a round failed to build).
type StepResult struct {
	State GameState
	Err   error
}
