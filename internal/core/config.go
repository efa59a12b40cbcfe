package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TargetFPS int   // Frame scheduler target (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TargetFPS: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score
	Paused bool // Whether the game is paused
	Solved bool // Whether the current puzzle is complete
}

// Solve records one finished puzzle for persistence and the scoreboard.
type Solve struct {
	Moves     int
	Elapsed   time.Duration
	BoardSize int
}

// StepResult is returned by Game.Update after each simulation step.
// Solve is non-nil exactly once per finished puzzle.
type StepResult struct {
	State GameState
	Solve *Solve
}
