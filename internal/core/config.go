package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	Difficulty string // Difficulty preset name; empty uses the game config's preset
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
	Score    int  // Current score
	Lines    int  // Total rows cleared this session
	Level    int  // Current difficulty level
	Words    int  // Words completed this session
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	EventPieceLocked EventKind = iota
	EventWordCompleted
	EventLinesCleared
	EventGameOver
)

// Event describes a single occurrence during a simulation step.
// The platform consumes events for score flashes and similar feedback;
// games never depend on anyone observing them.
type Event struct {
	Kind  EventKind
	Rows  int    // Rows cleared simultaneously (EventLinesCleared)
	Score int    // Points awarded by this event, if any
	Word  string // Completed word (EventWordCompleted)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
