package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
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

// GameState represents the externally visible state of the game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Hull     int  // Remaining ship health
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventShipHit EventKind = iota
	EventShipDestroyed
	EventMiningStarted
	EventMiningInterrupted
	EventMiningCompleted
	EventAsteroidShot
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShipHit:
		return "ShipHit"
	case EventShipDestroyed:
		return "ShipDestroyed"
	case EventMiningStarted:
		return "MiningStarted"
	case EventMiningInterrupted:
		return "MiningInterrupted"
	case EventMiningCompleted:
		return "MiningCompleted"
	case EventAsteroidShot:
		return "AsteroidShot"
	default:
		return "Unknown"
	}
}

// Event is a single notable occurrence within a tick. Precious reports
// the value class of the asteroid involved, where one is involved.
type Event struct {
	Kind     EventKind
	Precious bool
}
