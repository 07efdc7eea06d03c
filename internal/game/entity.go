// Package game implements the asteroid-mining game core: a ship moving along
// the bottom of the field, asteroids falling from the top, and mining units
// that latch onto asteroids and convert them into score over time.
//
// The package is pure simulation. It consumes core.InputFrame snapshots and
// renders into a core.Screen; all timing, input polling, and terminal
// handling live in the platform layer.
package game

import "github.com/vovakirdan/jangam/internal/core"

// Kind tags the closed set of entity variants. Collision rules are
// enumerated over pairs of kinds, so every interaction is testable.
type Kind int

const (
	KindShip Kind = iota
	KindAsteroid
	KindMiner
	KindPulse
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "Ship"
	case KindAsteroid:
		return "Asteroid"
	case KindMiner:
		return "Miner"
	case KindPulse:
		return "Pulse"
	default:
		return "Unknown"
	}
}

// ValueClass is the asteroid category determining score rate and damage.
type ValueClass int

const (
	ClassPlain ValueClass = iota
	ClassPrecious
)

// String returns a human-readable name for the value class.
func (c ValueClass) String() string {
	if c == ClassPrecious {
		return "precious"
	}
	return "plain"
}

// Entity is the shared representation for all game objects: position,
// velocity, bounding size, and liveness. The only behavior is linear
// position integration; interaction rules live in the resolver.
type Entity struct {
	Kind  Kind
	Pos   core.Vec // Top-left corner, continuous cell coordinates
	Vel   core.Vec // Cells per second
	W, H  float64
	Alive bool
}

// Advance integrates the position by one time step.
func (e *Entity) Advance(dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// Bounds returns the axis-aligned bounding box for overlap tests.
func (e *Entity) Bounds() core.Box {
	return core.Box{X: e.Pos.X, Y: e.Pos.Y, W: e.W, H: e.H}
}

// Ship is the player vessel. It moves along a fixed bottom row with
// thrust/braking inertia; vertical velocity is always zero.
type Ship struct {
	Entity
	Hull int
}

// Asteroid falls from the top of the field. While being mined its
// velocity is forced to zero until the attachment is resolved.
type Asteroid struct {
	Entity
	ID    int
	Class ValueClass
	Mined bool // true while a mining unit is attached
}

// MinerState is the lifecycle state of a mining unit.
type MinerState int

const (
	// MinerInFlight means the unit is unattached and moving upward.
	MinerInFlight MinerState = iota
	// MinerAttached means the unit is locked to its target asteroid.
	MinerAttached
)

// Miner is a mining unit. While attached its position is slaved to the
// target asteroid; TargetID is a handle into the game's asteroid set,
// never an owning reference, so the target's liveness is re-checked
// before every use.
type Miner struct {
	Entity
	ID       int
	State    MinerState
	TargetID int // Valid only while State == MinerAttached
}

// Pulse is a single shot of the pulse cannon, travelling straight up.
type Pulse struct {
	Entity
}
