package game

import "github.com/vovakirdan/jangam/internal/core"

// Resolver detects overlapping entity pairs once per tick and applies the
// interaction rules. The rules form an explicit dispatch table keyed by
// the pair of entity kinds, evaluated in priority order; because a
// destroyed entity is marked dead immediately, an asteroid is resolved at
// most once per tick no matter how many pairs reference it.
type Resolver struct {
	rules []rule
}

// rule binds a pair of entity kinds to its interaction handler.
type rule struct {
	a, b Kind
	fn   func(st *State) []core.Event
}

// NewResolver creates a resolver with the standard rule set.
func NewResolver() *Resolver {
	r := &Resolver{}
	r.rules = []rule{
		{KindShip, KindAsteroid, r.shipVsAsteroid},
		{KindMiner, KindAsteroid, r.minerAttach},
		{KindAsteroid, KindMiner, r.strikeAttached},
		{KindPulse, KindAsteroid, r.pulseVsAsteroid},
	}
	return r
}

// Resolve runs all rules in priority order and returns the events emitted
// this tick.
func (r *Resolver) Resolve(st *State) []core.Event {
	var events []core.Event
	for _, rl := range r.rules {
		events = append(events, rl.fn(st)...)
	}
	return events
}

// shipVsAsteroid: a free asteroid striking the ship is destroyed and the
// ship takes damage scaled by the asteroid's value class.
func (r *Resolver) shipVsAsteroid(st *State) []core.Event {
	var events []core.Event
	shipBox := st.ship.Bounds()

	for _, a := range st.asteroids {
		if !a.Alive || a.Mined {
			continue
		}
		if !a.Bounds().Overlaps(shipBox) {
			continue
		}

		st.destroyAsteroid(a, true)
		st.ship.Hull -= st.rules.Asteroids.DamagePlain
		if a.Class == ClassPrecious {
			st.ship.Hull -= st.rules.Asteroids.DamagePrecious - st.rules.Asteroids.DamagePlain
		}

		if st.ship.Hull <= 0 {
			st.ship.Hull = 0
			events = append(events, core.Event{Kind: core.EventShipDestroyed, Precious: a.Class == ClassPrecious})
		} else {
			events = append(events, core.Event{Kind: core.EventShipHit, Precious: a.Class == ClassPrecious})
		}
	}
	return events
}

// minerAttach: an in-flight mining unit striking a free asteroid attaches
// to it. The asteroid is immobilized and the unit's position is slaved to
// it until the attachment is resolved.
func (r *Resolver) minerAttach(st *State) []core.Event {
	var events []core.Event

	for _, m := range st.miners {
		if !m.Alive || m.State != MinerInFlight {
			continue
		}
		box := m.Bounds()
		for _, a := range st.asteroids {
			if !a.Alive || a.Mined {
				continue
			}
			if !box.Overlaps(a.Bounds()) {
				continue
			}

			st.attach(m, a)
			events = append(events, core.Event{Kind: core.EventMiningStarted, Precious: a.Class == ClassPrecious})
			break // one target per unit
		}
	}
	return events
}

// strikeAttached: a free asteroid colliding with an attached mining unit
// or its target asteroid snaps the unit off: both the unit and its target
// are destroyed without completion bonus; the striker survives and keeps
// moving.
func (r *Resolver) strikeAttached(st *State) []core.Event {
	var events []core.Event

	for _, striker := range st.asteroids {
		if !striker.Alive || striker.Mined {
			continue
		}
		strikerBox := striker.Bounds()

		for _, m := range st.miners {
			if !m.Alive || m.State != MinerAttached {
				continue
			}
			target := st.asteroidByID(m.TargetID)
			if target == nil {
				continue
			}

			if !strikerBox.Overlaps(m.Bounds()) && !strikerBox.Overlaps(target.Bounds()) {
				continue
			}

			st.mining.Drop(m.ID)
			st.destroyMiner(m, true)
			st.destroyAsteroid(target, true)
			events = append(events, core.Event{Kind: core.EventMiningInterrupted, Precious: target.Class == ClassPrecious})
		}
	}
	return events
}

// pulseVsAsteroid: cannon fire destroys free asteroids on contact; the
// pulse is spent. Asteroids being mined are not affected, mining can only
// be interrupted by another asteroid.
func (r *Resolver) pulseVsAsteroid(st *State) []core.Event {
	var events []core.Event

	for _, p := range st.pulses {
		if !p.Alive {
			continue
		}
		box := p.Bounds()
		for _, a := range st.asteroids {
			if !a.Alive || a.Mined {
				continue
			}
			if !box.Overlaps(a.Bounds()) {
				continue
			}

			p.Alive = false
			st.destroyAsteroid(a, true)
			st.shotDown++
			events = append(events, core.Event{Kind: core.EventAsteroidShot, Precious: a.Class == ClassPrecious})
			break // a pulse is spent on its first hit
		}
	}
	return events
}
