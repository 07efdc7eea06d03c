package game

import "math"

// Snapshot captures the simulation state in primitive types, used by the
// determinism tests to compare two runs tick for tick.
type Snapshot struct {
	Tick     int
	ShipX    int // Fixed-point, 1/1000 cell
	ShipVelX int
	Hull     int
	Score    int
	GameOver bool

	// Asteroid state (each asteroid is 6 ints: ID, X, Y, VY, Class, Mined)
	AsteroidCount int
	AsteroidData  []int

	// Mining unit state (each unit is 5 ints: ID, X, Y, State, TargetID)
	MinerCount int
	MinerData  []int

	PulseCount  int
	ActivePairs int
}

// fixed converts a coordinate to its fixed-point snapshot form.
func fixed(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current simulation state.
func (st *State) Snapshot() Snapshot {
	asteroidData := make([]int, 0, len(st.asteroids)*6)
	for _, a := range st.asteroids {
		mined := 0
		if a.Mined {
			mined = 1
		}
		asteroidData = append(asteroidData,
			a.ID, fixed(a.Pos.X), fixed(a.Pos.Y), fixed(a.Vel.Y), int(a.Class), mined)
	}

	minerData := make([]int, 0, len(st.miners)*5)
	for _, m := range st.miners {
		minerData = append(minerData,
			m.ID, fixed(m.Pos.X), fixed(m.Pos.Y), int(m.State), m.TargetID)
	}

	return Snapshot{
		Tick:          st.tickCount,
		ShipX:         fixed(st.ship.Pos.X),
		ShipVelX:      fixed(st.ship.Vel.X),
		Hull:          st.ship.Hull,
		Score:         st.Score(),
		GameOver:      st.gameOver,
		AsteroidCount: len(st.asteroids),
		AsteroidData:  asteroidData,
		MinerCount:    len(st.miners),
		MinerData:     minerData,
		PulseCount:    len(st.pulses),
		ActivePairs:   st.mining.ActivePairs(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- tick count is always positive
	mix := func(v int) {
		h = h*31 + uint64(uint32(v)) //#nosec G115 -- hash computation
	}
	mix(snap.ShipX)
	mix(snap.ShipVelX)
	mix(snap.Hull)
	mix(snap.Score)
	if snap.GameOver {
		mix(1)
	}
	mix(snap.AsteroidCount)
	for _, v := range snap.AsteroidData {
		mix(v)
	}
	mix(snap.MinerCount)
	for _, v := range snap.MinerData {
		mix(v)
	}
	mix(snap.PulseCount)
	mix(snap.ActivePairs)
	return h
}
