package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/jangam/internal/config"
	"github.com/vovakirdan/jangam/internal/core"
)

// hudRows is the number of screen rows reserved for the HUD at the top.
const hudRows = 1

// burstTicks is how long an explosion marker stays on screen.
const burstTicks = 12

// burst is a short-lived explosion marker at a destruction site.
type burst struct {
	x, y      int
	remaining int
}

// State owns all live entities, the ship hull, the score, and the
// win/loss condition. It is the single mutator: one Step call per
// rendered frame, no internal goroutines, no shared mutable globals.
type State struct {
	cfg   core.RuntimeConfig
	rules config.GameConfig
	rng   *rand.Rand
	dt    float64 // seconds per tick

	fieldW float64
	fieldH float64

	ship      *Ship
	asteroids []*Asteroid
	miners    []*Miner
	pulses    []*Pulse
	bursts    []burst

	spawner  *Spawner
	resolver *Resolver
	mining   *MiningController
	stars    *Starfield

	score         float64
	plainMined    int
	preciousMined int
	shotDown      int

	thrustLeft  bool
	thrustRight bool
	cooldown    int
	nextID      int

	tickCount int
	elapsed   float64
	gameOver  bool
	paused    bool
}

// New creates a game with the default gameplay configuration.
func New() *State {
	return NewWithRules(config.DefaultGameConfig())
}

// NewWithRules creates a game with a custom gameplay configuration.
func NewWithRules(rules config.GameConfig) *State {
	return &State{rules: rules}
}

// ID returns the identifier used for CLI commands and score storage.
func (st *State) ID() string {
	return "jangam"
}

// Title returns the display name.
func (st *State) Title() string {
	return "Jangam"
}

// Reset initializes or restarts the game: ship at full hull in the
// bottom center, no asteroids or units, score zero, Playing phase.
func (st *State) Reset(cfg core.RuntimeConfig) {
	st.cfg = cfg
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
		st.cfg.TickRate = 60
	}
	st.dt = 1.0 / float64(cfg.TickRate)
	st.rng = rand.New(rand.NewSource(cfg.Seed))

	st.fieldW = float64(cfg.ScreenW)
	st.fieldH = float64(cfg.ScreenH - hudRows)

	shipW := float64(st.rules.Ship.Width)
	shipH := float64(st.rules.Ship.Height)
	st.ship = &Ship{
		Entity: Entity{
			Kind:  KindShip,
			Pos:   core.Vec{X: (st.fieldW - shipW) / 2, Y: st.fieldH - shipH},
			W:     shipW,
			H:     shipH,
			Alive: true,
		},
		Hull: st.rules.Ship.Hull,
	}

	st.asteroids = st.asteroids[:0]
	st.miners = st.miners[:0]
	st.pulses = st.pulses[:0]
	st.bursts = st.bursts[:0]

	st.spawner = NewSpawner(st.rng, st.rules.Asteroids, st.fieldW)
	st.resolver = NewResolver()
	if st.mining == nil {
		st.mining = NewMiningController(st.rules.Mining)
	} else {
		st.mining.Reset()
	}
	st.stars = NewStarfield(st.rng, int(st.fieldW), int(st.fieldH))

	st.score = 0
	st.plainMined = 0
	st.preciousMined = 0
	st.shotDown = 0
	st.thrustLeft = false
	st.thrustRight = false
	st.cooldown = 0
	st.nextID = 1
	st.tickCount = 0
	st.elapsed = 0
	st.gameOver = false
	st.paused = false
}

// Step advances the simulation by one tick. Once the game is over no
// further ticks mutate entities.
func (st *State) Step(in core.InputFrame) core.StepResult {
	if st.gameOver {
		return core.StepResult{State: st.State()}
	}

	if in.Has(core.ActionPause) {
		st.paused = !st.paused
	}
	if st.paused {
		return core.StepResult{State: st.State()}
	}

	st.tickCount++
	st.elapsed += st.dt

	st.steerShip(in)
	st.handleLaunch(in)
	st.handleFire(in)

	st.advanceEntities()

	liveAsteroids := 0
	for _, a := range st.asteroids {
		if a.Alive {
			liveAsteroids++
		}
	}
	if a := st.spawner.MaybeSpawn(st.dt, liveAsteroids); a != nil {
		a.ID = st.allocID()
		st.asteroids = append(st.asteroids, a)
	}

	events := st.resolver.Resolve(st)
	events = append(events, st.mining.Advance(st, st.dt)...)

	st.ageBursts()
	st.stars.Advance(st.dt)
	st.compact()

	if st.ship.Hull <= 0 {
		st.gameOver = true
	}

	return core.StepResult{State: st.State(), Events: events}
}

// steerShip applies thrust from input and integrates the ship's
// horizontal motion with braking drag, clamped to the field bounds.
func (st *State) steerShip(in core.InputFrame) {
	st.thrustLeft = in.Has(core.ActionLeft)
	st.thrustRight = in.Has(core.ActionRight)

	accel := st.rules.Ship.Acceleration
	if st.thrustLeft {
		st.ship.Vel.X -= accel * st.dt
	}
	if st.thrustRight {
		st.ship.Vel.X += accel * st.dt
	}
	if !st.thrustLeft && !st.thrustRight {
		// Braking drag toward rest
		drag := st.rules.Ship.Braking * st.dt
		switch {
		case st.ship.Vel.X > drag:
			st.ship.Vel.X -= drag
		case st.ship.Vel.X < -drag:
			st.ship.Vel.X += drag
		default:
			st.ship.Vel.X = 0
		}
	}
	st.ship.Vel.X = core.ClampF(st.ship.Vel.X, -st.rules.Ship.MaxSpeed, st.rules.Ship.MaxSpeed)

	st.ship.Pos.X += st.ship.Vel.X * st.dt
	maxX := st.fieldW - st.ship.W
	if st.ship.Pos.X < 0 {
		st.ship.Pos.X = 0
		st.ship.Vel.X = 0
	} else if st.ship.Pos.X > maxX {
		st.ship.Pos.X = maxX
		st.ship.Vel.X = 0
	}
}

// handleLaunch spawns a mining unit from the ship's nose if the active
// unit capacity allows it.
func (st *State) handleLaunch(in core.InputFrame) {
	if !in.Has(core.ActionLaunch) {
		return
	}
	if st.activeMiners() >= st.rules.Mining.MaxActiveUnits {
		return
	}

	w := float64(st.rules.Mining.UnitWidth)
	h := float64(st.rules.Mining.UnitHeight)
	st.miners = append(st.miners, &Miner{
		Entity: Entity{
			Kind:  KindMiner,
			Pos:   core.Vec{X: st.ship.Pos.X + (st.ship.W-w)/2, Y: st.ship.Pos.Y - h},
			Vel:   core.Vec{Y: -st.rules.Mining.LaunchSpeed},
			W:     w,
			H:     h,
			Alive: true,
		},
		ID:    st.allocID(),
		State: MinerInFlight,
	})
}

// handleFire emits a cannon pulse from the ship's nose, rate-limited by
// the cooldown. Pulse speed is jittered slightly per shot.
func (st *State) handleFire(in core.InputFrame) {
	if st.cooldown > 0 {
		st.cooldown--
	}
	if !st.rules.Weapon.Enabled || !in.Has(core.ActionFire) || st.cooldown > 0 {
		return
	}
	st.cooldown = st.rules.Weapon.CooldownTicks

	speed := st.rules.Weapon.PulseSpeed + st.rng.Float64()*st.rules.Weapon.SpeedJitter
	st.pulses = append(st.pulses, &Pulse{
		Entity: Entity{
			Kind:  KindPulse,
			Pos:   core.Vec{X: st.ship.Pos.X + st.ship.W/2, Y: st.ship.Pos.Y - 1},
			Vel:   core.Vec{Y: -speed},
			W:     1,
			H:     1,
			Alive: true,
		},
	})
}

// advanceEntities integrates every live entity's position and resolves
// viewport exits: units and pulses leaving the top are destroyed
// silently, asteroids leaving the bottom despawn.
func (st *State) advanceEntities() {
	for _, a := range st.asteroids {
		if !a.Alive {
			continue
		}
		a.Advance(st.dt)
		if a.Pos.Y > st.fieldH {
			a.Alive = false
			if a.Mined {
				// Cannot happen: a mined asteroid has zero velocity.
				panic("game: mined asteroid drifted off the field")
			}
		}
	}

	for _, m := range st.miners {
		if !m.Alive {
			continue
		}
		switch m.State {
		case MinerInFlight:
			m.Advance(st.dt)
			if m.Pos.Y+m.H < 0 {
				m.Alive = false // missed shot, no event
			}
		case MinerAttached:
			target := st.asteroidByID(m.TargetID)
			if target == nil {
				// Target resolved out from under us; the controller
				// drops the pair on its next advance.
				m.Alive = false
				continue
			}
			// Position locked to the target's underside.
			m.Pos = core.Vec{X: target.Pos.X + (target.W-m.W)/2, Y: target.Pos.Y + target.H}
		}
	}

	for _, p := range st.pulses {
		if !p.Alive {
			continue
		}
		p.Advance(st.dt)
		if p.Pos.Y+p.H < 0 {
			p.Alive = false
		}
	}
}

// attach locks a mining unit onto an asteroid. Attaching to an asteroid
// that is already being mined is a contract violation.
func (st *State) attach(m *Miner, a *Asteroid) {
	if a.Mined {
		panic("game: asteroid is already being mined")
	}
	a.Mined = true
	a.Vel = core.Vec{}
	m.State = MinerAttached
	m.TargetID = a.ID
	m.Vel = core.Vec{}
	m.Pos = core.Vec{X: a.Pos.X + (a.W-m.W)/2, Y: a.Pos.Y + a.H}
	st.mining.Track(m.ID, a.ID)
}

// destroyAsteroid marks an asteroid dead, optionally leaving a burst.
func (st *State) destroyAsteroid(a *Asteroid, withBurst bool) {
	if !a.Alive {
		return
	}
	a.Alive = false
	if withBurst {
		st.addBurst(a.Pos, a.W, a.H)
	}
}

// destroyMiner marks a mining unit dead, optionally leaving a burst.
func (st *State) destroyMiner(m *Miner, withBurst bool) {
	if !m.Alive {
		return
	}
	m.Alive = false
	if withBurst {
		st.addBurst(m.Pos, m.W, m.H)
	}
}

// addBurst drops an explosion marker at the center of the given region.
func (st *State) addBurst(pos core.Vec, w, h float64) {
	st.bursts = append(st.bursts, burst{
		x:         int(pos.X + w/2),
		y:         int(pos.Y + h/2),
		remaining: burstTicks,
	})
}

// ageBursts counts down explosion markers and discards expired ones.
func (st *State) ageBursts() {
	kept := st.bursts[:0]
	for _, b := range st.bursts {
		b.remaining--
		if b.remaining > 0 {
			kept = append(kept, b)
		}
	}
	st.bursts = kept
}

// compact drops dead entities from the containers. IDs are never reused,
// so handles held by the mining controller stay unambiguous.
func (st *State) compact() {
	asteroids := st.asteroids[:0]
	for _, a := range st.asteroids {
		if a.Alive {
			asteroids = append(asteroids, a)
		}
	}
	st.asteroids = asteroids

	miners := st.miners[:0]
	for _, m := range st.miners {
		if m.Alive {
			miners = append(miners, m)
		}
	}
	st.miners = miners

	pulses := st.pulses[:0]
	for _, p := range st.pulses {
		if p.Alive {
			pulses = append(pulses, p)
		}
	}
	st.pulses = pulses
}

// activeMiners counts units that are in flight or attached.
func (st *State) activeMiners() int {
	n := 0
	for _, m := range st.miners {
		if m.Alive {
			n++
		}
	}
	return n
}

// asteroidByID resolves an asteroid handle, returning nil if the
// asteroid no longer exists or is dead.
func (st *State) asteroidByID(id int) *Asteroid {
	for _, a := range st.asteroids {
		if a.ID == id && a.Alive {
			return a
		}
	}
	return nil
}

// minerByID resolves a mining unit handle, returning nil if the unit no
// longer exists or is dead.
func (st *State) minerByID(id int) *Miner {
	for _, m := range st.miners {
		if m.ID == id && m.Alive {
			return m
		}
	}
	return nil
}

// allocID hands out the next entity ID. IDs are unique per game run.
func (st *State) allocID() int {
	id := st.nextID
	st.nextID++
	return id
}

// addScore increases the score accumulator. Score only ever grows.
func (st *State) addScore(delta float64) {
	if delta < 0 {
		panic("game: score must be monotonically non-decreasing")
	}
	st.score += delta
}

// recordMined bumps the per-class completion counters.
func (st *State) recordMined(class ValueClass) {
	if class == ClassPrecious {
		st.preciousMined++
	} else {
		st.plainMined++
	}
}

// Score returns the integer score exposed to the platform.
func (st *State) Score() int {
	// Guard against accumulated float error just under a whole point.
	return int(math.Floor(st.score + 1e-9))
}

// Stats returns the per-run mining and combat counters.
func (st *State) Stats() (plainMined, preciousMined, shotDown int) {
	return st.plainMined, st.preciousMined, st.shotDown
}

// Elapsed returns the simulated session time in seconds.
func (st *State) Elapsed() float64 {
	return st.elapsed
}

// State returns the externally visible game state.
func (st *State) State() core.GameState {
	return core.GameState{
		Score:    st.Score(),
		Hull:     st.ship.Hull,
		GameOver: st.gameOver,
		Paused:   st.paused,
	}
}
