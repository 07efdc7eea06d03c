package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/jangam/internal/config"
	"github.com/vovakirdan/jangam/internal/core"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// testRules returns the default gameplay config with spawning effectively
// disabled, so tests control exactly which asteroids exist.
func testRules() config.GameConfig {
	rules := config.DefaultGameConfig()
	rules.Asteroids.SpawnMeanSecs = 9999
	rules.Asteroids.SpawnJitterSecs = 0
	return rules
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

// addAsteroid inserts an asteroid directly into the game state.
func addAsteroid(st *State, x, y, vy float64, class ValueClass) *Asteroid {
	a := &Asteroid{
		Entity: Entity{
			Kind:  KindAsteroid,
			Pos:   core.Vec{X: x, Y: y},
			Vel:   core.Vec{Y: vy},
			W:     float64(st.rules.Asteroids.Width),
			H:     float64(st.rules.Asteroids.Height),
			Alive: true,
		},
		ID:    st.allocID(),
		Class: class,
	}
	st.asteroids = append(st.asteroids, a)
	return a
}

// launchAndAttach launches a mining unit straight at the given asteroid
// and steps until it attaches.
func launchAndAttach(t *testing.T, st *State, a *Asteroid) *Miner {
	t.Helper()

	// Place the ship directly below the asteroid so the unit flies into it
	st.ship.Pos.X = a.Pos.X + (a.W-st.ship.W)/2
	st.ship.Vel.X = 0

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	st.Step(launch)

	noInput := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		if len(st.miners) > 0 && st.miners[0].State == MinerAttached {
			return st.miners[0]
		}
		st.Step(noInput)
	}

	t.Fatal("mining unit never attached")
	return nil
}

func TestShipMovementClampedToField(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	// Hold left long enough to hit the wall
	leftInput := core.NewInputFrame()
	leftInput.Set(core.ActionLeft)
	for i := 0; i < 600; i++ {
		st.Step(leftInput)
	}

	if st.ship.Pos.X != 0 {
		t.Errorf("Ship should stop at left wall, got X=%f", st.ship.Pos.X)
	}
	if st.ship.Vel.X != 0 {
		t.Errorf("Ship velocity should be zeroed at the wall, got %f", st.ship.Vel.X)
	}

	// Same on the right
	rightInput := core.NewInputFrame()
	rightInput.Set(core.ActionRight)
	for i := 0; i < 600; i++ {
		st.Step(rightInput)
	}

	maxX := st.fieldW - st.ship.W
	if st.ship.Pos.X != maxX {
		t.Errorf("Ship should stop at right wall, got X=%f, want %f", st.ship.Pos.X, maxX)
	}
}

func TestShipBrakingDecelerates(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	rightInput := core.NewInputFrame()
	rightInput.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		st.Step(rightInput)
	}
	if st.ship.Vel.X <= 0 {
		t.Fatalf("Ship should be moving right after thrust, got %f", st.ship.Vel.X)
	}

	// Coast without input until braking brings the ship to rest
	noInput := core.NewInputFrame()
	for i := 0; i < 600 && st.ship.Vel.X != 0; i++ {
		st.Step(noInput)
	}
	if st.ship.Vel.X != 0 {
		t.Errorf("Braking should stop the ship, got velocity %f", st.ship.Vel.X)
	}
}

func TestAttachImmobilizesAsteroid(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	a := addAsteroid(st, 30, 5, 4, ClassPlain)
	m := launchAndAttach(t, st, a)

	if !a.Mined {
		t.Error("Asteroid should be marked as mined after attach")
	}
	if a.Vel.X != 0 || a.Vel.Y != 0 {
		t.Errorf("Mined asteroid should have zero velocity, got (%f, %f)", a.Vel.X, a.Vel.Y)
	}
	if m.State != MinerAttached {
		t.Error("Unit should be attached")
	}
	if m.TargetID != a.ID {
		t.Errorf("Unit should target asteroid %d, got %d", a.ID, m.TargetID)
	}

	// Position must stay locked across further ticks
	noInput := core.NewInputFrame()
	posY := a.Pos.Y
	for i := 0; i < 30; i++ {
		st.Step(noInput)
	}
	if a.Pos.Y != posY {
		t.Errorf("Mined asteroid should not move, Y was %f, now %f", posY, a.Pos.Y)
	}
	if m.Pos.Y != a.Pos.Y+a.H {
		t.Errorf("Attached unit should sit under its target, got Y=%f", m.Pos.Y)
	}
}

func TestSecondUnitCannotAttachToMinedAsteroid(t *testing.T) {
	rules := testRules()
	rules.Mining.MaxActiveUnits = 2
	st := NewWithRules(rules)
	st.Reset(testConfig())

	a := addAsteroid(st, 30, 5, 4, ClassPlain)
	launchAndAttach(t, st, a)

	// Fire a second unit straight at the same asteroid
	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	st.Step(launch)

	noInput := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		st.Step(noInput)
	}

	if st.mining.ActivePairs() > 1 {
		t.Errorf("Asteroid should carry at most one attachment, got %d pairs", st.mining.ActivePairs())
	}
	for _, m := range st.miners {
		if m.ID != st.miners[0].ID && m.State == MinerAttached {
			t.Error("Second unit should not attach to an asteroid already being mined")
		}
	}
}

func TestUnitCapacityLimitsLaunches(t *testing.T) {
	rules := testRules()
	rules.Mining.MaxActiveUnits = 1
	st := NewWithRules(rules)
	st.Reset(testConfig())

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	st.Step(launch)
	st.Step(launch)
	st.Step(launch)

	if len(st.miners) != 1 {
		t.Errorf("Capacity 1 should allow a single live unit, got %d", len(st.miners))
	}

	// A missed unit leaving the top frees the slot
	noInput := core.NewInputFrame()
	for i := 0; i < 600 && len(st.miners) > 0; i++ {
		st.Step(noInput)
	}
	if len(st.miners) != 0 {
		t.Fatal("Unit should despawn above the top edge")
	}

	st.Step(launch)
	if len(st.miners) != 1 {
		t.Error("Launching should work again after the slot is freed")
	}
}

func TestMiningCompletionGrantsExactScore(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	a := addAsteroid(st, 30, 5, 4, ClassPrecious)
	launchAndAttach(t, st, a)

	noInput := core.NewInputFrame()
	var completed bool
	for i := 0; i < 600 && !completed; i++ {
		result := st.Step(noInput)
		for _, ev := range result.Events {
			if ev.Kind == core.EventMiningCompleted {
				if !ev.Precious {
					t.Error("Completion event should carry the precious flag")
				}
				completed = true
			}
		}
	}
	if !completed {
		t.Fatal("Mining should complete within the configured duration")
	}

	// Exactly rate*duration plus the completion bonus, regardless of
	// tick quantization.
	rules := st.rules.Mining
	want := int(rules.RatePrecious*rules.DurationSecs) + rules.BonusPrecious
	if st.Score() != want {
		t.Errorf("Completed run should score exactly %d, got %d", want, st.Score())
	}

	// Both entities are gone
	if len(st.asteroids) != 0 {
		t.Error("Completed asteroid should be removed")
	}
	if len(st.miners) != 0 {
		t.Error("Completed unit should be removed")
	}

	_, precious, _ := st.Stats()
	if precious != 1 {
		t.Errorf("Precious completion counter should be 1, got %d", precious)
	}
}

func TestInterruptionDestroysPairWithoutBonus(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	a := addAsteroid(st, 30, 5, 4, ClassPrecious)
	m := launchAndAttach(t, st, a)

	// Mine for roughly two seconds
	noInput := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		st.Step(noInput)
	}
	partial := st.Score()
	if partial <= 0 {
		t.Fatal("Partial mining should have accrued some score")
	}

	// Drive a second asteroid into the attached unit
	striker := addAsteroid(st, m.Pos.X, m.Pos.Y-1, 10, ClassPlain)

	var interrupted bool
	for i := 0; i < 60 && !interrupted; i++ {
		result := st.Step(noInput)
		for _, ev := range result.Events {
			if ev.Kind == core.EventMiningInterrupted {
				interrupted = true
			}
		}
	}
	if !interrupted {
		t.Fatal("Strike on an attached unit should interrupt mining")
	}

	if a.Alive {
		t.Error("Interrupted target should be destroyed")
	}
	if m.Alive {
		t.Error("Interrupted unit should be destroyed")
	}
	if !striker.Alive {
		t.Error("Striker should survive the interruption")
	}
	if st.mining.ActivePairs() != 0 {
		t.Error("Interrupted pair should be dropped from tracking")
	}

	// Partial accrual stays, no completion bonus is paid
	bonus := st.rules.Mining.BonusPrecious
	if st.Score() < partial {
		t.Errorf("Accrued score must not be revoked, had %d, now %d", partial, st.Score())
	}
	if st.Score() >= partial+bonus {
		t.Errorf("Interruption must not pay the completion bonus, score %d", st.Score())
	}
}

func TestShipHitReducesHull(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	hull := st.ship.Hull
	a := addAsteroid(st, st.ship.Pos.X, st.ship.Pos.Y, 0, ClassPlain)

	noInput := core.NewInputFrame()
	result := st.Step(noInput)

	if st.ship.Hull != hull-st.rules.Asteroids.DamagePlain {
		t.Errorf("Plain hit should cost %d hull, got %d -> %d",
			st.rules.Asteroids.DamagePlain, hull, st.ship.Hull)
	}
	if a.Alive {
		t.Error("Asteroid should be destroyed on ship impact")
	}
	if result.State.GameOver {
		t.Error("Game should continue while hull remains")
	}

	var hit bool
	for _, ev := range result.Events {
		if ev.Kind == core.EventShipHit {
			hit = true
		}
	}
	if !hit {
		t.Error("Ship impact should emit a hit event")
	}
}

func TestPreciousHitCostsMoreHull(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	hull := st.ship.Hull
	addAsteroid(st, st.ship.Pos.X, st.ship.Pos.Y, 0, ClassPrecious)

	noInput := core.NewInputFrame()
	st.Step(noInput)

	if st.ship.Hull != hull-st.rules.Asteroids.DamagePrecious {
		t.Errorf("Precious hit should cost %d hull, got %d -> %d",
			st.rules.Asteroids.DamagePrecious, hull, st.ship.Hull)
	}
}

func TestHullDepletionEndsGameSameTick(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())
	st.ship.Hull = 1

	addAsteroid(st, st.ship.Pos.X, st.ship.Pos.Y, 0, ClassPlain)

	noInput := core.NewInputFrame()
	result := st.Step(noInput)

	if !result.State.GameOver {
		t.Error("Hull reaching zero should end the game in the same tick")
	}
	if st.ship.Hull != 0 {
		t.Errorf("Hull should not go negative, got %d", st.ship.Hull)
	}

	var destroyed bool
	for _, ev := range result.Events {
		if ev.Kind == core.EventShipDestroyed {
			destroyed = true
		}
	}
	if !destroyed {
		t.Error("Fatal hit should emit a destroyed event")
	}

	// Further ticks must not mutate the simulation
	tick := st.tickCount
	st.Step(noInput)
	if st.tickCount != tick {
		t.Error("Simulation should freeze after game over")
	}
}

func TestPulseDestroysFreeAsteroid(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	a := addAsteroid(st, st.ship.Pos.X, 5, 0, ClassPlain)

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	st.Step(fire)
	if len(st.pulses) != 1 {
		t.Fatal("Fire should spawn a pulse")
	}

	noInput := core.NewInputFrame()
	var shot bool
	for i := 0; i < 120 && !shot; i++ {
		result := st.Step(noInput)
		for _, ev := range result.Events {
			if ev.Kind == core.EventAsteroidShot {
				shot = true
			}
		}
	}
	if !shot {
		t.Fatal("Pulse should destroy the asteroid in its path")
	}
	if a.Alive {
		t.Error("Shot asteroid should be dead")
	}

	_, _, shotDown := st.Stats()
	if shotDown != 1 {
		t.Errorf("Shot-down counter should be 1, got %d", shotDown)
	}
}

func TestPulseIgnoresMinedAsteroid(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	a := addAsteroid(st, 30, 5, 4, ClassPlain)
	launchAndAttach(t, st, a)

	// Park a pulse right on the mined asteroid
	st.pulses = append(st.pulses, &Pulse{
		Entity: Entity{
			Kind:  KindPulse,
			Pos:   core.Vec{X: a.Pos.X + 1, Y: a.Pos.Y + 1},
			W:     1,
			H:     1,
			Alive: true,
		},
	})

	noInput := core.NewInputFrame()
	st.Step(noInput)

	if !a.Alive {
		t.Error("Cannon fire must not affect an asteroid being mined")
	}
	if !a.Mined {
		t.Error("Attachment should survive the pulse")
	}
}

func TestFireCooldownLimitsRate(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	st.Step(fire)
	st.Step(fire) // still cooling down

	if len(st.pulses) != 1 {
		t.Errorf("Second shot inside the cooldown should be suppressed, got %d pulses", len(st.pulses))
	}
}

func TestScoreIsMonotonic(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 7

	st := New()
	st.Reset(cfg)

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	noInput := core.NewInputFrame()

	prev := 0
	for i := 0; i < 2000; i++ {
		var result core.StepResult
		if i%30 == 0 {
			result = st.Step(launch)
		} else {
			result = st.Step(noInput)
		}
		if result.State.Score < prev {
			t.Fatalf("Score decreased from %d to %d at tick %d", prev, result.State.Score, i)
		}
		prev = result.State.Score
		if result.State.GameOver {
			break
		}
	}
}

func TestSpawnerRespectsCap(t *testing.T) {
	cfg := testConfig()
	rules := config.DefaultGameConfig()
	rules.Asteroids.SpawnMeanSecs = 0.1
	rules.Asteroids.SpawnJitterSecs = 0

	st := NewWithRules(rules)
	st.Reset(cfg)

	noInput := core.NewInputFrame()
	for i := 0; i < 3000; i++ {
		st.Step(noInput)
		if len(st.asteroids) > rules.Asteroids.MaxCount {
			t.Fatalf("Live asteroids exceeded cap: %d > %d", len(st.asteroids), rules.Asteroids.MaxCount)
		}
		if st.gameOver {
			break
		}
	}
}

func TestSpawnerTimerRearmsAtCap(t *testing.T) {
	rng := newTestRNG()
	cfg := config.DefaultGameConfig().Asteroids
	cfg.SpawnMeanSecs = 1.0
	cfg.SpawnJitterSecs = 0

	s := NewSpawner(rng, cfg, 80)

	// Interval elapses while the field is full: no spawn, timer re-arms
	if a := s.MaybeSpawn(2.0, cfg.MaxCount); a != nil {
		t.Error("Spawner should skip spawning at the cap")
	}

	// The skipped spawn must not burst out later; a fresh interval applies
	if a := s.MaybeSpawn(0.1, 0); a != nil {
		t.Error("Timer should have re-armed after the skipped spawn")
	}
	if a := s.MaybeSpawn(1.0, 0); a == nil {
		t.Error("Spawner should produce an asteroid once the interval elapses below the cap")
	}
}

func TestSpawnerEntersFromTop(t *testing.T) {
	rng := newTestRNG()
	cfg := config.DefaultGameConfig().Asteroids
	cfg.SpawnMeanSecs = 0.1
	cfg.SpawnJitterSecs = 0

	s := NewSpawner(rng, cfg, 80)

	for i := 0; i < 50; i++ {
		a := s.MaybeSpawn(0.2, 0)
		if a == nil {
			continue
		}
		if a.Pos.Y >= 0 {
			t.Errorf("Asteroid should enter from above the top edge, got Y=%f", a.Pos.Y)
		}
		if a.Pos.X < 0 || a.Pos.X > 80-a.W {
			t.Errorf("Spawn X out of field: %f", a.Pos.X)
		}
		if a.Vel.Y < cfg.MinFallSpeed || a.Vel.Y > cfg.MaxFallSpeed {
			t.Errorf("Fall speed out of range: %f", a.Vel.Y)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 12345

	inputSequence := make([]core.InputFrame, 1200)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%40 == 0:
			inputSequence[i].Set(core.ActionLaunch)
		case i%90 == 5:
			inputSequence[i].Set(core.ActionFire)
		case i%7 < 3:
			inputSequence[i].Set(core.ActionRight)
		default:
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
			result := g.Step(in)
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestGameReset(t *testing.T) {
	st := NewWithRules(testRules())
	cfg := testConfig()
	st.Reset(cfg)

	a := addAsteroid(st, 30, 5, 4, ClassPlain)
	launchAndAttach(t, st, a)

	noInput := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		st.Step(noInput)
	}

	st.Reset(cfg)

	if st.score != 0 {
		t.Errorf("Reset should clear score, got %f", st.score)
	}
	if len(st.asteroids) != 0 || len(st.miners) != 0 || len(st.pulses) != 0 {
		t.Error("Reset should clear all entities")
	}
	if st.mining.ActivePairs() != 0 {
		t.Error("Reset should clear tracked attachments")
	}
	if st.ship.Hull != st.rules.Ship.Hull {
		t.Errorf("Reset should restore full hull, got %d", st.ship.Hull)
	}
	if st.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", st.tickCount)
	}
	if st.gameOver {
		t.Error("Reset should clear game over")
	}
}

func TestGamePause(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	a := addAsteroid(st, 30, 5, 4, ClassPlain)

	pauseInput := core.NewInputFrame()
	pauseInput.Set(core.ActionPause)
	st.Step(pauseInput)

	if !st.paused {
		t.Fatal("Game should be paused")
	}

	posY := a.Pos.Y
	noInput := core.NewInputFrame()
	st.Step(noInput)

	if a.Pos.Y != posY {
		t.Error("Entities should not move while paused")
	}

	st.Step(pauseInput)
	if st.paused {
		t.Error("Game should be unpaused")
	}
	st.Step(noInput)
	if a.Pos.Y == posY {
		t.Error("Entities should move again after unpause")
	}
}

func TestDoubleTrackPanics(t *testing.T) {
	c := NewMiningController(config.DefaultGameConfig().Mining)
	c.Track(1, 10)

	defer func() {
		if recover() == nil {
			t.Error("Tracking the same unit twice should panic")
		}
	}()
	c.Track(1, 11)
}

func TestNegativeScorePanics(t *testing.T) {
	st := NewWithRules(testRules())
	st.Reset(testConfig())

	defer func() {
		if recover() == nil {
			t.Error("Negative score delta should panic")
		}
	}()
	st.addScore(-1)
}

func TestGameRender(t *testing.T) {
	cfg := testConfig()
	st := NewWithRules(testRules())
	st.Reset(cfg)

	addAsteroid(st, 30, 5, 4, ClassPrecious)
	noInput := core.NewInputFrame()
	st.Step(noInput)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	st.Render(screen)

	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("Render should draw something to the screen")
	}

	// The ship nose sits on its top row
	noseX := int(st.ship.Pos.X) + int(st.ship.W)/2
	noseY := int(st.ship.Pos.Y) + hudRows
	if screen.Get(noseX, noseY) != shipNoseChar {
		t.Errorf("Ship nose should be drawn, got %q", screen.Get(noseX, noseY))
	}
}
