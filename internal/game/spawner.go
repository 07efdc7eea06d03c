package game

import (
	"math/rand"

	"github.com/vovakirdan/jangam/internal/config"
	"github.com/vovakirdan/jangam/internal/core"
)

// Spawner periodically produces new asteroids at randomized positions,
// velocities, and value classes. It has no side effects: the returned
// asteroid descriptor is inserted into the game state by the caller.
type Spawner struct {
	rng       *rand.Rand
	cfg       config.AsteroidsConfig
	fieldW    float64
	countdown float64
}

// NewSpawner creates a spawner for a field of the given width.
func NewSpawner(rng *rand.Rand, cfg config.AsteroidsConfig, fieldW float64) *Spawner {
	s := &Spawner{
		rng:    rng,
		cfg:    cfg,
		fieldW: fieldW,
	}
	s.countdown = s.nextInterval()
	return s
}

// nextInterval draws the wait until the next spawn: uniform jitter
// around the configured mean.
func (s *Spawner) nextInterval() float64 {
	jitter := s.cfg.SpawnJitterSecs
	interval := s.cfg.SpawnMeanSecs + (s.rng.Float64()*2-1)*jitter
	if interval < 0.05 {
		interval = 0.05
	}
	return interval
}

// MaybeSpawn advances the spawn timer and returns a new asteroid when the
// interval elapses, or nil. Spawning never fails: when liveCount has
// reached the configured cap the spawn is silently skipped (backpressure
// against unbounded growth), but the timer still re-arms.
func (s *Spawner) MaybeSpawn(dt float64, liveCount int) *Asteroid {
	s.countdown -= dt
	if s.countdown > 0 {
		return nil
	}
	s.countdown = s.nextInterval()

	if liveCount >= s.cfg.MaxCount {
		return nil
	}

	w := float64(s.cfg.Width)
	h := float64(s.cfg.Height)

	x := s.rng.Float64() * (s.fieldW - w)
	vy := s.cfg.MinFallSpeed + s.rng.Float64()*(s.cfg.MaxFallSpeed-s.cfg.MinFallSpeed)
	vx := (s.rng.Float64()*2 - 1) * s.cfg.MaxDrift

	class := ClassPlain
	if s.rng.Float64() < s.cfg.PreciousChance {
		class = ClassPrecious
	}

	return &Asteroid{
		Entity: Entity{
			Kind:  KindAsteroid,
			Pos:   core.Vec{X: x, Y: -h}, // enters from just above the top edge
			Vel:   core.Vec{X: vx, Y: vy},
			W:     w,
			H:     h,
			Alive: true,
		},
		Class: class,
	}
}
