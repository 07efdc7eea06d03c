package game

import (
	"fmt"

	"github.com/vovakirdan/jangam/internal/config"
	"github.com/vovakirdan/jangam/internal/core"
)

// attachment is one tracked (mining unit, asteroid) pair. The pair refers
// to its entities by ID handle; liveness is re-checked on every advance.
type attachment struct {
	minerID    int
	asteroidID int
	elapsed    float64
	accrued    float64 // score already granted for this pair
}

// MiningController tracks active attachments and accrues score over
// elapsed mining time until the configured duration completes the job.
type MiningController struct {
	cfg   config.MiningConfig
	pairs []attachment
}

// NewMiningController creates a controller with the given tuning.
func NewMiningController(cfg config.MiningConfig) *MiningController {
	return &MiningController{cfg: cfg}
}

// Track registers a new attachment. Tracking the same unit twice is a
// contract violation: a unit can never be attached to two asteroids.
func (c *MiningController) Track(minerID, asteroidID int) {
	for _, p := range c.pairs {
		if p.minerID == minerID {
			panic(fmt.Sprintf("game: mining unit %d is already attached", minerID))
		}
	}
	c.pairs = append(c.pairs, attachment{minerID: minerID, asteroidID: asteroidID})
}

// Drop removes a pair from tracking without granting the completion
// bonus. Used when a collision interrupts the attachment.
func (c *MiningController) Drop(minerID int) {
	for i, p := range c.pairs {
		if p.minerID == minerID {
			c.pairs = append(c.pairs[:i], c.pairs[i+1:]...)
			return
		}
	}
}

// Elapsed reports the accumulated mining time for a unit, if tracked.
func (c *MiningController) Elapsed(minerID int) (float64, bool) {
	for _, p := range c.pairs {
		if p.minerID == minerID {
			return p.elapsed, true
		}
	}
	return 0, false
}

// rateFor returns the score accrual rate per second for a value class.
func (c *MiningController) rateFor(class ValueClass) float64 {
	if class == ClassPrecious {
		return c.cfg.RatePrecious
	}
	return c.cfg.RatePlain
}

// bonusFor returns the completion bonus for a value class.
func (c *MiningController) bonusFor(class ValueClass) int {
	if class == ClassPrecious {
		return c.cfg.BonusPrecious
	}
	return c.cfg.BonusPlain
}

// Advance ages every active pair by dt, accruing score as it goes. A pair
// whose elapsed time reaches the mining duration is completed: the total
// accrual is rounded up to exactly rate*duration (tick quantization must
// not shortchange the player), the completion bonus is added, and both
// entities are destroyed.
func (c *MiningController) Advance(st *State, dt float64) []core.Event {
	var events []core.Event

	kept := c.pairs[:0]
	for i := range c.pairs {
		p := &c.pairs[i]

		m := st.minerByID(p.minerID)
		a := st.asteroidByID(p.asteroidID)
		if m == nil || a == nil {
			// Target resolved elsewhere this tick; nothing left to mine.
			continue
		}

		rate := c.rateFor(a.Class)
		p.elapsed += dt

		if p.elapsed >= c.cfg.DurationSecs {
			total := rate * c.cfg.DurationSecs
			st.addScore(total - p.accrued + float64(c.bonusFor(a.Class)))
			st.recordMined(a.Class)
			st.destroyMiner(m, false)
			st.destroyAsteroid(a, true)
			events = append(events, core.Event{Kind: core.EventMiningCompleted, Precious: a.Class == ClassPrecious})
			continue
		}

		delta := rate * dt
		p.accrued += delta
		st.addScore(delta)
		kept = append(kept, *p)
	}
	c.pairs = kept

	return events
}

// ActivePairs returns the number of tracked attachments.
func (c *MiningController) ActivePairs() int {
	return len(c.pairs)
}

// Reset clears all tracked attachments.
func (c *MiningController) Reset() {
	c.pairs = c.pairs[:0]
}
