package game

import "github.com/vovakirdan/tui-runner/internal/core"

// Event is something noteworthy that happened during a tick.
type Event int

const (
	EventJump       Event = iota // Jump from the ground
	EventDoubleJump              // Mid-air jump
	EventCoin                    // Coin collected
	EventStar                    // Power-star collected
	EventCrash                   // Fatal obstacle collision
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventDoubleJump:
		return "double-jump"
	case EventCoin:
		return "coin"
	case EventStar:
		return "star"
	case EventCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// StepResult describes the outcome of one tick.
type StepResult struct {
	Events  []Event
	Crashed bool // The run ended this tick
}

// Step advances w by one tick scaled by scale (1.0 at the nominal frame
// rate). The order is fixed: physics and jump, spawning, movement and
// retirement, collisions, then survival score. A crash returns immediately,
// so the fatal tick accrues no score and processes no pickups.
//
// Step mutates only w; rnd drives spawn randomness.
func Step(w *World, scale float64, in core.InputFrame, rnd Rand) StepResult {
	var res StepResult

	w.Frame++
	w.Speed = w.difficulty.Ramp(w.Speed, w.Frame)

	w.Player.integrate(w.Ground, w.cfg.Physics.Gravity, scale)
	if in.Has(core.ActionJump) {
		switch w.Player.jump(w.cfg.Physics.JumpPower) {
		case jumpGround:
			res.Events = append(res.Events, EventJump)
		case jumpDouble:
			res.Events = append(res.Events, EventDoubleJump)
		}
	}

	w.spawn(rnd)
	w.advance(scale)

	if !w.Invulnerability.Active && w.hitObstacle() {
		res.Crashed = true
		res.Events = append(res.Events, EventCrash)
		return res
	}

	// Count down before pickups so a fresh star reports its full duration
	w.Invulnerability.Tick()

	for i, n := 0, w.collectCoins(); i < n; i++ {
		res.Events = append(res.Events, EventCoin)
	}
	for i, n := 0, w.collectStars(); i < n; i++ {
		res.Events = append(res.Events, EventStar)
	}

	w.Score += w.cfg.Scoring.PerTick
	return res
}
