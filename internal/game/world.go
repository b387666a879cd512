// Package game implements the runner simulation: a side-scrolling avoidance
// game where the player jumps (once more in mid-air) over obstacles, collects
// coins for points and power-stars for temporary invulnerability.
//
// World holds all mutable simulation state and Step advances it by one tick.
// Engine wraps a World with the start/restart lifecycle and the injected
// collaborators (audio, best-score persistence, logging).
package game

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Motion is the player's vertical-motion state.
type Motion int

const (
	Grounded     Motion = iota // Standing on the ground line
	Airborne                   // In the air, double jump still available
	DoubleJumped               // In the air, double jump spent
)

// String returns a human-readable name for the motion state.
func (m Motion) String() string {
	switch m {
	case Grounded:
		return "Grounded"
	case Airborne:
		return "Airborne"
	case DoubleJumped:
		return "DoubleJumped"
	default:
		return "Unknown"
	}
}

// Player is the controllable actor.
type Player struct {
	X, Y   float64 // Top-left corner
	W, H   float64
	VY     float64 // Vertical velocity, negative = up
	Motion Motion
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// CanDoubleJump reports whether the mid-air jump is still available.
func (p Player) CanDoubleJump() bool {
	return p.Motion == Airborne
}

// Obstacle is a ground-standing box the player must clear.
type Obstacle struct {
	X, Y float64
	W, H float64
}

// Rect returns the obstacle's collision box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Coin is a point pickup, positioned by its center.
type Coin struct {
	X, Y      float64
	R         float64
	Collected bool
}

// Star is an invulnerability pickup, positioned by its center.
type Star struct {
	X, Y float64
	R    float64
}

// Invulnerability is the timed window during which obstacles are harmless.
type Invulnerability struct {
	Active    bool
	Remaining int // Ticks left; never negative
}

// Activate opens the window for the given number of ticks. Re-activating
// resets the countdown rather than extending it.
func (v *Invulnerability) Activate(ticks int) {
	v.Active = true
	v.Remaining = ticks
}

// Tick counts the window down by one tick and closes it at zero.
func (v *Invulnerability) Tick() {
	if !v.Active {
		return
	}
	v.Remaining--
	if v.Remaining <= 0 {
		v.Remaining = 0
		v.Active = false
	}
}

// World is the complete simulation state of one run.
type World struct {
	Width, Height float64
	Ground        float64 // Y of the ground line

	Player          Player
	Obstacles       Collection[Obstacle]
	Coins           Collection[Coin]
	Stars           Collection[Star]
	Invulnerability Invulnerability

	Frame int     // Ticks since the run started
	Score int     // Non-decreasing within a run
	Speed float64 // Scroll speed in units per nominal tick

	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
}

// NewWorld creates the initial state of a run: player standing on the
// ground, no entities, base speed, zero score.
func NewWorld(cfg config.RunnerConfig) *World {
	ground := cfg.World.Ground()
	difficulty := config.NewDifficultyManager(cfg.Speed, cfg.Obstacles)

	return &World{
		Width:  cfg.World.Width,
		Height: cfg.World.Height,
		Ground: ground,
		Player: Player{
			X:      cfg.Player.X,
			Y:      ground - cfg.Player.Height,
			W:      cfg.Player.Width,
			H:      cfg.Player.Height,
			Motion: Grounded,
		},
		Obstacles:  NewCollection[Obstacle](8),
		Coins:      NewCollection[Coin](4),
		Stars:      NewCollection[Star](2),
		Speed:      difficulty.BaseSpeed(),
		cfg:        cfg,
		difficulty: difficulty,
	}
}

// Config returns the tuning the world was built with.
func (w *World) Config() config.RunnerConfig {
	return w.cfg
}
