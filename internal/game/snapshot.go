package game

import "github.com/vovakirdan/tui-runner/internal/core"

// Snapshot is an immutable copy of everything a renderer needs.
// Mutating it has no effect on the simulation.
type Snapshot struct {
	State core.GameState

	Width, Height float64
	Ground        float64
	Frame         int
	Speed         float64

	Player       Player
	Invulnerable bool
	InvulnTicks  int

	Obstacles []Obstacle
	Coins     []Coin
	Stars     []Star
}

// NewSnapshot copies the world state.
func NewSnapshot(w *World, state core.GameState) Snapshot {
	return Snapshot{
		State:        state,
		Width:        w.Width,
		Height:       w.Height,
		Ground:       w.Ground,
		Frame:        w.Frame,
		Speed:        w.Speed,
		Player:       w.Player,
		Invulnerable: w.Invulnerability.Active,
		InvulnTicks:  w.Invulnerability.Remaining,
		Obstacles:    w.Obstacles.Clone(),
		Coins:        w.Coins.Clone(),
		Stars:        w.Stars.Clone(),
	}
}
