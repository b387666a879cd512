package game

import "github.com/vovakirdan/tui-runner/internal/core"

// hitObstacle reports whether the player box strictly overlaps any obstacle.
func (w *World) hitObstacle() bool {
	player := w.Player.Rect()
	for _, o := range w.Obstacles.Items() {
		if player.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// pickupReach is the center distance under which a pickup of radius r is
// collected. The third of the larger player side is a deliberate, generous
// allowance, not an exact circle-box test.
func (p Player) pickupReach(r float64) float64 {
	return r + max(p.W, p.H)/3
}

func (p Player) touches(x, y, r float64) bool {
	cx, cy := p.Rect().Center()
	return core.Distance(cx, cy, x, y) < p.pickupReach(r)
}

// collectCoins awards the bonus for every coin in reach and removes it.
func (w *World) collectCoins() int {
	bonus := w.cfg.Coins.Bonus
	return w.Coins.Retain(func(c *Coin) bool {
		if !w.Player.touches(c.X, c.Y, c.R) {
			return true
		}
		c.Collected = true
		w.Score += bonus
		return false
	})
}

// collectStars opens the invulnerability window for every star in reach and
// removes it. Several stars in one tick still only reset the countdown.
func (w *World) collectStars() int {
	duration := w.cfg.Stars.Duration
	return w.Stars.Retain(func(s *Star) bool {
		if !w.Player.touches(s.X, s.Y, s.R) {
			return true
		}
		w.Invulnerability.Activate(duration)
		return false
	})
}
