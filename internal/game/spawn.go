package game

// Rand is the randomness source for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// uniform returns a value in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return r.Float64()*(hi-lo) + lo
}

// spawn appends the entities due on the current frame. New entities are
// placed past the right edge so they cannot touch the player on arrival.
func (w *World) spawn(rnd Rand) {
	if w.Frame%w.difficulty.ObstacleInterval(w.Speed) == 0 {
		w.spawnObstacle(rnd)
	}
	if w.Frame%w.cfg.Coins.Every == 0 {
		w.spawnCoin(rnd)
	}
	if w.Frame%w.cfg.Stars.Every == 0 {
		w.spawnStar(rnd)
	}
}

func (w *World) spawnObstacle(rnd Rand) {
	o := w.cfg.Obstacles
	band := o.Tall
	if rnd.Float64() < o.ShortChance {
		band = o.Short
	}
	h := uniform(rnd, band.Min, band.Max)

	w.Obstacles.Add(Obstacle{
		X: w.Width + o.SpawnOffset,
		Y: w.Ground - h,
		W: o.Width,
		H: h,
	})
}

func (w *World) spawnCoin(rnd Rand) {
	c := w.cfg.Coins
	w.Coins.Add(Coin{
		X: w.Width + c.SpawnOffset,
		Y: w.Ground - c.Lift - uniform(rnd, 0, c.LiftRange),
		R: c.Radius,
	})
}

func (w *World) spawnStar(rnd Rand) {
	s := w.cfg.Stars
	w.Stars.Add(Star{
		X: w.Width + s.SpawnOffset,
		Y: w.Ground - s.Lift - uniform(rnd, 0, s.LiftRange),
		R: s.Radius,
	})
}

// advance scrolls every entity left and retires those that have passed the
// margin behind the visible area.
func (w *World) advance(scale float64) {
	dx := w.Speed * scale
	limit := -w.cfg.World.RetireMargin

	w.Obstacles.Each(func(o *Obstacle) { o.X -= dx })
	w.Obstacles.Retain(func(o *Obstacle) bool { return o.X+o.W > limit })

	w.Coins.Each(func(c *Coin) { c.X -= dx })
	w.Coins.Retain(func(c *Coin) bool { return c.X+c.R > limit && !c.Collected })

	w.Stars.Each(func(s *Star) { s.X -= dx })
	w.Stars.Retain(func(s *Star) bool { return s.X+s.R > limit })
}
