package game

// jumpKind reports which jump, if any, a request produced.
type jumpKind int

const (
	jumpNone jumpKind = iota
	jumpGround
	jumpDouble
)

// integrate applies gravity for one scaled tick and lands the player when
// it reaches the ground line from above.
func (p *Player) integrate(ground, gravity, scale float64) {
	p.VY += gravity * scale
	p.Y += p.VY * scale

	floor := ground - p.H
	if p.Y >= floor {
		p.Y = floor
		p.VY = 0
		p.Motion = Grounded
		return
	}
	if p.Motion == Grounded {
		p.Motion = Airborne
	}
}

// jump handles one jump request. A grounded player jumps; an airborne
// player may jump once more before landing; anything else is dropped so
// requests are never buffered.
func (p *Player) jump(power float64) jumpKind {
	switch p.Motion {
	case Grounded:
		p.VY = power
		p.Motion = Airborne
		return jumpGround
	case Airborne:
		p.VY = power
		p.Motion = DoubleJumped
		return jumpDouble
	default:
		return jumpNone
	}
}
