package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestNewWorldStartsGrounded(t *testing.T) {
	w := newTestWorld()

	if w.Player.Motion != Grounded {
		t.Errorf("initial motion = %v, expected Grounded", w.Player.Motion)
	}
	if w.Player.Y != w.Ground-w.Player.H {
		t.Errorf("initial Y = %v, expected %v", w.Player.Y, w.Ground-w.Player.H)
	}
	if w.Speed != 5 || w.Score != 0 || w.Frame != 0 {
		t.Errorf("unexpected initial state: speed=%v score=%d frame=%d", w.Speed, w.Score, w.Frame)
	}
}

func TestJumpDoubleJumpThenNoOp(t *testing.T) {
	w := newTestWorld()
	floor := w.Ground - w.Player.H

	// Tick 1: grounded jump
	res := Step(w, 1, core.JumpFrame(), seeded())
	if w.Player.VY != -13 {
		t.Errorf("after first jump VY = %v, expected -13", w.Player.VY)
	}
	if w.Player.Motion != Airborne {
		t.Errorf("after first jump motion = %v, expected Airborne", w.Player.Motion)
	}
	if w.Player.Y != floor {
		t.Errorf("impulse applies after integration; Y = %v, expected %v", w.Player.Y, floor)
	}
	if !hasEvent(res.Events, EventJump) {
		t.Error("expected a jump event")
	}

	// Tick 2: mid-air jump
	res = Step(w, 1, core.JumpFrame(), seeded())
	if w.Player.VY != -13 {
		t.Errorf("after double jump VY = %v, expected -13", w.Player.VY)
	}
	if w.Player.Motion != DoubleJumped {
		t.Errorf("after double jump motion = %v, expected DoubleJumped", w.Player.Motion)
	}
	if !approx(w.Player.Y, floor-12.4) {
		t.Errorf("Y after double jump tick = %v, expected %v", w.Player.Y, floor-12.4)
	}
	if !hasEvent(res.Events, EventDoubleJump) {
		t.Error("expected a double jump event")
	}

	// Tick 3: third request before landing is ignored
	res = Step(w, 1, core.JumpFrame(), seeded())
	if !approx(w.Player.VY, -12.4) {
		t.Errorf("third request should be a no-op; VY = %v, expected -12.4", w.Player.VY)
	}
	if w.Player.Motion != DoubleJumped {
		t.Errorf("motion = %v, expected DoubleJumped", w.Player.Motion)
	}
	if len(res.Events) != 0 {
		t.Errorf("expected no events, got %v", res.Events)
	}
}

func TestLandingRestoresDoubleJump(t *testing.T) {
	w := newTestWorld()
	w.Invulnerability.Activate(1 << 20)

	Step(w, 1, core.JumpFrame(), seeded())
	Step(w, 1, core.JumpFrame(), seeded())

	// Fall until landed
	for i := 0; i < 200 && w.Player.Motion != Grounded; i++ {
		Step(w, 1, core.NewInputFrame(), seeded())
	}
	if w.Player.Motion != Grounded {
		t.Fatal("player never landed")
	}
	if w.Player.VY != 0 {
		t.Errorf("landing should zero velocity, got %v", w.Player.VY)
	}

	Step(w, 1, core.JumpFrame(), seeded())
	Step(w, 1, core.JumpFrame(), seeded())
	if w.Player.Motion != DoubleJumped {
		t.Errorf("double jump should be available again after landing, motion = %v", w.Player.Motion)
	}
}

func TestPlayerNeverBelowGround(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	rnd := rand.New(rand.NewSource(7))
	w := NewWorld(cfg)
	maxScale := cfg.Timing.MaxStepMs / cfg.Timing.NominalFrameMs

	for tick := 0; tick < 20000; tick++ {
		in := core.NewInputFrame()
		if rnd.Float64() < 0.05 {
			in.Set(core.ActionJump)
		}

		if res := Step(w, rnd.Float64()*maxScale, in, rnd); res.Crashed {
			w = NewWorld(cfg)
			continue
		}

		floor := w.Ground - w.Player.H
		if w.Player.Y > floor {
			t.Fatalf("tick %d: player fell through the ground: y=%v floor=%v", tick, w.Player.Y, floor)
		}
		if w.Player.Motion == Grounded && w.Player.Y != floor {
			t.Fatalf("tick %d: grounded player off the ground: y=%v floor=%v", tick, w.Player.Y, floor)
		}
		if w.Player.Y < floor && w.Player.Motion == Grounded {
			t.Fatalf("tick %d: airborne player marked grounded", tick)
		}
	}
}

func TestAtMostOneDoubleJumpPerExcursion(t *testing.T) {
	w := newTestWorld()
	w.Invulnerability.Activate(1 << 20)

	doubles := 0
	for tick := 0; tick < 2000; tick++ {
		res := Step(w, 1, core.JumpFrame(), seeded())
		if hasEvent(res.Events, EventJump) {
			doubles = 0
		}
		if hasEvent(res.Events, EventDoubleJump) {
			doubles++
		}
		if doubles > 1 {
			t.Fatalf("tick %d: more than one double jump in a single excursion", tick)
		}
	}
}

func TestMotionString(t *testing.T) {
	if Grounded.String() != "Grounded" || DoubleJumped.String() != "DoubleJumped" || Motion(9).String() != "Unknown" {
		t.Error("unexpected Motion names")
	}
}
