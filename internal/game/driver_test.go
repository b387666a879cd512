package game

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestJumpEvery(t *testing.T) {
	script := JumpEvery(3)
	want := []bool{false, false, true, false, false, true}
	for i, w := range want {
		if got := script(i + 1).Has(core.ActionJump); got != w {
			t.Errorf("tick %d: jump = %v, expected %v", i+1, got, w)
		}
	}

	never := JumpEvery(0)
	for i := 1; i <= 10; i++ {
		if never(i).Has(core.ActionJump) {
			t.Fatal("JumpEvery(0) should never jump")
		}
	}
}

func TestFixedStepStopsOnGameOver(t *testing.T) {
	e := newTestEngine()
	e.Start()
	e.world.Obstacles.Add(overlappingObstacle(e.world))

	res, ticks := FixedStep{Step: e.Nominal()}.Run(e, 1000, NoInput)

	if ticks != 1 {
		t.Errorf("ticks = %d, expected 1", ticks)
	}
	if !res.State.GameOver() {
		t.Errorf("phase = %v, expected GameOver", res.State.Phase)
	}
}

func TestFixedStepWithJumps(t *testing.T) {
	e := newTestEngine()
	e.Start()

	res, ticks := FixedStep{Step: e.Nominal()}.Run(e, 50, JumpEvery(30))
	if ticks != 50 || !res.State.Running() {
		t.Fatalf("expected 50 running ticks, got %d", ticks)
	}
	if e.Snapshot().Player.Motion == Grounded {
		t.Error("player should be airborne 20 ticks after jumping")
	}
}
