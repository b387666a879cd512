package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestFrameClockScale(t *testing.T) {
	c := NewFrameClock(config.DefaultRunnerConfig().Timing)

	if c.Nominal() != 16670*time.Microsecond {
		t.Errorf("nominal = %v, expected 16.67ms", c.Nominal())
	}
	if s := c.Scale(c.Nominal()); s != 1 {
		t.Errorf("scale of nominal frame = %v, expected 1", s)
	}
	if s := c.Scale(-time.Second); s != 0 {
		t.Errorf("scale of negative gap = %v, expected 0", s)
	}

	maxScale := float64(40*time.Millisecond) / float64(c.Nominal())
	if s := c.Scale(time.Second); s != maxScale {
		t.Errorf("scale of 1s gap = %v, expected clamp to %v", s, maxScale)
	}
}

func TestFrameClockTick(t *testing.T) {
	c := NewFrameClock(config.DefaultRunnerConfig().Timing)
	t0 := time.Unix(0, 0)
	c.Reset(t0)

	if s := c.Tick(t0.Add(c.Nominal())); s != 1 {
		t.Errorf("first tick scale = %v, expected 1", s)
	}
	if s := c.Tick(t0.Add(c.Nominal())); s != 0 {
		t.Errorf("repeated timestamp scale = %v, expected 0", s)
	}
	if s := c.Tick(t0); s != 0 {
		t.Errorf("backwards step scale = %v, expected 0", s)
	}
}
