package game

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// FrameClock turns wall-clock gaps between scheduler callbacks into a
// dimensionless time scale: 1.0 at the nominal frame duration. Gaps are
// clamped to the maximum step so a stalled process cannot fling entities
// past the player in one tick.
type FrameClock struct {
	maxStep time.Duration
	nominal time.Duration
	last    time.Time
}

// NewFrameClock creates a frame clock from the timing config.
func NewFrameClock(t config.TimingConfig) *FrameClock {
	return &FrameClock{
		maxStep: millis(t.MaxStepMs),
		nominal: millis(t.NominalFrameMs),
	}
}

// Nominal returns the reference frame duration.
func (c *FrameClock) Nominal() time.Duration {
	return c.nominal
}

// Reset makes now the previous callback time.
func (c *FrameClock) Reset(now time.Time) {
	c.last = now
}

// Tick returns the scale for a callback at now and remembers now.
func (c *FrameClock) Tick(now time.Time) float64 {
	elapsed := now.Sub(c.last)
	c.last = now
	return c.Scale(elapsed)
}

// Advance is Tick for callers that know the elapsed time instead of the
// current time.
func (c *FrameClock) Advance(elapsed time.Duration) float64 {
	c.last = c.last.Add(elapsed)
	return c.Scale(elapsed)
}

// Scale converts an elapsed duration to a time scale.
// Negative gaps (a clock stepping backwards) count as zero.
func (c *FrameClock) Scale(elapsed time.Duration) float64 {
	elapsed = min(max(elapsed, 0), c.maxStep)
	return float64(elapsed) / float64(c.nominal)
}

func millis(ms float64) time.Duration {
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}
