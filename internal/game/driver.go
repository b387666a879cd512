package game

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// FixedStep drives a Ticker with a constant timestep, independent of wall
// time. Headless simulation and tests use it.
type FixedStep struct {
	Step time.Duration
}

// InputScript returns the input for the given 1-based tick.
type InputScript func(tick int) core.InputFrame

// Run advances t up to maxTicks times, stopping early once the run leaves
// the Running phase. It returns the last result and the ticks executed.
func (d FixedStep) Run(t Ticker, maxTicks int, script InputScript) (TickResult, int) {
	var last TickResult
	for i := 1; i <= maxTicks; i++ {
		in := core.NewInputFrame()
		if script != nil {
			in = script(i)
		}
		last = t.Advance(d.Step, in)
		if !last.State.Running() {
			return last, i
		}
	}
	return last, maxTicks
}

// NoInput is an InputScript that never jumps.
func NoInput(int) core.InputFrame {
	return core.NewInputFrame()
}

// JumpEvery returns a script that holds jump for one tick every n ticks,
// driving an InputState with press/release the way a keyboard would.
func JumpEvery(n int) InputScript {
	if n <= 0 {
		return NoInput
	}
	input := core.NewInputState(0)
	var now time.Time
	return func(tick int) core.InputFrame {
		if tick%n == 0 {
			input.Press()
		} else {
			input.Release()
		}
		return input.Consume(now)
	}
}
