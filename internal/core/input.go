package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, mouse/touch press
	ActionStart          // Enter - start a run from the title screen
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot consumed by one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// JumpFrame returns a frame with only the jump action set.
func JumpFrame() InputFrame {
	f := NewInputFrame()
	f.Set(ActionJump)
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// DefaultPulse is how long a touch-style press stays armed if no tick consumes it.
const DefaultPulse = 100 * time.Millisecond

// InputState holds the edge-triggered jump intent fed by input sources.
//
// Discrete sources call Press and Release. Pulse sources (touch, terminal
// key presses that never report a release) call Pulse, which arms the flag
// until the pulse duration elapses. Blur force-clears it so a lost focus
// cannot leave a jump stuck on. Consume reads and clears the flag at most
// once per tick.
type InputState struct {
	jump       bool
	pulse      time.Duration
	pulseUntil time.Time // zero when the flag was set by Press
}

// NewInputState creates an input state whose pulses last for pulse.
// A non-positive pulse selects DefaultPulse.
func NewInputState(pulse time.Duration) *InputState {
	if pulse <= 0 {
		pulse = DefaultPulse
	}
	return &InputState{pulse: pulse}
}

// Press sets the jump flag until it is consumed or released.
func (s *InputState) Press() {
	s.jump = true
	s.pulseUntil = time.Time{}
}

// Release clears the jump flag.
func (s *InputState) Release() {
	s.jump = false
	s.pulseUntil = time.Time{}
}

// Pulse sets the jump flag and arms it to expire after the pulse duration.
func (s *InputState) Pulse(now time.Time) {
	s.jump = true
	s.pulseUntil = now.Add(s.pulse)
}

// Blur unconditionally clears the jump flag.
func (s *InputState) Blur() {
	s.Release()
}

// Pending reports whether a jump is requested at time now without consuming it.
func (s *InputState) Pending(now time.Time) bool {
	s.expire(now)
	return s.jump
}

// Consume returns the input frame for one tick and clears the jump flag.
func (s *InputState) Consume(now time.Time) InputFrame {
	f := NewInputFrame()
	if s.Pending(now) {
		f.Set(ActionJump)
	}
	s.Release()
	return f
}

func (s *InputState) expire(now time.Time) {
	if s.jump && !s.pulseUntil.IsZero() && !now.Before(s.pulseUntil) {
		s.Release()
	}
}
