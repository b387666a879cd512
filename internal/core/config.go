package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Scheduler callbacks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseIdle     Phase = iota // No run started yet
	PhaseRunning               // Simulation advancing
	PhaseGameOver              // Run ended by a collision; re-armable
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is the externally observable status of the game.
type GameState struct {
	Phase      Phase
	Score      int // Current run score
	BestScore  int // Highest score ever recorded
	FinalScore int // Score of the last finished run; valid in PhaseGameOver
}

// GameOver reports whether the last run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Running reports whether the simulation is advancing.
func (s GameState) Running() bool {
	return s.Phase == PhaseRunning
}
