package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// fixedRand always returns the same value.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func newTestWorld() *World {
	return NewWorld(config.DefaultRunnerConfig())
}

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// overlappingObstacle returns an obstacle that still overlaps the player
// after one nominal tick of scrolling.
func overlappingObstacle(w *World) Obstacle {
	return Obstacle{
		X: w.Player.X + w.Speed,
		Y: w.Ground - 40,
		W: w.cfg.Obstacles.Width,
		H: 40,
	}
}

type playedCue struct {
	cue    core.Cue
	volume float64
}

// recordingAudio remembers every cue played.
type recordingAudio struct {
	played []playedCue
}

func (a *recordingAudio) Play(cue core.Cue, volume float64) {
	a.played = append(a.played, playedCue{cue, volume})
}

func (a *recordingAudio) count(cue core.Cue) int {
	n := 0
	for _, p := range a.played {
		if p.cue == cue {
			n++
		}
	}
	return n
}

// failingStore fails every operation.
type failingStore struct{}

func (failingStore) LoadBestScore() (int, error) { return 0, errors.New("disk on fire") }
func (failingStore) SaveBestScore(int) error     { return errors.New("disk on fire") }

func hasEvent(events []Event, want Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func stepN(t *testing.T, w *World, n int, rnd Rand) {
	t.Helper()
	for i := 0; i < n; i++ {
		if res := Step(w, 1, core.NewInputFrame(), rnd); res.Crashed {
			t.Fatalf("unexpected crash at frame %d", w.Frame)
		}
	}
}
