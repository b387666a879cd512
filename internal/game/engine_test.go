package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithRand(seeded())}, opts...)
	return NewEngine(config.DefaultRunnerConfig(), core.RuntimeConfig{Seed: 1}, opts...)
}

// crashAfter runs n quiet ticks then forces a collision on the next one.
func crashAfter(t *testing.T, e *Engine, n int) TickResult {
	t.Helper()
	step := FixedStep{Step: e.Nominal()}
	if _, ticks := step.Run(e, n, NoInput); ticks != n {
		t.Fatalf("run ended after %d ticks, expected %d", ticks, n)
	}
	e.world.Obstacles.Add(overlappingObstacle(e.world))
	return e.Advance(e.Nominal(), core.NewInputFrame())
}

func TestEngineIdleUntilStarted(t *testing.T) {
	e := newTestEngine()

	res := e.Advance(e.Nominal(), core.JumpFrame())
	if res.State.Phase != core.PhaseIdle {
		t.Errorf("phase = %v, expected Idle", res.State.Phase)
	}
	if e.Snapshot().Frame != 0 {
		t.Error("idle engine must not advance the world")
	}
}

func TestEngineStartIsIdempotentWhileRunning(t *testing.T) {
	audio := &recordingAudio{}
	e := newTestEngine(WithAudio(audio))

	if !e.Start() {
		t.Fatal("first start should succeed")
	}
	FixedStep{Step: e.Nominal()}.Run(e, 10, NoInput)

	if e.Start() {
		t.Error("start while running should be a no-op")
	}
	if got := e.State().Score; got != 10 {
		t.Errorf("score = %d, expected 10 (run must not reset)", got)
	}
	if n := audio.count(core.CueStart); n != 1 {
		t.Errorf("start cue played %d times, expected 1", n)
	}
	if audio.played[0].volume != 0.6 {
		t.Errorf("start cue volume = %v, expected 0.6", audio.played[0].volume)
	}
}

func TestEngineHundredTicks(t *testing.T) {
	e := newTestEngine()
	e.Start()

	res, ticks := FixedStep{Step: e.Nominal()}.Run(e, 100, NoInput)

	if ticks != 100 || !res.State.Running() {
		t.Fatalf("expected 100 running ticks, got %d (%v)", ticks, res.State.Phase)
	}
	if res.State.Score != 100 {
		t.Errorf("score = %d, expected 100", res.State.Score)
	}
	if n := len(e.Snapshot().Coins); n != 1 {
		t.Errorf("coins = %d, expected 1", n)
	}
}

func TestEngineCrashAndRestart(t *testing.T) {
	audio := &recordingAudio{}
	store := &MemoryBestScore{}
	e := newTestEngine(WithAudio(audio), WithBestScoreStore(store))
	e.Start()

	res := crashAfter(t, e, 10)

	if !res.State.GameOver() {
		t.Fatalf("phase = %v, expected GameOver", res.State.Phase)
	}
	if res.State.FinalScore != 10 || res.State.BestScore != 10 {
		t.Errorf("final/best = %d/%d, expected 10/10", res.State.FinalScore, res.State.BestScore)
	}
	if store.Score != 10 || store.Saves != 1 {
		t.Errorf("store = %+v, expected score 10 saved once", *store)
	}
	if n := audio.count(core.CueGameOver); n != 1 {
		t.Errorf("gameover cue played %d times, expected 1", n)
	}

	// Frozen after game over
	frame := e.Snapshot().Frame
	res = e.Advance(e.Nominal(), core.JumpFrame())
	if res.State.Score != 10 || e.Snapshot().Frame != frame {
		t.Error("world advanced after game over")
	}

	if !e.Restart() {
		t.Fatal("restart after game over should succeed")
	}
	st := e.State()
	if st.Phase != core.PhaseRunning || st.Score != 0 || st.FinalScore != 0 || st.BestScore != 10 {
		t.Errorf("after restart state = %+v", st)
	}
	if e.Snapshot().Frame != 0 {
		t.Error("restart should rebuild the world")
	}
}

func TestBestScoreOnlyIncreases(t *testing.T) {
	store := &MemoryBestScore{}
	e := newTestEngine(WithBestScoreStore(store))

	e.Start()
	crashAfter(t, e, 10)
	e.Restart()
	res := crashAfter(t, e, 5)

	if res.State.FinalScore != 5 {
		t.Errorf("final = %d, expected 5", res.State.FinalScore)
	}
	if res.State.BestScore != 10 {
		t.Errorf("best = %d, expected it to stay 10", res.State.BestScore)
	}
	if store.Saves != 1 {
		t.Errorf("saves = %d, lower score must not be persisted", store.Saves)
	}
}

func TestBestScoreLoad(t *testing.T) {
	tests := []struct {
		name  string
		store BestScoreStore
		want  int
	}{
		{"no store", nil, 0},
		{"stored value", &MemoryBestScore{Score: 500}, 500},
		{"corrupt value", &MemoryBestScore{Score: -7}, 0},
		{"read failure", failingStore{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(WithBestScoreStore(tt.store))
			if got := e.State().BestScore; got != tt.want {
				t.Errorf("best = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestBestScoreSaveFailureKeepsValue(t *testing.T) {
	e := newTestEngine(WithBestScoreStore(failingStore{}))
	e.Start()

	res := crashAfter(t, e, 3)
	if res.State.BestScore != 3 {
		t.Errorf("best = %d, expected 3 even though saving failed", res.State.BestScore)
	}
}

func TestEngineJumpCues(t *testing.T) {
	audio := &recordingAudio{}
	e := newTestEngine(WithAudio(audio))
	e.Start()

	e.Advance(e.Nominal(), core.JumpFrame())
	e.Advance(e.Nominal(), core.JumpFrame())
	e.Advance(e.Nominal(), core.JumpFrame())

	if n := audio.count(core.CueJump); n != 2 {
		t.Fatalf("jump cue played %d times, expected 2", n)
	}
	// played[0] is the start cue
	if audio.played[1].volume != 0.4 || audio.played[2].volume != 0.35 {
		t.Errorf("jump volumes = %v, %v; expected 0.4, 0.35", audio.played[1].volume, audio.played[2].volume)
	}
}

func TestEngineStarCue(t *testing.T) {
	audio := &recordingAudio{}
	e := newTestEngine(WithAudio(audio))
	e.Start()

	cx, cy := e.world.Player.Rect().Center()
	e.world.Stars.Add(Star{X: cx + e.world.Speed, Y: cy, R: 10})
	res := e.Advance(e.Nominal(), core.NewInputFrame())

	if !hasEvent(res.Events, EventStar) {
		t.Fatalf("expected star event, got %v", res.Events)
	}
	last := audio.played[len(audio.played)-1]
	if last.cue != core.CueCoin || last.volume != 0.6 {
		t.Errorf("star cue = %+v, expected coin cue at 0.6", last)
	}
}

func TestEngineFrameUsesClock(t *testing.T) {
	clock := &core.ManualClock{T: time.Unix(1000, 0)}
	e := newTestEngine(WithClock(clock))
	e.Start()

	clock.Advance(e.Nominal())
	e.Frame(clock.Now(), core.NewInputFrame())
	if s := e.Snapshot(); s.Frame != 1 || s.State.Score != 1 {
		t.Fatalf("frame/score = %d/%d, expected 1/1", s.Frame, s.State.Score)
	}

	// A long stall is clamped to the maximum step
	e.world.Obstacles.Add(Obstacle{X: 700, Y: 0, W: 18, H: 10})
	clock.Advance(5 * time.Second)
	e.Frame(clock.Now(), core.NewInputFrame())

	maxScale := float64(40*time.Millisecond) / float64(e.Nominal())
	want := 700 - 5*maxScale
	if x := e.Snapshot().Obstacles[0].X; !approx(x, want) {
		t.Errorf("obstacle x after stall = %v, expected %v", x, want)
	}
}
