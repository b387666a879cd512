package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// TickResult is returned by the engine after each scheduler callback.
type TickResult struct {
	State  core.GameState
	Events []Event
}

// Ticker advances a simulation by an elapsed wall-clock duration. Real-time
// schedulers, fixed-timestep loops and tests all drive the engine through it.
type Ticker interface {
	Advance(elapsed time.Duration, in core.InputFrame) TickResult
}

// Option configures an Engine.
type Option func(*Engine)

// WithAudio sets the audio collaborator.
func WithAudio(a Audio) Option {
	return func(e *Engine) {
		if a != nil {
			e.audio = a
		}
	}
}

// WithBestScoreStore sets the best-score persistence collaborator.
func WithBestScoreStore(s BestScoreStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the clock used to stamp run starts.
func WithClock(c core.Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithRand overrides the spawn randomness source.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rnd = r
		}
	}
}

// Engine runs the game lifecycle: Idle until the first start, Running while
// the simulation advances, GameOver after a fatal collision until the next
// start. It is not safe for concurrent use; one scheduler drives it.
type Engine struct {
	cfg    config.RunnerConfig
	world  *World
	phase  core.Phase
	frames *FrameClock
	final  int

	clock  core.Clock
	rnd    Rand
	audio  Audio
	store  BestScoreStore
	best   *BestScore
	logger *log.Logger
}

// NewEngine creates an idle engine and loads the best score once.
func NewEngine(cfg config.RunnerConfig, rt core.RuntimeConfig, opts ...Option) *Engine {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:    cfg,
		world:  NewWorld(cfg),
		phase:  core.PhaseIdle,
		frames: NewFrameClock(cfg.Timing),
		clock:  core.RealClock{},
		rnd:    rand.New(rand.NewSource(seed)),
		audio:  NopAudio{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.best = loadBestScore(e.store, e.logger)
	return e
}

// Start begins a fresh run from Idle or GameOver. The world is rebuilt
// before it becomes visible, so no tick observes a half-reset state.
// Calling Start while a run is in progress does nothing and returns false.
func (e *Engine) Start() bool {
	if e.phase == core.PhaseRunning {
		return false
	}

	e.world = NewWorld(e.cfg)
	e.final = 0
	e.frames.Reset(e.clock.Now())
	e.phase = core.PhaseRunning

	e.audio.Play(core.CueStart, e.cfg.Audio.Start)
	e.logger.Debug("run started", "best", e.best.Value(), "speed", e.world.Speed)
	return true
}

// Restart is Start under the name the game-over screen uses.
func (e *Engine) Restart() bool {
	return e.Start()
}

// Frame advances the run for a scheduler callback at wall-clock time now.
// It is a no-op outside the Running phase.
func (e *Engine) Frame(now time.Time, in core.InputFrame) TickResult {
	if e.phase != core.PhaseRunning {
		return TickResult{State: e.State()}
	}
	return e.tick(e.frames.Tick(now), in)
}

// Advance advances the run by elapsed wall-clock time.
// It is a no-op outside the Running phase.
func (e *Engine) Advance(elapsed time.Duration, in core.InputFrame) TickResult {
	if e.phase != core.PhaseRunning {
		return TickResult{State: e.State()}
	}
	return e.tick(e.frames.Advance(elapsed), in)
}

func (e *Engine) tick(scale float64, in core.InputFrame) TickResult {
	res := Step(e.world, scale, in, e.rnd)
	for _, ev := range res.Events {
		e.cue(ev)
	}
	if res.Crashed {
		e.finish()
	}
	return TickResult{State: e.State(), Events: res.Events}
}

// finish freezes the run and settles the best score.
func (e *Engine) finish() {
	e.phase = core.PhaseGameOver
	e.final = e.world.Score

	if e.best.Offer(e.final) {
		e.logger.Debug("new best score", "score", e.final)
	}
	e.logger.Debug("run over", "score", e.final, "frames", e.world.Frame, "speed", e.world.Speed)
}

func (e *Engine) cue(ev Event) {
	a := e.cfg.Audio
	switch ev {
	case EventJump:
		e.audio.Play(core.CueJump, a.Jump)
	case EventDoubleJump:
		e.audio.Play(core.CueJump, a.DoubleJump)
	case EventCoin:
		e.audio.Play(core.CueCoin, a.Coin)
	case EventStar:
		e.audio.Play(core.CueCoin, a.Star)
	case EventCrash:
		e.audio.Play(core.CueGameOver, a.GameOver)
	}
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() core.Phase {
	return e.phase
}

// State returns the externally observable status.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Phase:      e.phase,
		Score:      e.world.Score,
		BestScore:  e.best.Value(),
		FinalScore: e.final,
	}
}

// Snapshot returns a read-only copy of the simulation for rendering.
func (e *Engine) Snapshot() Snapshot {
	return NewSnapshot(e.world, e.State())
}

// Nominal returns the reference frame duration.
func (e *Engine) Nominal() time.Duration {
	return e.frames.Nominal()
}
