package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond
)

// Player plays cues on the system speaker. Every cue gets its own stream in
// a shared mixer, so overlapping cues mix instead of cutting each other off.
//
// Play never blocks on the device and never fails: before Init, after
// Close, or when disabled it silently does nothing.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. Call Init to open the device.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer. It is a no-op when audio is
// disabled or already initialized.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Play starts a cue at the given volume, scaled by the master volume.
func (p *Player) Play(cue core.Cue, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	vol := volume * p.cfg.Master
	if vol <= 0 {
		return
	}
	s := cueStream(cue, sampleRate)
	if s == nil {
		p.logger.Debug("unknown audio cue", "cue", cue)
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, vol))
	speaker.Unlock()
}

// Close silences pending cues and closes the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
