package audio

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestPlayBeforeInitIsNoOp(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig().Audio, nil)

	p.Play(core.CueJump, 0.4)

	if n := p.mixer.Len(); n != 0 {
		t.Errorf("mixer has %d streams, expected none before init", n)
	}
	p.Close()
}

func TestDisabledPlayerNeverOpensDevice(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Audio
	cfg.Enabled = false
	p := NewPlayer(cfg, nil)

	if err := p.Init(); err != nil {
		t.Fatalf("init of disabled player failed: %v", err)
	}
	if p.initialized {
		t.Error("disabled player should stay uninitialized")
	}
	p.Play(core.CueCoin, 0.5)
	if n := p.mixer.Len(); n != 0 {
		t.Errorf("mixer has %d streams, expected none", n)
	}
}
