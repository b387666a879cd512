package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColor(0, 0, "SCORE", core.ColorWhite)
	s.SetColor(4, 2, '█', core.ColorGold)

	out := RenderScreen(s)

	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Errorf("got %d lines, expected 3", len(lines))
	}
	if !strings.Contains(out, "SCORE") || !strings.Contains(out, "█") {
		t.Errorf("content missing from %q", out)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("too long", 3); got != "too long" {
		t.Errorf("centerText should not truncate, got %q", got)
	}
}
