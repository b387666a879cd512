package game

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	CoinChar     = '●'
	StarChar     = '★'
	GroundChar   = '═'
	SoilChar     = '░'
	StreakChar   = '-'
)

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
	maxY   float64
}

func newViewport(dst *core.Screen, s Snapshot) viewport {
	return viewport{
		sx:   float64(dst.Width()) / s.Width,
		sy:   float64(dst.Height()) / s.Height,
		maxY: float64(dst.Height() - 1),
	}
}

// box converts a world rectangle to cells, never smaller than one cell.
func (v viewport) box(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * v.sx))
	y = int(math.Floor(r.Y * v.sy))
	w = max(int(math.Ceil(r.Right()*v.sx))-x, 1)
	h = max(int(math.Ceil(r.Bottom()*v.sy))-y, 1)
	return x, y, w, h
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y * v.sy))
}

// row maps a world height to a screen row that is always visible.
func (v viewport) row(y float64) int {
	return int(core.ClampF(math.Floor(y*v.sy), 0, v.maxY))
}

// Render draws a snapshot into dst. It reads only the snapshot.
func Render(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || s.Width <= 0 || s.Height <= 0 {
		return
	}
	v := newViewport(dst, s)

	drawGround(dst, v, s)

	for _, o := range s.Obstacles {
		x, y, w, h := v.box(o.Rect())
		dst.FillRect(x, y, w, h, ObstacleChar, core.ColorRed)
	}
	for _, c := range s.Coins {
		x, y := v.point(c.X, c.Y)
		dst.SetColor(x, y, CoinChar, core.ColorYellow)
	}
	for _, st := range s.Stars {
		x, y := v.point(st.X, st.Y)
		dst.SetColor(x, y, StarChar, core.ColorMagenta)
	}

	playerColor := core.ColorBlue
	if s.Invulnerable {
		playerColor = core.ColorGold
	}
	x, y, w, h := v.box(s.Player.Rect())
	dst.FillRect(x, y, w, h, PlayerChar, playerColor)

	drawHUD(dst, s)

	switch s.State.Phase {
	case core.PhaseIdle:
		drawCenteredMessage(dst, "RUN", "Space or Enter to start  |  Q to quit")
	case core.PhaseGameOver:
		title := "GAME OVER"
		if s.State.FinalScore > 0 && s.State.FinalScore == s.State.BestScore {
			title = "GAME OVER - NEW BEST!"
		}
		drawCenteredMessage(dst, title,
			fmt.Sprintf("Score: %d  Best: %d  |  Enter or R to restart", s.State.FinalScore, s.State.BestScore))
	}
}

func drawGround(dst *core.Screen, v viewport, s Snapshot) {
	gy := v.row(s.Ground)
	dst.DrawHLine(0, gy, dst.Width(), GroundChar, core.ColorGreen)
	for y := gy + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), SoilChar, core.ColorGreen)
	}

	// Parallax streaks scroll at a fraction of the frame counter
	for i := 0; i < 6; i++ {
		wx := math.Mod(float64(s.Frame)*0.3+float64(i)*120, s.Width)
		x0, y := v.point(wx, s.Ground-20)
		x1, _ := v.point(wx+80, s.Ground-20)
		dst.DrawHLine(x0, y, max(x1-x0, 1), StreakChar, core.ColorGray)
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d  Best: %d ", s.State.Score, s.State.BestScore), core.ColorWhite)

	right := fmt.Sprintf(" Spd: %.1f ", s.Speed)
	if s.Player.CanDoubleJump() {
		right = " x2" + right
	}
	if s.Invulnerable {
		right = fmt.Sprintf(" %c %d %s", StarChar, s.InvulnTicks, right)
	}
	x := core.Clamp(dst.Width()-utf8.RuneCountInString(right)-1, 0, dst.Width())
	dst.DrawTextColor(x, 0, right, core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	titleX := boxX + (boxW-utf8.RuneCountInString(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorWhite)

	subX := boxX + (boxW-utf8.RuneCountInString(subtitle))/2
	dst.DrawTextColor(subX, boxY+3, subtitle, core.ColorDefault)
}
