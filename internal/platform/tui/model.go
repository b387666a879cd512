package tui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/game"
)

// ErrNoTerminal is returned when there is no terminal to draw on.
var ErrNoTerminal = errors.New("tui: no terminal")

// RunRecorder appends finished runs to a history.
type RunRecorder interface {
	SaveRun(mode string, score, frames int) (int64, error)
}

// Options configures the play screen.
type Options struct {
	TickRate int           // Frame callbacks per second
	Pulse    time.Duration // How long a key press stays armed
	Mode     string        // Recorded with each run
	History  RunRecorder   // Optional
	Logger   *log.Logger
	Clock    core.Clock // Stamps input pulses
	Width    int
	Height   int
}

// Model is the Bubble Tea model for the play screen.
//
// Frames are only scheduled while a run is in progress. Starting a run
// schedules the first frame; the frame that ends the run does not schedule
// another.
type Model struct {
	engine  *game.Engine
	input   *core.InputState
	screen  *core.Screen
	opts    Options
	keys    KeyMap
	help    help.Model
	ticking bool
	saved   bool // Whether the current game over was recorded
	quit    bool
}

// NewModel creates a play-screen model driving engine.
func NewModel(engine *game.Engine, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = core.RealClock{}
	}

	return Model{
		engine: engine,
		input:  core.NewInputState(opts.Pulse),
		screen: core.NewScreen(opts.Width, max(opts.Height-1, 0)),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model. Nothing runs until the player starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		if isPress(msg) {
			return m.handleAction(core.ActionJump)
		}

	case tea.BlurMsg:
		m.input.Blur()

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quit = true
		return m, tea.Quit

	case core.ActionJump:
		if m.engine.Phase() == core.PhaseRunning {
			m.input.Pulse(m.opts.Clock.Now())
			return m, nil
		}
		// Jump doubles as start on the title and game-over screens
		return m.start()

	case core.ActionStart, core.ActionRestart:
		return m.start()
	}
	return m, nil
}

func (m Model) start() (tea.Model, tea.Cmd) {
	if !m.engine.Start() {
		return m, nil
	}
	m.input.Blur()
	m.saved = false
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.opts.TickRate)
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.engine.Phase() != core.PhaseRunning {
		m.ticking = false
		return m, nil
	}

	res := m.engine.Frame(now, m.input.Consume(now))
	if res.State.GameOver() {
		m.recordRun(res.State)
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.opts.TickRate)
}

// recordRun appends the finished run to the history, once per game over.
func (m *Model) recordRun(state core.GameState) {
	if m.saved {
		return
	}
	m.saved = true
	if m.opts.History == nil {
		return
	}
	frames := m.engine.Snapshot().Frame
	if _, err := m.opts.History.SaveRun(m.opts.Mode, state.FinalScore, frames); err != nil {
		m.opts.Logger.Warn("could not save run", "score", state.FinalScore, "error", err)
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current snapshot and the help bar.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	game.Render(m.screen, m.engine.Snapshot())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the play screen.
func Run(engine *game.Engine, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return ErrNoTerminal
	}

	p := tea.NewProgram(
		NewModel(engine, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks act as touch presses
		tea.WithReportFocus(),     // Focus loss clears a pending jump
	)

	_, err := p.Run()
	return err
}
