package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W  - Jump (press again in mid-air to double jump)
  Mouse click - Jump
  Enter       - Start
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower base speed
  normal - Default speed
  hard   - Faster base speed
  fixed  - No speed ramp, stays at the config's base speed

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml --mute
  runner play --log-file runner.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fatal("%v", tui.ErrNoTerminal)
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		fatal("%v", tui.ErrNoTerminal)
	}

	cfg, mode, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	// The TUI owns the terminal, so in-game logs only go to a log file
	logger := newLogger(os.Stderr)
	gameLogger := newLogger(io.Discard)
	logFile, err := openLogFile()
	if err != nil {
		fatal("%v", err)
	}
	if logFile != nil {
		defer logFile.Close()
		logger = newLogger(logFile)
		gameLogger = logger
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}

	player := audio.NewPlayer(cfg.Audio, gameLogger)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable, playing muted", "error", err)
	}

	engineOpts := []game.Option{
		game.WithAudio(player),
		game.WithLogger(gameLogger),
	}
	opts := tui.Options{
		TickRate: flagFPS,
		Pulse:    time.Duration(cfg.Timing.PulseMs * float64(time.Millisecond)),
		Mode:     mode,
		Logger:   gameLogger,
		Width:    width,
		Height:   height,
	}
	if store != nil {
		engineOpts = append(engineOpts, game.WithBestScoreStore(storage.BestScoreSlot{Store: store, Slot: storage.DefaultSlot}))
		opts.History = store
	}

	engine := game.NewEngine(cfg, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, engineOpts...)

	runErr := tui.Run(engine, opts)

	// Release devices before potential exit
	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
	logger.Debug("session over", "best", engine.State().BestScore)
}
