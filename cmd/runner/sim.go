package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagTicks     int
	flagJumpEvery int
	flagRecord    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal at the nominal frame rate, pressing
jump on a fixed cadence, and print the outcome.

Examples:
  runner sim
  runner sim --ticks 10000 --jump-every 35 --seed 42
  runner sim --difficulty hard --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3000, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Press jump every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run and best score to the database")
}

// simResult is the outcome of a headless run.
type simResult struct {
	Ticks int
	State core.GameState
	Speed float64
	Coins int // Coins collected
	Stars int // Stars collected
}

// simulate plays one run with a fixed timestep.
func simulate(cfg config.RunnerConfig, seed int64, ticks, jumpEvery int, best game.BestScoreStore, logger *log.Logger) simResult {
	engine := game.NewEngine(cfg, core.RuntimeConfig{TickRate: 60, Seed: seed},
		game.WithBestScoreStore(best),
		game.WithLogger(logger),
	)
	engine.Start()

	counter := &eventCounter{Ticker: engine}
	last, n := game.FixedStep{Step: engine.Nominal()}.Run(counter, ticks, game.JumpEvery(jumpEvery))

	return simResult{
		Ticks: n,
		State: last.State,
		Speed: engine.Snapshot().Speed,
		Coins: counter.coins,
		Stars: counter.stars,
	}
}

// eventCounter tallies pickups while forwarding ticks.
type eventCounter struct {
	game.Ticker
	coins, stars int
}

func (c *eventCounter) Advance(elapsed time.Duration, in core.InputFrame) game.TickResult {
	res := c.Ticker.Advance(elapsed, in)
	for _, ev := range res.Events {
		switch ev {
		case game.EventCoin:
			c.coins++
		case game.EventStar:
			c.stars++
		}
	}
	return res
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, mode, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger := newLogger(os.Stderr)
	if logFile, err := openLogFile(); err != nil {
		fatal("%v", err)
	} else if logFile != nil {
		defer logFile.Close()
		logger = newLogger(logFile)
	}

	var best game.BestScoreStore = &game.MemoryBestScore{}
	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fatal("opening scores database: %v", err)
		}
		defer store.Close()
		best = storage.BestScoreSlot{Store: store, Slot: storage.DefaultSlot}
	}

	res := simulate(cfg, flagSeed, flagTicks, flagJumpEvery, best, logger)

	outcome := "survived"
	if res.State.GameOver() {
		outcome = "crashed"
	}
	score := res.State.Score
	if res.State.GameOver() {
		score = res.State.FinalScore
	}

	fmt.Printf("Outcome: %s after %d ticks\n", outcome, res.Ticks)
	fmt.Printf("Score:   %d (best %d)\n", score, res.State.BestScore)
	fmt.Printf("Pickups: %d coins, %d stars\n", res.Coins, res.Stars)
	fmt.Printf("Speed:   %.1f\n", res.Speed)

	if store != nil && res.State.GameOver() {
		if _, err := store.SaveRun(mode, score, res.Ticks); err != nil {
			logger.Warn("could not save run", "error", err)
		}
	}
}
