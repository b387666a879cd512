package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagInteractive bool
	flagRecent      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history and best score",
	Long: `Display the top 10 runs and the best score.

Examples:
  runner scores
  runner scores --recent
  runner scores --clear
  runner scores --interactive
  runner scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the top runs")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (the best score is kept)")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fatal("running scoreboard: %v", err)
		}
		return
	}

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fatal("clearing history: %v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	title := "High Scores - Runner"
	fetch := store.TopRuns
	if flagRecent {
		title = "Recent Runs - Runner"
		fetch = store.RecentRuns
	}
	runs, err := fetch(10)
	if err != nil {
		fatal("retrieving runs: %v", err)
	}
	best, err := store.LoadBestScore(storage.DefaultSlot)
	if err != nil {
		fatal("retrieving best score: %v", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "#", "Score", "Mode", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-8d  %s\n", i+1, r.Score, r.Mode, r.Frames, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Avg: %.0f  Longest: %d ticks\n", stats.Runs, stats.AvgScore, stats.LongestRun)
	}
}
