package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jangam/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top runs",
	Long: `Display the top recorded runs.

Examples:
  jangam scores
  jangam scores --limit 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Jangam")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jangam play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-10s  %-7s  %-5s  %s\n", "Rank", "Player", "Score", "Plain", "Rich", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %-7s  %-5s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-10d  %-7d  %-5d  %s\n",
			i+1, r.Player, r.Score, r.PlainMined, r.PreciousMined, dateStr)
	}

	fmt.Println()
	stats, err := store.GetStats()
	if err == nil && stats.RunCount > 0 {
		fmt.Printf("Best: %d across %d runs (avg %.0f)\n", stats.HighScore, stats.RunCount, stats.AvgScore)
	}
}
