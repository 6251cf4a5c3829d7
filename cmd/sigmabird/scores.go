package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sigma-bird/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores and overall statistics.

Examples:
  sigmabird scores
  sigmabird scores --limit 20
  sigmabird scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			store.Close()
			fatal("clearing scores: %v", err)
		}
		fmt.Println("All scores cleared.")
		return
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		store.Close()
		fatal("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Sigma Bird")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'sigmabird play' to set the first high score!")
		return
	}

	printScores(scores)

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Players: %d  Best: %d  Avg: %.1f\n",
			stats.GamesCount, stats.Players, stats.HighScore, stats.AvgScore)
	}
}

func printScores(scores []storage.ScoreEntry) {
	fmt.Printf("  %-4s  %-16s  %-6s  %-8s  %s\n", "Rank", "Player", "Score", "Ticks", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-8s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6d  %-8d  %s\n", i+1, entry.Player, entry.Score, entry.Ticks, dateStr)
	}
}
