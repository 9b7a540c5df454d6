package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typefall/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagScoresStats      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top recorded sessions.

Examples:
  typefall scores
  typefall scores --difficulty hard
  typefall scores --limit 25
  typefall scores --stats`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Filter by preset: easy, normal, hard, fixed")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregated statistics instead of the table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresStats {
		printStats(store)
		return
	}

	scores, err := store.TopScores(flagScoresDifficulty, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := "High Scores"
	if flagScoresDifficulty != "" {
		title = fmt.Sprintf("High Scores (%s)", flagScoresDifficulty)
	}
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'typefall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Lines", "Level", "Words", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-6d  %-8s  %s\n",
			i+1, entry.Score, entry.Lines, entry.Level, entry.Words, entry.Difficulty, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Session Statistics")
	fmt.Println()
	fmt.Printf("  Games played:   %d\n", stats.GamesCount)
	fmt.Printf("  High score:     %d\n", stats.HighScore)
	fmt.Printf("  Average score:  %.1f\n", stats.AvgScore)
	fmt.Printf("  Total lines:    %d\n", stats.TotalLines)
	fmt.Printf("  Total words:    %d\n", stats.TotalWords)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:    %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
