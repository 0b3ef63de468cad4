package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the leaderboard",
	Long: `Display the top scores and run statistics.

The default leaderboard lives in memory and is empty in a fresh process;
point --db at a file to inspect scores kept by earlier sessions.

Examples:
  platformer scores --db ./scores.db
  platformer scores --db ./scores.db --limit 25
  platformer scores --db ./scores.db --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fatal("unknown game %q (run 'platformer list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Cleared scores for %s\n", game.Title())
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fatal("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		if flagDBPath == storage.MemoryDSN {
			fmt.Fprintln(os.Stderr, "(the in-memory leaderboard starts empty; use --db <file> to keep scores)")
		}
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "Rank", "Score", "Theme", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-10s  %-8d  %s\n",
			i+1, entry.Score, entry.Theme, entry.Ticks, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	if stats.TopTheme != "" {
		fmt.Printf("Most runs ended in: %s\n", stats.TopTheme)
	}
}
