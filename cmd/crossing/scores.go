package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best logged rounds",
	Long: `Display the top rounds from the round log, with totals and the best score.

Examples:
  crossing scores
  crossing scores --limit 25
  crossing scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all logged rounds for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := crossing.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'crossing list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRounds(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			return
		}
		fmt.Printf("Cleared the round log for %s.\n", title)
		return
	}

	rounds, err := store.TopRounds(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'crossing play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-9s  %-5s  %-7s  %s\n", "Rank", "Score", "Reason", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-5s  %-7s  %s\n", "----", "-----", "------", "-----", "----", "----")

	for i, r := range rounds {
		fmt.Printf("  %-4d  %-6d  %-9s  %-5d  %-7s  %s\n",
			i+1, r.Score, r.Reason, r.Moves,
			r.Duration.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Rounds: %d  Finishes: %d  Avg: %.1f  Moves: %d\n",
			stats.Rounds, stats.Finishes, stats.AvgScore, stats.TotalMoves)
		fmt.Printf("Best: %d\n", stats.HighScore)
	}
}
