package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show records for a game",
	Long: `Display the top 10 session scores and the 10 best solves for the
specified game. Solves are ranked by fewest moves, ties broken by time.

Examples:
  arcade scores fifteen
  arcade scores laser`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
	} else {
		// Print header
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

		// Print scores
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		// Show high score
		fmt.Println()
		if highScore, hsErr := store.HighScore(gameID); hsErr == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	// Best solves across all board sizes
	solves, err := store.TopSolves(gameID, 0, 10)
	if err != nil || len(solves) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Best Solves - %s\n", title)
	fmt.Println()

	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %s\n", "Rank", "Moves", "Time", "Size", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "----", "----", "----")

	for i, s := range solves {
		size := fmt.Sprintf("%dx%d", s.BoardSize, s.BoardSize)
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6s  %-5s  %s\n", i+1, s.Moves, formatSolveDuration(s.Duration), size, dateStr)
	}
}

// formatSolveDuration formats a solve duration as m:ss.
func formatSolveDuration(d time.Duration) string {
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
