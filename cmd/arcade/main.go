// arcade is a TUI arcade platform for real-time puzzles in the terminal.
//
// Usage:
//
//	arcade list               - List available games
//	arcade play <game>        - Play a game
//	arcade demo [cap [lower]] - Run the beam demo with chosen frame caps
//	arcade bench              - Measure the frame scheduler headless
//	arcade menu               - Start menu to pick games interactively
//	arcade serve              - Start SSH server for remote play
//	arcade scores <game>      - Show records for a game
//
// Global flags:
//
//	--fps <rate>    - Set target frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tile-arcade/internal/games/fifteen"
	_ "github.com/vovakirdan/tile-arcade/internal/games/laser"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Tile Arcade - Sliding puzzles in your terminal",
	Long: `Tile Arcade is a terminal-based gaming platform built around a
real-time frame scheduler and a mouse-driven fifteen puzzle.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  demo     - Run the laser beam demo with chosen frame caps
  bench    - Measure the frame scheduler without a terminal UI
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View records for a game

Examples:
  arcade list
  arcade play fifteen
  arcade demo cap lower
  arcade menu
  arcade serve --ssh :2222
  arcade scores fifteen`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Target frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
