package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/fifteen"
	"github.com/vovakirdan/tile-arcade/internal/games/laser"
	"github.com/vovakirdan/tile-arcade/internal/platform/tui"
	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagUncapped   bool
	flagCatchup    bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Mouse      - Slide the tile next to the gap
  S          - Shuffle the current deal
  N / R      - New deal / restart
  P          - Pause
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 3x3 board, faster slides
  normal - 4x4 board, the classic fifteen
  hard   - 5x5 board, slower slides
  fixed  - Values straight from the config file

Frame pacing:
  --uncapped  - Run as fast as the terminal lets us (FPS readout shows the cost)
  --catchup   - Skip simulation on frames that arrive over budget

Examples:
  arcade play fifteen
  arcade play fifteen --difficulty hard
  arcade play fifteen --config ./my-fifteen.yaml
  arcade play laser --uncapped`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagUncapped, "uncapped", false, "Disable the upper frame cap")
	playCmd.Flags().BoolVar(&flagCatchup, "catchup", false, "Skip simulation on over-budget frames")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the setup selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TargetFPS: flagFPS,
		Seed:      flagSeed,
	}

	// Set config path and difficulty for games before creation
	switch gameID {
	case "fifteen":
		fifteen.SetConfigPath(flagConfig)

		if flagDifficulty != "" {
			fifteen.SetPreset(config.DifficultyPreset(flagDifficulty))
			break
		}

		// Show the board selector when no preset was given
		selection, updatedCfg, selErr := tui.RunFifteenSetup(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}
		fifteen.SetPreset(selection.Preset)

	case "laser":
		laser.SetConfigPath(flagConfig)
		laser.SetPreset(config.DifficultyPreset(flagDifficulty))
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, tui.LoopOptions{
		Uncapped: flagUncapped,
		Catchup:  flagCatchup,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
