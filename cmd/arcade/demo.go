package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/platform/tui"
	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var demoCmd = &cobra.Command{
	Use:   "demo [cap [lower]]",
	Short: "Run the laser beam demo with chosen frame caps",
	Long: `Run the laser sweep demo and watch the FPS readout react to the
frame pacing policy.

With no arguments the loop free-runs: no delay after fast frames and no
skips after slow ones. Passing the literal word "cap" enables the upper
cap, so the loop sleeps away the rest of each frame budget. Passing
"lower" after "cap" also enables the lower bound: frames that arrive
over budget skip simulation instead of feeding the game an oversized
step.

Examples:
  arcade demo             # free-running, uncapped FPS
  arcade demo cap         # hold the target frame rate
  arcade demo cap lower   # hold the rate and skip late frames`,
	Args: cobra.MaximumNArgs(2),
	Run:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) {
	// Both caps start off; positional literals switch them on in order.
	opts := tui.LoopOptions{Uncapped: true}

	if len(args) > 0 {
		if args[0] != "cap" {
			fmt.Fprintf(os.Stderr, "Error: unknown argument %q (want \"cap\")\n", args[0])
			os.Exit(1)
		}
		opts.Uncapped = false
	}
	if len(args) > 1 {
		if args[1] != "lower" {
			fmt.Fprintf(os.Stderr, "Error: unknown argument %q (want \"lower\")\n", args[1])
			os.Exit(1)
		}
		opts.Catchup = true
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TargetFPS: flagFPS,
		Seed:      flagSeed,
	}

	game, err := registry.Create("laser")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", runErr)
		os.Exit(1)
	}
}
