package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/loop"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

var (
	flagBenchGame     string
	flagBenchSeconds  int
	flagBenchUncapped bool
	flagBenchCatchup  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure the frame scheduler without a terminal UI",
	Long: `Run a game headless against an off-screen buffer and report how
the frame scheduler held up: simulated frames, skipped frames, and the
final FPS estimate.

Examples:
  arcade bench
  arcade bench --game laser --seconds 10
  arcade bench --uncapped               # how fast can one core spin the loop
  arcade bench --fps 240 --catchup      # how often a tight budget forces skips`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().StringVar(&flagBenchGame, "game", "laser", "Game to drive the loop with")
	benchCmd.Flags().IntVar(&flagBenchSeconds, "seconds", 5, "How long to run")
	benchCmd.Flags().BoolVar(&flagBenchUncapped, "uncapped", false, "Disable the upper frame cap")
	benchCmd.Flags().BoolVar(&flagBenchCatchup, "catchup", false, "Skip simulation on over-budget frames")
}

// timedQuit is an input source that emits a single quit event once the
// deadline passes.
type timedQuit struct {
	deadline time.Time
	sent     bool
}

func (t *timedQuit) Poll() []core.Event {
	if t.sent || time.Now().Before(t.deadline) {
		return nil
	}
	t.sent = true
	return []core.Event{{Kind: core.EventQuit}}
}

// benchHandler runs a game against an off-screen buffer.
type benchHandler struct {
	game   registry.Game
	screen *core.Screen
}

func (h *benchHandler) HandleEvent(ev core.Event) { h.game.HandleEvent(ev) }
func (h *benchHandler) Update(dt time.Duration)   { h.game.Update(dt) }
func (h *benchHandler) Render()                   { h.game.Render(h.screen) }

func runBench(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-bench",
	})

	game, err := registry.Create(flagBenchGame)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	cfg := core.DefaultConfig()
	cfg.TargetFPS = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	handler := &benchHandler{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
	input := &timedQuit{
		deadline: time.Now().Add(time.Duration(flagBenchSeconds) * time.Second),
	}

	sched, err := loop.New(input, handler, loop.Options{
		TargetFPS: cfg.TargetFPS,
		CapUpper:  !flagBenchUncapped,
		CapLower:  flagBenchCatchup,
	})
	if err != nil {
		logger.Fatal("cannot build scheduler", "error", err)
	}

	logger.Info("bench started",
		"game", flagBenchGame,
		"seconds", flagBenchSeconds,
		"target_fps", cfg.TargetFPS,
		"cap_upper", !flagBenchUncapped,
		"cap_lower", flagBenchCatchup,
	)

	start := time.Now()
	if err := sched.Run(context.Background()); err != nil {
		logger.Fatal("bench aborted", "error", err)
	}
	elapsed := time.Since(start)

	logger.Info("bench finished",
		"elapsed", elapsed.Round(time.Millisecond),
		"frames", sched.Frames(),
		"skips", sched.Skips(),
		"fps", sched.FPS(),
	)
}
