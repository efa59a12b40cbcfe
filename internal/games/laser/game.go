package laser

import (
	"time"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/loop"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// Game sweeps a laser beam across the screen. It is the motion demo for
// the frame loop: constant velocity scaled by the elapsed step, with a
// hard wrap back to the left edge.
type Game struct {
	cfg        config.LaserConfig
	difficulty *config.DifficultyManager

	pos     float64 // beam column
	wraps   int     // completed sweeps
	elapsed time.Duration

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// Package-level variables for config
var (
	customConfigPath string
	selectedPreset   config.DifficultyPreset
)

// SetConfigPath overrides the config search order with an explicit file.
// Empty restores the default search order.
func SetConfigPath(path string) {
	customConfigPath = path
}

// SetPreset selects the difficulty preset applied on the next Reset.
// Empty keeps the loaded config untouched.
func SetPreset(preset config.DifficultyPreset) {
	selectedPreset = preset
}

// New creates a new laser demo.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("laser", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "laser"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Laser Sweep"
}

// Reset initializes/restarts the demo.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	lc, err := config.LoadLaser(customConfigPath)
	if err != nil {
		lc = config.DefaultLaserConfig()
	}
	if selectedPreset != "" {
		config.ApplyLaserPreset(&lc, selectedPreset)
	}
	g.cfg = lc
	g.difficulty = config.NewDifficultyManager(lc.Difficulty)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < 20 || g.screenH < 6

	g.pos = 0
	g.wraps = 0
	g.elapsed = 0
	g.paused = false
}

// HandleEvent applies one key command. Pointer presses are ignored.
func (g *Game) HandleEvent(ev core.Event) {
	if ev.Kind != core.EventKey || g.tooSmall {
		return
	}
	switch ev.Action {
	case core.ActionPause:
		g.paused = !g.paused
	case core.ActionRestart:
		g.pos = 0
		g.wraps = 0
		g.elapsed = 0
		g.paused = false
	}
}

// Update advances the beam by velocity times the elapsed step. Crossing
// the right edge wraps the beam to zero and counts one sweep.
func (g *Game) Update(dt time.Duration) core.StepResult {
	if g.tooSmall || g.paused {
		return core.StepResult{State: g.State()}
	}
	g.elapsed += dt

	v := g.speed()
	prev := g.pos
	g.pos = loop.Advance(g.pos, v, dt, float64(g.screenW-1))
	if g.pos < prev {
		g.wraps++
	}
	return core.StepResult{State: g.State()}
}

// speed is the beam velocity with difficulty scaling applied. Sweeps
// act as score for score-driven progression; whole elapsed seconds act
// as ticks for time-driven progression.
func (g *Game) speed() float64 {
	return g.difficulty.Speed(g.cfg.Beam.Velocity, g.wraps, int(g.elapsed/time.Second))
}

// State returns the sweep count as the score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.wraps,
		Paused: g.paused,
	}
}
