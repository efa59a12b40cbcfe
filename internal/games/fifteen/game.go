package fifteen

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tile-arcade/internal/assets"
	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// neighborOffsets is the fixed probe order around a clicked tile. At
// most one neighbor can be blank on a valid board, so the order only
// pins down determinism.
var neighborOffsets = [4][2]int{
	{-1, 0}, // up
	{0, -1}, // left
	{1, 0},  // down
	{0, 1},  // right
}

// Game implements the sliding fifteen puzzle.
type Game struct {
	cfg        config.FifteenConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	board *Board
	move  *Move

	backdrops *assets.Pool
	backdrop  *assets.Backdrop

	// Screen dimensions
	screenW   int
	screenH   int
	boardRect core.Rect // inner tile area, in screen cells
	tooSmall  bool

	moves   int           // committed slides in the current deal
	solves  int           // finished deals this session
	elapsed time.Duration // time spent on the current deal
	paused  bool
	solved  bool
}

// Package-level variables for config
var (
	customConfigPath string
	selectedPreset   = config.DifficultyFixed
)

// SetConfigPath overrides the config search order with an explicit file.
// Empty restores the default search order.
func SetConfigPath(path string) {
	customConfigPath = path
}

// SetPreset selects the board preset applied on the next Reset.
func SetPreset(preset config.DifficultyPreset) {
	selectedPreset = preset
}

// New creates a new fifteen puzzle game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("fifteen", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "fifteen"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Fifteen"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	fc, err := config.LoadFifteen(customConfigPath)
	if err != nil {
		fc = config.DefaultFifteenConfig()
	}
	config.ApplyFifteenPreset(&fc, selectedPreset)
	g.cfg = fc
	g.difficulty = config.NewDifficultyManager(fc.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	board, err := NewBoard(fc.Board.Size)
	if err != nil {
		g.cfg = config.DefaultFifteenConfig()
		board, _ = NewBoard(g.cfg.Board.Size)
	}
	g.board = board

	artW := g.board.Size() * g.cfg.Board.CellWidth
	artH := g.board.Size() * g.cfg.Board.CellHeight
	pool, err := assets.Load(artW, artH, g.cfg.Backdrops.Dir)
	if err != nil {
		pool, _ = assets.Load(artW, artH, "")
	}
	g.backdrops = pool
	g.backdrop = nil

	g.layout()
	g.solves = 0
	g.newDeal(true)
}

// layout computes the board placement for the current screen size.
func (g *Game) layout() {
	boxW := g.board.Size()*g.cfg.Board.CellWidth + 2
	boxH := g.board.Size()*g.cfg.Board.CellHeight + 2
	g.tooSmall = g.screenW < boxW || g.screenH < boxH+hudHeight+1
	g.boardRect = core.NewRect((g.screenW-boxW)/2+1, hudHeight+1, boxW-2, boxH-2)
}

// newDeal shuffles a fresh puzzle. The backdrop changes with the deal
// unless the caller asked to keep it.
func (g *Game) newDeal(newBackdrop bool) {
	g.board.Shuffle(g.rng, g.cfg.Shuffle.SolvableOnly)
	if newBackdrop || g.backdrop == nil {
		g.backdrop = g.backdrops.Pick(g.rng)
	}
	g.move = nil
	g.moves = 0
	g.elapsed = 0
	g.paused = false
	g.solved = false
}

// HandleEvent applies one pointer press or mapped key command.
func (g *Game) HandleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventPointerDown:
		g.handleClick(ev.X, ev.Y)
	case core.EventKey:
		g.handleAction(ev.Action)
	}
}

func (g *Game) handleAction(a core.Action) {
	if g.tooSmall {
		return
	}
	switch a {
	case core.ActionPause:
		if !g.solved {
			g.paused = !g.paused
		}
	case core.ActionShuffle:
		g.newDeal(false)
	case core.ActionRestart:
		g.newDeal(true)
	}
}

// handleClick starts a slide when the press lands on a tile next to the
// blank. Presses during an active slide are ignored; a press on the
// finished picture deals the next puzzle.
func (g *Game) handleClick(x, y int) {
	if g.tooSmall || g.paused || g.move != nil {
		return
	}
	if g.solved {
		g.newDeal(true)
		return
	}
	col, row, ok := g.boardRect.CellAt(x, y, g.cfg.Board.CellWidth, g.cfg.Board.CellHeight)
	if !ok {
		return
	}
	if g.board.At(row, col) == 0 {
		return
	}
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if g.board.InBounds(nr, nc) && g.board.At(nr, nc) == 0 {
			g.move = &Move{Row: row, Col: col, DirRow: d[0], DirCol: d[1]}
			return
		}
	}
}

// Update advances the slide animation by the elapsed step. A move that
// reaches MoveSpan commits: the tile value jumps into the blank's cell
// and the origin becomes the new blank.
func (g *Game) Update(dt time.Duration) core.StepResult {
	res := core.StepResult{}
	if g.tooSmall || g.paused || g.solved {
		res.State = g.State()
		return res
	}
	g.elapsed += dt

	if g.move != nil {
		speed := g.difficulty.Speed(g.cfg.Animation.Speed, g.solves, 0)
		g.move.Offset += speed * dt.Seconds()
		if g.move.Offset >= MoveSpan {
			g.commitMove()
			if g.board.Solved() {
				g.solved = true
				g.solves++
				res.Solve = &core.Solve{
					Moves:     g.moves,
					Elapsed:   g.elapsed,
					BoardSize: g.board.Size(),
				}
			}
		}
	}

	res.State = g.State()
	return res
}

func (g *Game) commitMove() {
	row, col := g.move.Target()
	g.board.set(row, col, g.board.At(g.move.Row, g.move.Col))
	g.board.set(g.move.Row, g.move.Col, 0)
	g.move = nil
	g.moves++
}

// State returns the session score (finished puzzles) and status flags.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.solves,
		Paused: g.paused,
		Solved: g.solved,
	}
}
