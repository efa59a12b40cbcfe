package fifteen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
)

// pinConfig points the loader at a fixed file so tests never pick up
// configs from the host machine.
func pinConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fifteen.yaml")
	data := []byte(`board:
  size: 4
  cell_width: 6
  cell_height: 3
animation:
  speed: 300
shuffle:
  solvable_only: true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TargetFPS: 60, Seed: seed})
	if g.tooSmall {
		t.Fatal("80x24 should fit the default board")
	}
	return g
}

// plantBoard swaps in a handcrafted layout mid-session.
func plantBoard(t *testing.T, g *Game, n int, cells []int) {
	t.Helper()
	b, err := NewBoardFrom(n, cells)
	if err != nil {
		t.Fatalf("plant board: %v", err)
	}
	g.board = b
}

// clickCell presses the center of a board cell.
func clickCell(g *Game, row, col int) {
	x := g.boardRect.X + col*g.cfg.Board.CellWidth + g.cfg.Board.CellWidth/2
	y := g.boardRect.Y + row*g.cfg.Board.CellHeight + g.cfg.Board.CellHeight/2
	g.HandleEvent(core.Event{Kind: core.EventPointerDown, X: x, Y: y})
}

func TestDeterminism(t *testing.T) {
	pinConfig(t)

	g1 := newTestGame(t, 42)
	g2 := newTestGame(t, 42)
	if g1.Snapshot() != g2.Snapshot() {
		t.Fatalf("same seed dealt different games:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}

	// Same click script against both games.
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			clickCell(g1, row, col)
			clickCell(g2, row, col)
			g1.Update(50 * time.Millisecond)
			g2.Update(50 * time.Millisecond)
		}
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("same inputs diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSeedsProduceDifferentDeals(t *testing.T) {
	pinConfig(t)
	g1 := newTestGame(t, 1)
	g2 := newTestGame(t, 2)
	if g1.Snapshot().Grid == g2.Snapshot().Grid {
		t.Error("different seeds dealt the same layout")
	}
}

func TestClickStartsSlide(t *testing.T) {
	pinConfig(t)
	// Blank sits at (1,1).
	layout := []int{
		1, 2, 3, 4,
		5, 0, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	}

	tests := []struct {
		name           string
		row, col       int
		dirRow, dirCol int
	}{
		{"blank above", 2, 1, -1, 0},
		{"blank left", 1, 2, 0, -1},
		{"blank below", 0, 1, 1, 0},
		{"blank right", 1, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 7)
			plantBoard(t, g, 4, layout)
			gridBefore := gridString(g.board)

			clickCell(g, tt.row, tt.col)
			if g.move == nil {
				t.Fatal("expected a slide to start")
			}
			if g.move.Row != tt.row || g.move.Col != tt.col {
				t.Errorf("origin = (%d,%d), expected (%d,%d)",
					g.move.Row, g.move.Col, tt.row, tt.col)
			}
			if g.move.DirRow != tt.dirRow || g.move.DirCol != tt.dirCol {
				t.Errorf("dir = (%d,%d), expected (%d,%d)",
					g.move.DirRow, g.move.DirCol, tt.dirRow, tt.dirCol)
			}
			if g.move.Offset != 0 {
				t.Errorf("fresh move offset = %v, expected 0", g.move.Offset)
			}
			if got := gridString(g.board); got != gridBefore {
				t.Error("grid mutated before the slide committed")
			}
		})
	}
}

func TestClickRejections(t *testing.T) {
	pinConfig(t)
	g := newTestGame(t, 7)
	plantBoard(t, g, 4, []int{
		1, 2, 3, 4,
		5, 0, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})
	before := g.Snapshot()

	clickCell(g, 3, 3) // not adjacent to the blank
	if got := g.Snapshot(); got != before {
		t.Errorf("non-adjacent click changed state:\n%+v\n%+v", got, before)
	}

	clickCell(g, 1, 1) // the blank itself
	if got := g.Snapshot(); got != before {
		t.Errorf("blank click changed state:\n%+v\n%+v", got, before)
	}

	g.HandleEvent(core.Event{Kind: core.EventPointerDown, X: 0, Y: 0}) // off the board
	if got := g.Snapshot(); got != before {
		t.Errorf("off-board click changed state:\n%+v\n%+v", got, before)
	}

	clickCell(g, 0, 1)
	g.Update(50 * time.Millisecond)
	mid := g.Snapshot()
	if mid.State != StateAnimating {
		t.Fatalf("state = %q, expected %q", mid.State, StateAnimating)
	}
	clickCell(g, 2, 1) // ignored while a slide is in flight
	if got := g.Snapshot(); got != mid {
		t.Errorf("click during slide changed state:\n%+v\n%+v", got, mid)
	}
}

func TestSlideCommit(t *testing.T) {
	pinConfig(t)
	g := newTestGame(t, 7)
	plantBoard(t, g, 4, []int{
		1, 2, 3, 4,
		5, 6, 0, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})

	clickCell(g, 1, 1)
	if g.move == nil {
		t.Fatal("expected a slide to start")
	}
	if g.move.DirRow != 0 || g.move.DirCol != 1 {
		t.Fatalf("dir = (%d,%d), expected (0,1)", g.move.DirRow, g.move.DirCol)
	}

	// 300 units/s for 200ms covers 60 of the 100-unit span.
	g.Update(200 * time.Millisecond)
	if g.board.At(1, 1) != 6 || g.board.At(1, 2) != 0 {
		t.Error("grid mutated before the slide finished")
	}
	if g.move == nil || g.move.Offset <= 0 {
		t.Fatal("offset did not advance")
	}

	g.Update(200 * time.Millisecond) // crosses the span
	if g.move != nil {
		t.Fatal("move still active after crossing the span")
	}
	if got := g.board.At(1, 2); got != 6 {
		t.Errorf("target cell = %d, expected 6", got)
	}
	if got := g.board.At(1, 1); got != 0 {
		t.Errorf("origin cell = %d, expected the blank", got)
	}
	if g.moves != 1 {
		t.Errorf("moves = %d, expected 1", g.moves)
	}
}

func TestOffsetMonotonic(t *testing.T) {
	pinConfig(t)
	g := newTestGame(t, 7)
	plantBoard(t, g, 4, []int{
		1, 2, 3, 4,
		5, 0, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})

	clickCell(g, 1, 0)
	last := 0.0
	for i := 0; i < 5; i++ {
		g.Update(20 * time.Millisecond)
		if g.move == nil {
			t.Fatal("slide finished early")
		}
		if g.move.Offset <= last {
			t.Fatalf("offset went from %v to %v", last, g.move.Offset)
		}
		last = g.move.Offset
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	pinConfig(t)
	g := newTestGame(t, 7)
	plantBoard(t, g, 4, []int{
		1, 2, 3, 4,
		5, 0, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})

	clickCell(g, 1, 0)
	g.Update(20 * time.Millisecond)

	g.HandleEvent(core.Event{Kind: core.EventKey, Action: core.ActionPause})
	frozen := g.Snapshot()
	if frozen.State != StatePaused {
		t.Fatalf("state = %q, expected %q", frozen.State, StatePaused)
	}

	g.Update(500 * time.Millisecond)
	if got := g.Snapshot(); got != frozen {
		t.Errorf("paused update changed state:\n%+v\n%+v", got, frozen)
	}

	clickCell(g, 2, 1) // clicks are ignored while paused
	if got := g.Snapshot(); got != frozen {
		t.Error("paused click changed state")
	}

	g.HandleEvent(core.Event{Kind: core.EventKey, Action: core.ActionPause})
	g.Update(20 * time.Millisecond)
	if g.move == nil || g.move.Offset <= frozen.Move.Offset {
		t.Error("slide did not resume after unpause")
	}
}

func TestSolveReportedOnce(t *testing.T) {
	pinConfig(t)
	g := newTestGame(t, 7)
	plantBoard(t, g, 4, []int{
		1, 0, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})

	clickCell(g, 0, 0) // slides tile 1 back home
	res := g.Update(400 * time.Millisecond)
	if res.Solve == nil {
		t.Fatal("expected a solve report on the committing update")
	}
	if res.Solve.Moves != 1 {
		t.Errorf("solve moves = %d, expected 1", res.Solve.Moves)
	}
	if res.Solve.BoardSize != 4 {
		t.Errorf("solve board size = %d, expected 4", res.Solve.BoardSize)
	}
	if res.Solve.Elapsed <= 0 {
		t.Error("solve elapsed not recorded")
	}
	if !res.State.Solved {
		t.Error("state not marked solved")
	}
	if got := g.State().Score; got != 1 {
		t.Errorf("score = %d, expected 1", got)
	}

	if res := g.Update(100 * time.Millisecond); res.Solve != nil {
		t.Error("solve reported twice")
	}
}

func TestSolvedClickDealsNewPuzzle(t *testing.T) {
	pinConfig(t)
	g := newTestGame(t, 7)
	plantBoard(t, g, 4, []int{
		1, 0, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})
	clickCell(g, 0, 0)
	g.Update(400 * time.Millisecond)
	if !g.State().Solved {
		t.Fatal("puzzle should be solved")
	}
	solvedGrid := g.Snapshot().Grid

	clickCell(g, 3, 3) // any press on the finished picture
	if g.State().Solved {
		t.Fatal("click on the solved puzzle should deal a new one")
	}
	if g.moves != 0 {
		t.Errorf("moves = %d, expected 0 after a new deal", g.moves)
	}
	if g.elapsed != 0 {
		t.Errorf("elapsed = %v, expected 0 after a new deal", g.elapsed)
	}
	if err := g.board.Validate(); err != nil {
		t.Fatalf("new deal invalid: %v", err)
	}
	if !g.board.Solvable() {
		t.Error("solvable-only config dealt an unsolvable layout")
	}
	if g.Snapshot().Grid == solvedGrid {
		t.Error("expected a fresh shuffle")
	}
	if got := g.State().Score; got != 1 {
		t.Errorf("score = %d, solves should survive a new deal", got)
	}
}

func TestKeyCommands(t *testing.T) {
	pinConfig(t)
	g := newTestGame(t, 9)
	gridBefore := g.Snapshot().Grid

	g.HandleEvent(core.Event{Kind: core.EventKey, Action: core.ActionPause})
	if !g.State().Paused {
		t.Fatal("pause did not latch")
	}
	g.HandleEvent(core.Event{Kind: core.EventKey, Action: core.ActionPause})
	if g.State().Paused {
		t.Fatal("pause did not release")
	}

	g.HandleEvent(core.Event{Kind: core.EventKey, Action: core.ActionShuffle})
	if g.Snapshot().Grid == gridBefore {
		t.Error("shuffle kept the old deal")
	}
	if err := g.board.Validate(); err != nil {
		t.Fatalf("shuffled deal invalid: %v", err)
	}

	g.moves = 5
	g.elapsed = time.Minute
	g.HandleEvent(core.Event{Kind: core.EventKey, Action: core.ActionRestart})
	if g.moves != 0 || g.elapsed != 0 {
		t.Errorf("restart kept counters: moves=%d elapsed=%v", g.moves, g.elapsed)
	}
}

func TestPresetChangesBoard(t *testing.T) {
	pinConfig(t)
	SetPreset(config.DifficultyEasy)
	t.Cleanup(func() { SetPreset(config.DifficultyFixed) })

	g := newTestGame(t, 3)
	if got := g.board.Size(); got != 3 {
		t.Errorf("easy preset board size = %d, expected 3", got)
	}

	SetPreset(config.DifficultyHard)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3})
	if got := g.board.Size(); got != 5 {
		t.Errorf("hard preset board size = %d, expected 5", got)
	}
}

func TestTooSmallScreen(t *testing.T) {
	pinConfig(t)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})
	if !g.tooSmall {
		t.Fatal("20x10 should be too small for the 4x4 board")
	}
	if got := g.Snapshot().State; got != StatePausedSmall {
		t.Errorf("state = %q, expected %q", got, StatePausedSmall)
	}

	g.Update(time.Second)
	if g.elapsed != 0 {
		t.Error("timer ran while the window was too small")
	}

	dst := core.NewScreen(20, 10)
	g.Render(dst)
	if !strings.Contains(dst.String(), "too small") {
		t.Error("missing resize hint")
	}
}

func TestRenderMovingTileOffset(t *testing.T) {
	pinConfig(t)
	g := newTestGame(t, 7)
	plantBoard(t, g, 4, []int{
		1, 2, 3, 4,
		5, 0, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})

	clickCell(g, 1, 0) // tile 5 slides right
	g.Update(100 * time.Millisecond) // 30 units: 2 of the 6 screen cells

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	// Label is centered in the displaced tile.
	x := g.boardRect.X + 2 + 2
	y := g.boardRect.Y + 3 + 1
	if got := dst.Get(x, y); got != '5' {
		t.Errorf("moving tile label at (%d,%d) = %q, expected '5'", x, y, got)
	}

	// A resting tile stays at its grid position.
	nx := g.boardRect.X + 6 + 2
	ny := g.boardRect.Y + 1
	if got := dst.Get(nx, ny); got != '2' {
		t.Errorf("resting tile label = %q, expected '2'", got)
	}
}

func TestRenderSolvedBanner(t *testing.T) {
	pinConfig(t)
	g := newTestGame(t, 7)
	plantBoard(t, g, 4, []int{
		1, 0, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})
	clickCell(g, 0, 0)
	g.Update(400 * time.Millisecond)

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), "Solved in 1 moves") {
		t.Error("missing solved banner")
	}
}
