package fifteen

import (
	"strconv"
	"strings"
	"time"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateIdle        GameStateType = "idle"
	StateAnimating   GameStateType = "animating"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Grid     string // row-major cell values, space separated
	Move     Move   // zero value unless State is animating
	Moves    int
	Solves   int
	Elapsed  time.Duration
	Backdrop string
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateIdle
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.solved:
		state = StateSolved
	case g.move != nil:
		state = StateAnimating
	}

	snap := Snapshot{
		Grid:     gridString(g.board),
		Moves:    g.moves,
		Solves:   g.solves,
		Elapsed:  g.elapsed,
		Backdrop: g.backdrop.Name(),
		State:    state,
	}
	if g.move != nil {
		snap.Move = *g.move
	}
	return snap
}

// gridString encodes the layout row-major so snapshots stay comparable
// across board sizes.
func gridString(b *Board) string {
	var sb strings.Builder
	for i, v := range b.Cells() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
