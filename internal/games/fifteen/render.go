package fifteen

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// hudHeight is the rows reserved above the board frame.
const hudHeight = 3

// Render draws the board, its backdrop art and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderOverlays(dst)
	g.renderHelp(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title and the per-deal counters.
func (g *Game) renderHUD(dst *core.Screen) {
	boxX := g.boardRect.X - 1
	boxW := g.boardRect.W + 2

	title := g.Title()
	dst.DrawText(boxX+(boxW-len(title))/2, 0, title)

	dst.DrawText(boxX, 1, fmt.Sprintf("Moves: %d", g.moves))

	info := fmt.Sprintf("Solved: %d  %s", g.solves, formatElapsed(g.elapsed))
	infoX := boxX + boxW - len(info)
	if infoX < boxX {
		infoX = boxX
	}
	dst.DrawText(infoX, 1, info)
}

// renderBoard draws the frame, the resting tiles and the sliding tile.
// Each tile shows its home region of the backdrop art, so the picture
// assembles as the layout approaches solved.
func (g *Game) renderBoard(dst *core.Screen) {
	box := core.NewRect(g.boardRect.X-1, g.boardRect.Y-1, g.boardRect.W+2, g.boardRect.H+2)
	dst.DrawBox(box)

	n := g.board.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := g.board.At(row, col)
			if v == 0 {
				if g.solved {
					g.renderTile(dst, 0, row, col, 0, 0)
				}
				continue
			}
			if g.move != nil && g.move.Row == row && g.move.Col == col {
				continue // drawn last, on top
			}
			g.renderTile(dst, v, row, col, 0, 0)
		}
	}

	if g.move != nil {
		frac := g.move.Offset / MoveSpan
		dx := int(math.Round(frac * float64(g.cfg.Board.CellWidth) * float64(g.move.DirCol)))
		dy := int(math.Round(frac * float64(g.cfg.Board.CellHeight) * float64(g.move.DirRow)))
		g.renderTile(dst, g.board.At(g.move.Row, g.move.Col), g.move.Row, g.move.Col, dx, dy)
	}
}

// renderTile blits one tile's art region and its number label. dx/dy
// displace the sliding tile in screen cells.
func (g *Game) renderTile(dst *core.Screen, v, row, col, dx, dy int) {
	cw, ch := g.cfg.Board.CellWidth, g.cfg.Board.CellHeight
	x := g.boardRect.X + col*cw + dx
	y := g.boardRect.Y + row*ch + dy

	n := g.board.Size()
	from := g.backdrop.Region(v/n, v%n, cw, ch)
	dst.Blit(g.backdrop.Runes(), from, x, y, g.backdrop.Color())

	if v == 0 {
		return
	}
	label := strconv.Itoa(v)
	dst.DrawTextColor(x+(cw-len(label))/2, y+ch/2, label, core.ColorBrightWhite)
}

// renderOverlays draws the paused and solved banners over the board.
func (g *Game) renderOverlays(dst *core.Screen) {
	if g.paused {
		g.renderBanner(dst, "PAUSED", "press p to resume")
	}
	if g.solved {
		g.renderBanner(dst, fmt.Sprintf("Solved in %d moves", g.moves), "click to deal again")
	}
}

// renderBanner centers a boxed two-line message over the board.
func (g *Game) renderBanner(dst *core.Screen, line1, line2 string) {
	w := core.Max(len(line1), len(line2)) + 4
	h := 4
	x := g.boardRect.X + (g.boardRect.W-w)/2
	y := g.boardRect.Y + (g.boardRect.H-h)/2
	box := core.NewRect(x, y, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(x+(w-len(line1))/2, y+1, line1)
	dst.DrawText(x+(w-len(line2))/2, y+2, line2)
}

// renderHelp draws the key hints on the bottom row.
func (g *Game) renderHelp(dst *core.Screen) {
	help := "click: slide   s: shuffle   n: new deal   p: pause   q: quit"
	dst.DrawTextColor((g.screenW-len(help))/2, g.screenH-1, help, core.ColorGray)
}

// formatElapsed renders a deal timer as m:ss.
func formatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
