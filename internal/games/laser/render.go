package laser

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// fieldTop is the first row of the beam field, below the HUD.
const fieldTop = 2

// Render draws the beam, its fading trail and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := "Window too small"
		dst.DrawText((g.screenW-len(msg))/2, g.screenH/2, msg)
		return
	}

	title := g.Title()
	dst.DrawText((g.screenW-len(title))/2, 0, title)
	dst.DrawText(0, 1, fmt.Sprintf("Sweeps: %d", g.wraps))
	info := fmt.Sprintf("Speed: %.0f/s", g.speed())
	dst.DrawText(g.screenW-len(info), 1, info)

	col := int(math.Round(g.pos))
	g.drawColumn(dst, col, '█', core.ColorBrightRed)
	for i := 1; i <= g.cfg.Beam.Trail; i++ {
		tc := col - i
		if tc < 0 {
			break
		}
		if i <= g.cfg.Beam.Trail/2 {
			g.drawColumn(dst, tc, '▒', core.ColorRed)
		} else {
			g.drawColumn(dst, tc, '░', core.ColorGray)
		}
	}

	if g.paused {
		dst.DrawTextCentered(g.screenH/2, "PAUSED")
	}

	help := "p: pause   r: restart   q: quit"
	dst.DrawTextColor((g.screenW-len(help))/2, g.screenH-1, help, core.ColorGray)
}

func (g *Game) drawColumn(dst *core.Screen, x int, r rune, c core.Color) {
	for y := fieldTop; y < g.screenH-1; y++ {
		dst.SetCell(x, y, r, c)
	}
}
