// Package assets provides the background art the puzzle slices into tiles.
// Backdrops are plain-text files: optional "# key: value" header lines
// (name, color) followed by the art. A pool scales every backdrop to the
// requested pixel size at load, so games always blit ready-to-use images.
package assets

import (
	"embed"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

//go:embed art/*.txt
var embeddedArt embed.FS

// Backdrop is one background image, already scaled to the pool's size.
type Backdrop struct {
	name  string
	color core.Color
	cells [][]rune
	w, h  int
}

// Name returns the backdrop's display name.
func (b *Backdrop) Name() string {
	return b.name
}

// Color returns the color the backdrop should be drawn in.
func (b *Backdrop) Color() core.Color {
	return b.color
}

// Size returns the scaled width and height.
func (b *Backdrop) Size() (w, h int) {
	return b.w, b.h
}

// Runes exposes the scaled art for Screen.Blit. Callers must not mutate it.
func (b *Backdrop) Runes() [][]rune {
	return b.cells
}

// Region returns the blit source rectangle for the grid cell at
// (row, col), given the cell size the backdrop was scaled for.
func (b *Backdrop) Region(row, col, cellW, cellH int) core.Rect {
	return core.NewRect(col*cellW, row*cellH, cellW, cellH)
}

// Pool holds every loaded backdrop at one fixed size.
type Pool struct {
	backdrops []*Backdrop
}

// Load builds a pool scaled to w x h pixels from the embedded art set,
// plus every *.txt file under dir when dir is non-empty. The pool is
// never empty: with nothing else to offer it falls back to a generated
// placeholder pattern.
func Load(w, h int, dir string) (*Pool, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("assets: invalid pool size %dx%d", w, h)
	}

	p := &Pool{}

	entries, err := embeddedArt.ReadDir("art")
	if err != nil {
		return nil, fmt.Errorf("assets: read embedded art: %w", err)
	}
	for _, entry := range entries {
		data, err := embeddedArt.ReadFile("art/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("assets: read embedded %s: %w", entry.Name(), err)
		}
		b, err := parseBackdrop(entry.Name(), string(data), w, h)
		if err != nil {
			return nil, err
		}
		p.backdrops = append(p.backdrops, b)
	}

	if dir != "" {
		if err := p.loadDir(dir, w, h); err != nil {
			return nil, err
		}
	}

	if len(p.backdrops) == 0 {
		p.backdrops = append(p.backdrops, placeholder(w, h))
	}
	return p, nil
}

// loadDir adds user-provided backdrops from *.txt files in dir.
func (p *Pool) loadDir(dir string, w, h int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("assets: read dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("assets: read %s: %w", path, err)
		}
		b, err := parseBackdrop(entry.Name(), string(data), w, h)
		if err != nil {
			return err
		}
		p.backdrops = append(p.backdrops, b)
	}
	return nil
}

// Len returns the number of backdrops in the pool.
func (p *Pool) Len() int {
	return len(p.backdrops)
}

// Pick returns a random backdrop. The choice is deterministic for a
// seeded rng, which keeps game snapshots reproducible.
func (p *Pool) Pick(rng *rand.Rand) *Backdrop {
	return p.backdrops[rng.Intn(len(p.backdrops))]
}

// parseBackdrop reads the header directives and scales the art.
func parseBackdrop(filename, data string, w, h int) (*Backdrop, error) {
	name := strings.TrimSuffix(filepath.Base(filename), ".txt")
	color := core.ColorGray

	// Header lines are "# key: value"; anything else, including art that
	// happens to use '#', ends the header.
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	art := lines
	for i, line := range lines {
		rest, isDirective := strings.CutPrefix(strings.TrimSpace(line), "# ")
		if !isDirective {
			art = lines[i:]
			break
		}
		key, value, ok := strings.Cut(rest, ":")
		if !ok {
			art = lines[i:]
			break
		}
		art = lines[i+1:]
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "name":
			name = value
		case "color":
			c, ok := core.ParseColor(value)
			if !ok {
				return nil, fmt.Errorf("assets: %s: unknown color %q", filename, value)
			}
			color = c
		}
	}

	src := make([][]rune, 0, len(art))
	for _, line := range art {
		src = append(src, []rune(line))
	}
	if len(src) == 0 {
		return nil, fmt.Errorf("assets: %s: no art after header", filename)
	}

	return &Backdrop{
		name:  name,
		color: color,
		cells: scaleArt(src, w, h),
		w:     w,
		h:     h,
	}, nil
}

// scaleArt resizes rune art to w x h with nearest-neighbor sampling.
// Rows may be ragged; cells past a row's end sample as spaces.
func scaleArt(src [][]rune, w, h int) [][]rune {
	out := make([][]rune, h)
	for y := 0; y < h; y++ {
		row := make([]rune, w)
		srow := src[y*len(src)/h]
		for x := 0; x < w; x++ {
			if len(srow) == 0 {
				row[x] = ' '
				continue
			}
			row[x] = srow[x*len(srow)/w]
		}
		out[y] = row
	}
	return out
}

// placeholder generates a diagonal weave so a pool is usable even with
// no art files at all.
func placeholder(w, h int) *Backdrop {
	weave := []rune{'·', ' ', '•', ' '}
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = make([]rune, w)
		for x := range cells[y] {
			cells[y][x] = weave[(x+y)%len(weave)]
		}
	}
	return &Backdrop{name: "weave", color: core.ColorGray, cells: cells, w: w, h: h}
}
