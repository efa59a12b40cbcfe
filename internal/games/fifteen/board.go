package fifteen

import (
	"fmt"
	"math/rand"
)

// Board holds an n×n sliding-tile grid in row-major order. Cell values
// are a permutation of {0..n²-1}; value 0 is the blank.
type Board struct {
	n     int
	cells []int
}

// NewBoard creates a solved n×n board.
func NewBoard(n int) (*Board, error) {
	if n < 2 {
		return nil, fmt.Errorf("fifteen: board size must be at least 2, got %d", n)
	}
	b := &Board{n: n, cells: make([]int, n*n)}
	for i := range b.cells {
		b.cells[i] = i
	}
	return b, nil
}

// NewBoardFrom creates a board from an explicit row-major layout.
func NewBoardFrom(n int, cells []int) (*Board, error) {
	if n < 2 {
		return nil, fmt.Errorf("fifteen: board size must be at least 2, got %d", n)
	}
	if len(cells) != n*n {
		return nil, fmt.Errorf("fifteen: layout has %d cells, expected %d", len(cells), n*n)
	}
	b := &Board{n: n, cells: append([]int(nil), cells...)}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Size returns the number of cells per side.
func (b *Board) Size() int {
	return b.n
}

// At returns the value at (row, col), or -1 out of bounds.
func (b *Board) At(row, col int) int {
	if !b.InBounds(row, col) {
		return -1
	}
	return b.cells[row*b.n+col]
}

func (b *Board) set(row, col, v int) {
	b.cells[row*b.n+col] = v
}

// InBounds reports whether (row, col) is a valid cell.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.n && col >= 0 && col < b.n
}

// Blank returns the position of the blank cell.
func (b *Board) Blank() (row, col int) {
	for i, v := range b.cells {
		if v == 0 {
			return i / b.n, i % b.n
		}
	}
	return -1, -1
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	return &Board{n: b.n, cells: append([]int(nil), b.cells...)}
}

// Cells returns a copy of the row-major layout.
func (b *Board) Cells() []int {
	return append([]int(nil), b.cells...)
}

// Validate checks the permutation invariant: every value in {0..n²-1},
// blank included, appears exactly once. A violation is a programming
// fault, not a recoverable condition.
func (b *Board) Validate() error {
	seen := make([]bool, b.n*b.n)
	for _, v := range b.cells {
		if v < 0 || v >= len(seen) {
			return fmt.Errorf("fifteen: cell value %d out of range [0, %d)", v, len(seen))
		}
		if seen[v] {
			return fmt.Errorf("fifteen: duplicate cell value %d", v)
		}
		seen[v] = true
	}
	return nil
}

// Solved reports whether every cell holds its own index, which puts the
// blank in the top-left corner.
func (b *Board) Solved() bool {
	for i, v := range b.cells {
		if v != i {
			return false
		}
	}
	return true
}

// Solvable reports whether the layout can be reached by legal slides.
// Each slide swaps the blank with a neighbor, flipping both the
// permutation parity and the parity of the blank's distance from home,
// so their sum is invariant; the solved layout makes the sum even.
func (b *Board) Solvable() bool {
	inv := 0
	for i := 0; i < len(b.cells); i++ {
		for j := i + 1; j < len(b.cells); j++ {
			if b.cells[i] > b.cells[j] {
				inv++
			}
		}
	}
	row, col := b.Blank()
	return (inv+row+col)%2 == 0
}

// Shuffle deals a uniformly random permutation. With solvableOnly set,
// an unsolvable deal is repaired by swapping the first two non-blank
// cells, which flips the permutation parity without moving the blank.
func (b *Board) Shuffle(rng *rand.Rand, solvableOnly bool) {
	copy(b.cells, rng.Perm(b.n*b.n))
	if solvableOnly && !b.Solvable() {
		b.swapFirstTiles()
	}
}

func (b *Board) swapFirstTiles() {
	first := -1
	for i, v := range b.cells {
		if v == 0 {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		b.cells[first], b.cells[i] = b.cells[i], b.cells[first]
		return
	}
}
