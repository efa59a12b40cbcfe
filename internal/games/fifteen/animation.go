package fifteen

// MoveSpan is the offset distance a sliding tile covers to cross one
// cell. Offsets live in [0, MoveSpan) while a slide is in flight.
const MoveSpan = 100.0

// Move is the single in-flight tile slide. At most one exists at a
// time; Offset only grows, and the move commits once it reaches
// MoveSpan.
type Move struct {
	Row, Col       int     // origin cell of the sliding tile
	DirRow, DirCol int     // axis-aligned unit step toward the blank
	Offset         float64 // travel progress in [0, MoveSpan)
}

// Target returns the cell the tile slides into.
func (m *Move) Target() (row, col int) {
	return m.Row + m.DirRow, m.Col + m.DirCol
}
