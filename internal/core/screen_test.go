package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '#', ColorCyan)
	cell := s.GetCell(3, 4)
	if cell.Rune != '#' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorCyan {
		t.Errorf("GetCell(3, 4).Color = %d, expected ColorCyan", cell.Color)
	}

	// Plain Set writes the default color
	s.Set(3, 4, '#')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should reset the cell color to default")
	}

	// Out of bounds cell is blank
	oob := s.GetCell(-1, 0)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank cell", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some colored characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	// Should all be blank cells now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("After Fill, expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetCell(2, 3, 'X', ColorGreen)

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("After Resize, size = %dx%d, expected 20x5", s.Width(), s.Height())
	}

	cell := s.GetCell(2, 3)
	if cell.Rune != 'X' || cell.Color != ColorGreen {
		t.Errorf("Resize should preserve content, got %+v at (2, 3)", cell)
	}

	// New area is blank
	if s.Get(15, 2) != ' ' {
		t.Error("Expanded area should be blank after Resize")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(0, 0, "Hi", ColorYellow)

	if s.GetCell(0, 0).Color != ColorYellow || s.GetCell(1, 0).Color != ColorYellow {
		t.Error("DrawTextColor should color every drawn cell")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.DrawRect(r, '#')

	// Check filled area
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}

	// Check outside is still space
	if s.Get(1, 1) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
	if s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r)

	// Check corners
	if s.Get(1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.Get(1, 1))
	}
	if s.Get(5, 1) != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.Get(5, 1))
	}
	if s.Get(1, 4) != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", s.Get(1, 4))
	}
	if s.Get(5, 4) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.Get(5, 4))
	}

	// Check edges
	if s.Get(3, 1) != '─' {
		t.Errorf("Top edge should be '─', got %q", s.Get(3, 1))
	}
	if s.Get(1, 2) != '│' {
		t.Errorf("Left edge should be '│', got %q", s.Get(1, 2))
	}

	// Interior untouched
	if s.Get(3, 2) != ' ' {
		t.Error("Box interior should be untouched")
	}
}

func TestScreenBlit(t *testing.T) {
	art := [][]rune{
		[]rune("abcd"),
		[]rune("efgh"),
		[]rune("ijkl"),
	}

	s := NewScreen(10, 10)
	s.Blit(art, NewRect(1, 1, 2, 2), 4, 5, ColorMagenta)

	if s.Get(4, 5) != 'f' || s.Get(5, 5) != 'g' {
		t.Errorf("Blit first row = %q%q, expected \"fg\"", s.Get(4, 5), s.Get(5, 5))
	}
	if s.Get(4, 6) != 'j' || s.Get(5, 6) != 'k' {
		t.Errorf("Blit second row = %q%q, expected \"jk\"", s.Get(4, 6), s.Get(5, 6))
	}
	if s.GetCell(4, 5).Color != ColorMagenta {
		t.Error("Blit should apply the given color")
	}

	// Region extending past the source is padded with spaces
	s.Fill('#')
	s.Blit(art, NewRect(3, 2, 3, 3), 0, 0, ColorDefault)
	if s.Get(0, 0) != 'l' {
		t.Errorf("Blit at (0, 0) = %q, expected 'l'", s.Get(0, 0))
	}
	if s.Get(1, 0) != ' ' {
		t.Error("Blit should pad past the source's right edge with spaces")
	}
	if s.Get(0, 1) != ' ' {
		t.Error("Blit should pad past the source's bottom edge with spaces")
	}

	// Destination clipping must not panic
	s.Blit(art, NewRect(0, 0, 4, 3), 8, 8, ColorDefault)
	if s.Get(8, 8) != 'a' {
		t.Errorf("Clipped blit should still write in-bounds cells, got %q", s.Get(8, 8))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	expected := "abc\ndef"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 1, "hello")

	if s.Row(1) != "hello" {
		t.Errorf("Row(1) = %q, expected \"hello\"", s.Row(1))
	}
	if s.Row(-1) != "     " {
		t.Errorf("Row(-1) = %q, expected five spaces", s.Row(-1))
	}
}
