package core

import "testing"

func TestScreenSetAndCell(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#', ColorRed)
	cell := s.Cell(3, 2)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("Cell(3,2) = %+v, expected '#' red", cell)
	}

	// Out of bounds writes are ignored, reads return blanks
	s.Set(-1, 0, 'x', ColorDefault)
	s.Set(10, 0, 'x', ColorDefault)
	s.Set(0, 5, 'x', ColorDefault)
	if c := s.Cell(-1, 0); c.Rune != ' ' {
		t.Errorf("out-of-bounds Cell = %q, expected space", c.Rune)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(0, 0, 4, 4, '#', ColorGreen)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.Cell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("Cell(%d,%d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(8, 2)
	s.Text(5, 0, "abcdef", ColorCyan)

	if c := s.Cell(5, 0); c.Rune != 'a' {
		t.Errorf("Cell(5,0) = %q, expected 'a'", c.Rune)
	}
	if c := s.Cell(7, 0); c.Rune != 'c' {
		t.Errorf("Cell(7,0) = %q, expected 'c'", c.Rune)
	}
	// Everything past the edge was clipped, not wrapped
	if c := s.Cell(0, 1); c.Rune != ' ' {
		t.Errorf("Cell(0,1) = %q, expected space", c.Rune)
	}
}

func TestScreenBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.Box(0, 0, 6, 4, ColorWhite)

	if c := s.Cell(0, 0); c.Rune != '┌' {
		t.Errorf("top-left = %q, expected corner", c.Rune)
	}
	if c := s.Cell(5, 3); c.Rune != '┘' {
		t.Errorf("bottom-right = %q, expected corner", c.Rune)
	}
	if c := s.Cell(2, 0); c.Rune != '─' {
		t.Errorf("top edge = %q, expected horizontal line", c.Rune)
	}
	// Interior is untouched
	if c := s.Cell(2, 1); c.Rune != ' ' {
		t.Errorf("interior = %q, expected space", c.Rune)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Resize(20, 8)

	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("size after Resize = %dx%d, expected 20x8", s.Width(), s.Height())
	}
	// Far corner is addressable after resize
	s.Set(19, 7, '#', ColorDefault)
	if c := s.Cell(19, 7); c.Rune != '#' {
		t.Error("corner cell not writable after Resize")
	}
}
