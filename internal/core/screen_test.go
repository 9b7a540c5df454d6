package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get(3, 2) = %q, want 'x'", got)
	}

	s.SetColored(4, 2, 'y', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'y' || cell.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, want {y red}", cell)
	}

	// Out-of-bounds writes are dropped, reads return a blank cell.
	s.Set(-1, 0, 'z')
	s.Set(10, 0, 'z')
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(0, 0, '#', ColorGreen)
	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v, want blank", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, want %q", got, "  hello")
	}

	// Text past the right edge is clipped, not wrapped.
	s.DrawText(8, 0, "abc")
	if got := s.Get(0, 1); got == 'c' {
		t.Error("DrawText wrapped onto the next row")
	}
	if got := s.Get(8, 0); got != 'a' {
		t.Errorf("Get(8, 0) = %q, want 'a'", got)
	}
	if got := s.Get(9, 0); got != 'b' {
		t.Errorf("Get(9, 0) = %q, want 'b'", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")
	if got := s.Get(4, 1); got != 'a' {
		t.Errorf("centered text starts at %q, want 'a' at x=4", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 6)
	s.DrawBox(Rect{X: 1, Y: 1, W: 5, H: 4})

	if got := s.Get(1, 1); got != '┌' {
		t.Errorf("top-left corner = %q, want '┌'", got)
	}
	if got := s.Get(5, 4); got != '┘' {
		t.Errorf("bottom-right corner = %q, want '┘'", got)
	}
	if got := s.Get(3, 1); got != '─' {
		t.Errorf("top edge = %q, want horizontal line", got)
	}
	if got := s.Get(1, 2); got != '│' {
		t.Errorf("left edge = %q, want vertical line", got)
	}
	if got := s.Get(3, 3); got != ' ' {
		t.Errorf("interior = %q, want untouched", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, '@')
	s.Resize(10, 8)

	if s.Width() != 10 || s.Height() != 8 {
		t.Fatalf("size after Resize = %dx%d, want 10x8", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != '@' {
		t.Errorf("content lost on grow: Get(2, 2) = %q", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != '@' {
		t.Errorf("content lost on shrink: Get(2, 2) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.Set(2, 1, 'c')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, want 2", len(lines))
	}
	if lines[0] != "ab " || lines[1] != "  c" {
		t.Errorf("String() = %q", s.String())
	}
}
