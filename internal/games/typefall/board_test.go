package typefall

import (
	"testing"

	"github.com/vovakirdan/typefall/internal/core"
)

// fillRow occupies an entire row except the listed gap columns.
func fillRow(b *Board, y int, gaps ...int) {
	skip := make(map[int]bool)
	for _, g := range gaps {
		skip[g] = true
	}
	var cells []Point
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	b.Commit(cells, core.ColorWhite)
}

func TestIsOccupiedOutOfBounds(t *testing.T) {
	b := NewBoard(10, 18, 2)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "empty in-bounds", x: 5, y: 10, want: false},
		{name: "left wall", x: -1, y: 10, want: true},
		{name: "right wall", x: 10, y: 10, want: true},
		{name: "below floor", x: 5, y: 20, want: true},
		{name: "above buffer", x: 5, y: -1, want: true},
		{name: "buffer row is open", x: 5, y: 0, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.IsOccupied(tc.x, tc.y); got != tc.want {
				t.Errorf("IsOccupied(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestCanPlace(t *testing.T) {
	b := NewBoard(10, 18, 2)
	b.Commit([]Point{{X: 4, Y: 10}}, core.ColorRed)

	tests := []struct {
		name  string
		cells []Point
		want  bool
	}{
		{name: "free cells", cells: []Point{{X: 0, Y: 5}, {X: 1, Y: 5}}, want: true},
		{name: "one occupied", cells: []Point{{X: 3, Y: 10}, {X: 4, Y: 10}}, want: false},
		{name: "one out of bounds", cells: []Point{{X: 9, Y: 5}, {X: 10, Y: 5}}, want: false},
		{name: "below floor", cells: []Point{{X: 0, Y: 20}}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CanPlace(tc.cells); got != tc.want {
				t.Errorf("CanPlace(%v) = %v, want %v", tc.cells, got, tc.want)
			}
		})
	}
}

func TestCommitThenOccupied(t *testing.T) {
	b := NewBoard(10, 18, 2)
	cells := []Point{{X: 2, Y: 17}, {X: 3, Y: 17}}

	if !b.CanPlace(cells) {
		t.Fatal("CanPlace() = false on empty board")
	}
	b.Commit(cells, core.ColorGreen)

	for _, p := range cells {
		if !b.IsOccupied(p.X, p.Y) {
			t.Errorf("cell (%d, %d) not occupied after Commit", p.X, p.Y)
		}
		if b.Cell(p.X, p.Y).Color != core.ColorGreen {
			t.Errorf("cell (%d, %d) color = %v, want green", p.X, p.Y, b.Cell(p.X, p.Y).Color)
		}
	}
	if b.CanPlace(cells) {
		t.Error("CanPlace() = true after Commit on the same cells")
	}
}

func TestFullRowsAscending(t *testing.T) {
	b := NewBoard(6, 10, 2)
	fillRow(b, 11)
	fillRow(b, 7)
	fillRow(b, 9, 3) // gap at x=3, not full

	rows := b.FullRows()
	if len(rows) != 2 || rows[0] != 7 || rows[1] != 11 {
		t.Errorf("FullRows() = %v, want [7 11]", rows)
	}
}

func TestClearRowsSimultaneous(t *testing.T) {
	// Two non-contiguous full rows with a survivor between them. The
	// survivor must land exactly at the bottom of the cleared region:
	// clearing all rows at once, not one at a time.
	b := NewBoard(4, 8, 2)
	fillRow(b, 9)           // full (bottom)
	fillRow(b, 8, 0)        // survivor, gap at x=0
	fillRow(b, 7)           // full
	fillRow(b, 6, 1, 2, 3)  // survivor, only x=0 occupied

	b.ClearRows([]int{7, 9})

	if rows := b.FullRows(); len(rows) != 0 {
		t.Errorf("FullRows() after clear = %v, want none", rows)
	}

	// The x=0-only row stays above the gap row: relative order preserved.
	if b.IsOccupied(0, 9) || !b.IsOccupied(1, 9) {
		t.Errorf("bottom row after clear: got occupied(0)=%v occupied(1)=%v, want survivor with gap at 0",
			b.IsOccupied(0, 9), b.IsOccupied(1, 9))
	}
	if !b.IsOccupied(0, 8) || b.IsOccupied(1, 8) {
		t.Errorf("row above after clear: got occupied(0)=%v occupied(1)=%v, want only x=0",
			b.IsOccupied(0, 8), b.IsOccupied(1, 8))
	}
	// Everything above is empty again.
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			if b.IsOccupied(x, y) {
				t.Errorf("cell (%d, %d) occupied after clear, want empty", x, y)
			}
		}
	}
}

func TestClearRowsNoop(t *testing.T) {
	b := NewBoard(4, 8, 2)
	fillRow(b, 9, 0)
	b.ClearRows(nil)

	if b.IsOccupied(0, 9) || !b.IsOccupied(1, 9) {
		t.Error("ClearRows(nil) modified the board")
	}
}
