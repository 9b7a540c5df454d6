package typefall

import (
	"github.com/vovakirdan/typefall/internal/core"
)

// BoardCell is a single board position. Owned exclusively by the Board;
// piece cells only become BoardCells at lock time.
type BoardCell struct {
	Occupied bool
	Color    core.Color
}

// Board is the fixed-size grid of settled cells. Rows [0, buffer) are a
// hidden spawn area above the visible playfield; rows [buffer, buffer+height)
// are visible. Out-of-bounds coordinates act as walls for collision checks.
type Board struct {
	width  int
	height int // visible rows
	buffer int // hidden spawn rows above the visible area
	cells  [][]BoardCell
}

// NewBoard creates an empty board with the given visible dimensions and
// hidden spawn buffer.
func NewBoard(width, height, buffer int) *Board {
	b := &Board{
		width:  width,
		height: height,
		buffer: buffer,
	}
	b.cells = make([][]BoardCell, b.TotalRows())
	for y := range b.cells {
		b.cells[y] = make([]BoardCell, width)
	}
	return b
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of visible rows.
func (b *Board) Height() int {
	return b.height
}

// Buffer returns the number of hidden spawn rows.
func (b *Board) Buffer() int {
	return b.buffer
}

// TotalRows returns buffer + visible rows.
func (b *Board) TotalRows() int {
	return b.height + b.buffer
}

// Cell returns the cell at (x, y). Out-of-bounds coordinates return an
// occupied cell, consistent with IsOccupied.
func (b *Board) Cell(x, y int) BoardCell {
	if x < 0 || x >= b.width || y < 0 || y >= b.TotalRows() {
		return BoardCell{Occupied: true}
	}
	return b.cells[y][x]
}

// IsOccupied reports whether (x, y) holds a settled cell.
// Out-of-bounds positions count as occupied so edges act as walls.
func (b *Board) IsOccupied(x, y int) bool {
	return b.Cell(x, y).Occupied
}

// CanPlace reports whether every given cell maps to an in-bounds,
// unoccupied board position.
func (b *Board) CanPlace(cells []Point) bool {
	for _, p := range cells {
		if b.IsOccupied(p.X, p.Y) {
			return false
		}
	}
	return true
}

// Commit marks the given cells occupied with the given color.
// Callers must check CanPlace first; Commit on an occupied or out-of-bounds
// cell is silently skipped rather than corrupting neighbors.
func (b *Board) Commit(cells []Point, c core.Color) {
	for _, p := range cells {
		if p.X < 0 || p.X >= b.width || p.Y < 0 || p.Y >= b.TotalRows() {
			continue
		}
		b.cells[p.Y][p.X] = BoardCell{Occupied: true, Color: c}
	}
}

// FullRows returns the indices of completely occupied rows, ascending.
func (b *Board) FullRows() []int {
	var rows []int
	for y := 0; y < b.TotalRows(); y++ {
		full := true
		for x := 0; x < b.width; x++ {
			if !b.cells[y][x].Occupied {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes the given rows, shifts everything above them down and
// inserts empty rows at the top. All rows clear simultaneously: handing in
// multiple, possibly non-contiguous indices produces a single compaction,
// never a double shift.
func (b *Board) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}

	cleared := make(map[int]bool, len(rows))
	for _, y := range rows {
		cleared[y] = true
	}

	next := make([][]BoardCell, b.TotalRows())
	write := b.TotalRows() - 1
	for y := b.TotalRows() - 1; y >= 0; y-- {
		if cleared[y] {
			continue
		}
		next[write] = b.cells[y]
		write--
	}
	for ; write >= 0; write-- {
		next[write] = make([]BoardCell, b.width)
	}
	b.cells = next
}

// occupiedAbove reports whether any settled cell sits in the hidden spawn
// buffer. Used for the lock-out game over condition.
func (b *Board) occupiedAbove() bool {
	for y := 0; y < b.buffer; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[y][x].Occupied {
				return true
			}
		}
	}
	return false
}
