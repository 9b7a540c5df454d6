package typefall

import (
	"github.com/vovakirdan/typefall/internal/core"
)

// PieceSnapshot is a read-only view of the active piece.
type PieceSnapshot struct {
	Shape    string
	Rot      int
	X, Y     int
	Cells    []Point
	Word     string
	Progress int
}

// Snapshot captures the complete game state for determinism testing,
// replay and presentation-layer queries.
type Snapshot struct {
	Tick     uint64
	Phase    string
	Score    int
	Lines    int
	Level    int
	Words    int
	Width    int
	Height   int            // visible rows
	Grid     [][]bool       // visible rows only, row 0 is the top visible row
	Colors   [][]core.Color // parallel to Grid
	Active   *PieceSnapshot // nil when no piece is falling
	Paused   bool
	TooSmall bool
}

// Snapshot returns the current game snapshot. The returned grid is a copy;
// the presentation layer can hold it across engine steps.
func (g *Game) Snapshot() Snapshot {
	buf := g.board.Buffer()
	grid := make([][]bool, g.board.Height())
	colors := make([][]core.Color, g.board.Height())
	for y := 0; y < g.board.Height(); y++ {
		grid[y] = make([]bool, g.board.Width())
		colors[y] = make([]core.Color, g.board.Width())
		for x := 0; x < g.board.Width(); x++ {
			cell := g.board.Cell(x, y+buf)
			grid[y][x] = cell.Occupied
			colors[y][x] = cell.Color
		}
	}

	snap := Snapshot{
		Tick:     g.tick,
		Phase:    g.phase.String(),
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		Words:    g.words,
		Width:    g.board.Width(),
		Height:   g.board.Height(),
		Grid:     grid,
		Colors:   colors,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}

	if g.active != nil {
		snap.Active = &PieceSnapshot{
			Shape:    g.active.Shape.String(),
			Rot:      g.active.Rot,
			X:        g.active.X,
			Y:        g.active.Y,
			Cells:    g.active.Cells(),
			Word:     g.active.Word,
			Progress: g.active.Progress,
		}
	}

	return snap
}
