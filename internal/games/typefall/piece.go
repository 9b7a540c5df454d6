package typefall

import (
	"github.com/vovakirdan/typefall/internal/core"
)

// Point is a 2D board coordinate.
type Point struct {
	X, Y int
}

// Shape identifies one of the seven standard tetromino variants.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of shape variants.
const ShapeCount = 7

// String returns the conventional single-letter shape name.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the display color for a shape.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeI:
		return core.ColorCyan
	case ShapeO:
		return core.ColorYellow
	case ShapeT:
		return core.ColorMagenta
	case ShapeS:
		return core.ColorGreen
	case ShapeZ:
		return core.ColorRed
	case ShapeJ:
		return core.ColorBlue
	case ShapeL:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// shapeOffsets holds the occupied cell offsets for every shape and rotation
// state, expressed inside a 4x4 box anchored at the piece position.
// Offset tables avoid any per-shape dispatch: collision math is uniform.
var shapeOffsets = [ShapeCount][4][4]Point{
	ShapeI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	ShapeO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	ShapeT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	ShapeJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	ShapeL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Piece is the active falling tetromino bound to a word the player must
// type. Movement methods return candidate copies; the game applies a
// candidate only after Board.CanPlace validates it.
type Piece struct {
	Shape    Shape
	Rot      int // rotation state, 0-3
	X, Y     int // anchor position (top-left of the 4x4 offset box)
	Word     string
	Progress int // typed characters, 0..len(Word)
}

// Cells returns the absolute board coordinates occupied by the piece.
func (p Piece) Cells() []Point {
	offsets := shapeOffsets[p.Shape][p.Rot&3]
	cells := make([]Point, len(offsets))
	for i, o := range offsets {
		cells[i] = Point{X: p.X + o.X, Y: p.Y + o.Y}
	}
	return cells
}

// MovedLeft returns a candidate piece shifted one cell left.
func (p Piece) MovedLeft() Piece {
	p.X--
	return p
}

// MovedRight returns a candidate piece shifted one cell right.
func (p Piece) MovedRight() Piece {
	p.X++
	return p
}

// MovedDown returns a candidate piece shifted one cell down.
func (p Piece) MovedDown() Piece {
	p.Y++
	return p
}

// Rotated returns a candidate piece rotated clockwise.
func (p Piece) Rotated() Piece {
	p.Rot = (p.Rot + 1) & 3
	return p
}

// Typed reports whether the whole word has been typed.
func (p Piece) Typed() bool {
	return p.Progress >= len(p.Word)
}

// Remaining returns the untyped suffix of the word.
func (p Piece) Remaining() string {
	if p.Typed() {
		return ""
	}
	return p.Word[p.Progress:]
}
