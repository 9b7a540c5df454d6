package typefall

import (
	"testing"
)

func TestShapeOffsetsFourCells(t *testing.T) {
	for s := Shape(0); s < ShapeCount; s++ {
		for rot := 0; rot < 4; rot++ {
			seen := make(map[Point]bool)
			for _, o := range shapeOffsets[s][rot] {
				if o.X < 0 || o.X > 3 || o.Y < 0 || o.Y > 3 {
					t.Errorf("shape %v rot %d: offset %v outside the 4x4 box", s, rot, o)
				}
				seen[o] = true
			}
			if len(seen) != 4 {
				t.Errorf("shape %v rot %d: %d distinct cells, want 4", s, rot, len(seen))
			}
		}
	}
}

func TestCellsTranslate(t *testing.T) {
	p := Piece{Shape: ShapeO, X: 3, Y: 5}
	want := map[Point]bool{
		{X: 4, Y: 5}: true,
		{X: 5, Y: 5}: true,
		{X: 4, Y: 6}: true,
		{X: 5, Y: 6}: true,
	}
	for _, c := range p.Cells() {
		if !want[c] {
			t.Errorf("unexpected cell %v for O piece at (3, 5)", c)
		}
	}
}

func TestMovedCandidatesDoNotMutate(t *testing.T) {
	p := Piece{Shape: ShapeT, X: 4, Y: 2, Rot: 1}

	if got := p.MovedLeft(); got.X != 3 {
		t.Errorf("MovedLeft().X = %d, want 3", got.X)
	}
	if got := p.MovedRight(); got.X != 5 {
		t.Errorf("MovedRight().X = %d, want 5", got.X)
	}
	if got := p.MovedDown(); got.Y != 3 {
		t.Errorf("MovedDown().Y = %d, want 3", got.Y)
	}
	if got := p.Rotated(); got.Rot != 2 {
		t.Errorf("Rotated().Rot = %d, want 2", got.Rot)
	}
	if p.X != 4 || p.Y != 2 || p.Rot != 1 {
		t.Errorf("original piece mutated: %+v", p)
	}
}

func TestRotationWraps(t *testing.T) {
	p := Piece{Shape: ShapeT}
	for i := 0; i < 4; i++ {
		p = p.Rotated()
	}
	if p.Rot != 0 {
		t.Errorf("four rotations ended at rot %d, want 0", p.Rot)
	}
}

func TestTypedAndRemaining(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		progress int
		typed    bool
		rest     string
	}{
		{name: "untouched", word: "cat", progress: 0, typed: false, rest: "cat"},
		{name: "partial", word: "cat", progress: 1, typed: false, rest: "at"},
		{name: "complete", word: "cat", progress: 3, typed: true, rest: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Piece{Word: tc.word, Progress: tc.progress}
			if p.Typed() != tc.typed {
				t.Errorf("Typed() = %v, want %v", p.Typed(), tc.typed)
			}
			if p.Remaining() != tc.rest {
				t.Errorf("Remaining() = %q, want %q", p.Remaining(), tc.rest)
			}
		})
	}
}
