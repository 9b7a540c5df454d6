package typefall

import (
	"reflect"
	"sync"
	"testing"

	"github.com/vovakirdan/typefall/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: seed})
	if g.tooSmall {
		t.Fatal("80x30 screen flagged too small for the default board")
	}
	return g
}

// stepUntilFalling ticks the game until a piece is active.
func stepUntilFalling(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 3 && g.active == nil; i++ {
		g.Step(core.InputFrame{})
	}
	if g.active == nil {
		t.Fatal("no active piece after spawn ticks")
	}
}

func frameWithAction(a core.Action) core.InputFrame {
	f := core.InputFrame{}
	f.Set(a)
	return f
}

func frameWithChars(s string) core.InputFrame {
	f := core.InputFrame{}
	for _, r := range s {
		f.Type(r)
	}
	return f
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestSpawnProducesTypeablePiece(t *testing.T) {
	g := newTestGame(t, 42)
	stepUntilFalling(t, g)

	if g.phase != PhaseFalling {
		t.Errorf("phase = %v after spawn, want falling", g.phase)
	}
	if g.active.Word == "" {
		t.Error("spawned piece has an empty word")
	}
	if g.active.Progress != 0 {
		t.Errorf("spawned piece progress = %d, want 0", g.active.Progress)
	}
	if !g.board.CanPlace(g.active.Cells()) {
		t.Error("spawned piece overlaps settled cells")
	}
}

func TestWordCompletionDropsPiece(t *testing.T) {
	g := newTestGame(t, 42)
	stepUntilFalling(t, g)
	word := g.active.Word

	res := g.Step(frameWithChars(word))

	if !hasEvent(res.Events, core.EventWordCompleted) {
		t.Fatalf("no word completed event, got %v", res.Events)
	}
	if !hasEvent(res.Events, core.EventPieceLocked) {
		t.Error("completing the word did not lock the piece")
	}
	if g.active != nil {
		t.Error("active piece still present after completion drop")
	}
	if g.score < len(word) {
		t.Errorf("score = %d after completing %q, want at least %d", g.score, word, len(word))
	}

	// The piece settled on the floor: the bottom row has occupied cells.
	bottom := g.board.TotalRows() - 1
	found := false
	for x := 0; x < g.board.Width(); x++ {
		if g.board.IsOccupied(x, bottom) {
			found = true
			break
		}
	}
	if !found {
		t.Error("no settled cells in the bottom row after dropping on an empty board")
	}
}

func TestExplicitDropLocksWithoutTyping(t *testing.T) {
	g := newTestGame(t, 7)
	stepUntilFalling(t, g)

	res := g.Step(frameWithAction(core.ActionDrop))

	if !hasEvent(res.Events, core.EventPieceLocked) {
		t.Fatal("explicit drop did not lock the piece")
	}
	if hasEvent(res.Events, core.EventWordCompleted) {
		t.Error("explicit drop reported a word completion")
	}
	if g.phase != PhaseSpawning {
		t.Errorf("phase = %v after drop, want spawning", g.phase)
	}
}

func TestDropLocksAfterTypingBegun(t *testing.T) {
	g := newTestGame(t, 42)
	stepUntilFalling(t, g)

	first := rune(g.active.Word[0])
	g.Step(frameWithChars(string(first)))
	if g.active.Progress != 1 {
		t.Fatalf("progress = %d after matching first char, want 1", g.active.Progress)
	}

	res := g.Step(frameWithAction(core.ActionDrop))

	if !hasEvent(res.Events, core.EventPieceLocked) {
		t.Fatal("drop at progress 1 did not lock the piece")
	}
	if hasEvent(res.Events, core.EventWordCompleted) {
		t.Error("drop at progress 1 reported a word completion")
	}
	if g.active != nil {
		t.Error("active piece still present after mid-word drop")
	}
}

func TestMovementGatedByTypingProgress(t *testing.T) {
	g := newTestGame(t, 42)
	stepUntilFalling(t, g)

	// Untyped piece moves freely.
	x := g.active.X
	g.Step(frameWithAction(core.ActionLeft))
	if g.active.X != x-1 {
		t.Fatalf("X = %d after left at progress 0, want %d", g.active.X, x-1)
	}

	// Type the first character, movement is now refused.
	first := rune(g.active.Word[0])
	g.Step(frameWithChars(string(first)))
	if g.active.Progress != 1 {
		t.Fatalf("progress = %d after matching first char, want 1", g.active.Progress)
	}
	x = g.active.X
	g.Step(frameWithAction(core.ActionLeft))
	if g.active.X != x {
		t.Errorf("X = %d after left at progress 1, want %d unchanged", g.active.X, x)
	}
	g.Step(frameWithAction(core.ActionRotate))
	if g.active.Rot != 0 {
		t.Errorf("piece rotated at progress 1, rot = %d", g.active.Rot)
	}
}

func TestRejectedCharKeepsMovement(t *testing.T) {
	g := newTestGame(t, 42)
	stepUntilFalling(t, g)

	// A wrong first character leaves progress at 0, so movement stays open.
	wrong := byte('z')
	if g.active.Word[0] == wrong {
		wrong = 'q'
	}
	g.Step(frameWithChars(string(wrong)))
	if g.active.Progress != 0 {
		t.Fatalf("progress = %d after mismatch, want 0", g.active.Progress)
	}

	x := g.active.X
	g.Step(frameWithAction(core.ActionRight))
	if g.active.X != x+1 {
		t.Errorf("X = %d after right, want %d", g.active.X, x+1)
	}
}

func TestSingleRowClearScoresAndCompacts(t *testing.T) {
	g := newTestGame(t, 42)
	stepUntilFalling(t, g)

	// Bottom row full except the four columns a flat I piece will fill.
	bottom := g.board.TotalRows() - 1
	fillRow(g.board, bottom, 0, 1, 2, 3)
	g.active = &Piece{Shape: ShapeI, Rot: 0, X: 0, Y: 0, Word: "cat"}

	linesBefore := g.lines
	res := g.Step(frameWithAction(core.ActionDrop))

	if !hasEvent(res.Events, core.EventLinesCleared) {
		t.Fatalf("no lines cleared event, got %v", res.Events)
	}
	for _, e := range res.Events {
		if e.Kind == core.EventLinesCleared {
			if e.Rows != 1 {
				t.Errorf("cleared rows = %d, want 1", e.Rows)
			}
			if e.Score != lineScores[1]*1 {
				t.Errorf("line score = %d, want %d", e.Score, lineScores[1])
			}
		}
	}
	if g.lines != linesBefore+1 {
		t.Errorf("lines = %d, want %d", g.lines, linesBefore+1)
	}
	if rows := g.board.FullRows(); len(rows) != 0 {
		t.Errorf("full rows remain after clear: %v", rows)
	}
	for x := 0; x < g.board.Width(); x++ {
		if g.board.IsOccupied(x, bottom) {
			t.Errorf("cell (%d, %d) still occupied after single-row clear", x, bottom)
		}
	}
}

// blockSpawnArea fills the spawn box so no shape can be placed.
func blockSpawnArea(g *Game) {
	var cells []Point
	x0 := (g.board.Width() - 4) / 2
	for y := 0; y < 2; y++ {
		for x := x0; x < x0+4; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	g.board.Commit(cells, core.ColorWhite)
}

func TestBlockedSpawnEndsGame(t *testing.T) {
	g := newTestGame(t, 42)
	blockSpawnArea(g)

	res := g.Step(core.InputFrame{})

	if !hasEvent(res.Events, core.EventGameOver) {
		t.Fatalf("no game over event on blocked spawn, got %v", res.Events)
	}
	if hasEvent(res.Events, core.EventPieceLocked) {
		t.Error("blocked spawn locked a piece")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false after blocked spawn")
	}
	if g.active != nil {
		t.Error("active piece set despite blocked spawn")
	}
}

func TestRestartFromGameOver(t *testing.T) {
	g := newTestGame(t, 42)
	blockSpawnArea(g)
	g.Step(core.InputFrame{})
	if !g.State().GameOver {
		t.Fatal("setup failed to reach game over")
	}

	// Every input except restart is ignored in game over.
	g.Step(frameWithChars("abc"))
	g.Step(frameWithAction(core.ActionDrop))
	if !g.State().GameOver {
		t.Fatal("non-restart input left game over state")
	}

	g.Step(frameWithAction(core.ActionRestart))

	st := g.State()
	if st.GameOver {
		t.Error("GameOver still true after restart")
	}
	if st.Score != 0 || st.Lines != 0 {
		t.Errorf("score/lines = %d/%d after restart, want 0/0", st.Score, st.Lines)
	}
	if rows := g.board.FullRows(); len(rows) != 0 || g.board.occupiedAbove() {
		t.Error("board not empty after restart")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 42)
	stepUntilFalling(t, g)
	y := g.active.Y

	g.Step(frameWithAction(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Paused = false after pause input")
	}
	for i := 0; i < g.gravityTicks*2; i++ {
		g.Step(core.InputFrame{})
	}
	if g.active.Y != y {
		t.Errorf("piece fell from %d to %d while paused", y, g.active.Y)
	}

	g.Step(frameWithAction(core.ActionPause))
	if g.State().Paused {
		t.Error("Paused still true after second pause input")
	}
}

func TestGravityLocksAtFloor(t *testing.T) {
	g := newTestGame(t, 42)
	stepUntilFalling(t, g)
	g.gravityTicks = 1

	locked := false
	for i := 0; i < g.board.TotalRows()+5 && !locked; i++ {
		res := g.Step(core.InputFrame{})
		locked = hasEvent(res.Events, core.EventPieceLocked)
	}
	if !locked {
		t.Fatal("gravity never locked the piece")
	}
	if g.State().GameOver {
		t.Error("single piece on an empty board ended the game")
	}
}

func TestResetAppliesDifficulty(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		wantTicks  int
	}{
		{name: "default", difficulty: "", wantTicks: 48},
		{name: "easy slows gravity", difficulty: "easy", wantTicks: 72},
		{name: "normal keeps config", difficulty: "normal", wantTicks: 48},
		{name: "hard speeds gravity", difficulty: "hard", wantTicks: 24},
		{name: "fixed keeps starting speed", difficulty: "fixed", wantTicks: 48},
		{name: "unknown falls back", difficulty: "nightmare", wantTicks: 48},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			g.Reset(core.RuntimeConfig{
				ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: 1,
				Difficulty: tc.difficulty,
			})
			if g.gravityTicks != tc.wantTicks {
				t.Errorf("gravityTicks = %d, want %d", g.gravityTicks, tc.wantTicks)
			}
		})
	}
}

func TestConcurrentSessionsKeepTheirDifficulty(t *testing.T) {
	// Two sessions configure and run their games at the same time, the way
	// two SSH connections do. Each game must end up with its own preset.
	run := func(difficulty string) *Game {
		g := New()
		g.Reset(core.RuntimeConfig{
			ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: 1,
			Difficulty: difficulty,
		})
		for i := 0; i < 50; i++ {
			g.Step(core.InputFrame{})
		}
		return g
	}

	var wg sync.WaitGroup
	var easy, hard *Game
	wg.Add(2)
	go func() {
		defer wg.Done()
		easy = run("easy")
	}()
	go func() {
		defer wg.Done()
		hard = run("hard")
	}()
	wg.Wait()

	if easy.gravityTicks != 72 {
		t.Errorf("easy session gravityTicks = %d, want 72", easy.gravityTicks)
	}
	if hard.gravityTicks != 24 {
		t.Errorf("hard session gravityTicks = %d, want 24", hard.gravityTicks)
	}
}

func TestGameDeterminism(t *testing.T) {
	script := func(tick int) core.InputFrame {
		f := core.InputFrame{}
		switch {
		case tick%37 == 0:
			f.Set(core.ActionDrop)
		case tick%11 == 0:
			f.Set(core.ActionLeft)
		case tick%13 == 0:
			f.Set(core.ActionRight)
		case tick%17 == 0:
			f.Type('e')
		}
		return f
	}

	run := func(seed int64) Snapshot {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: seed})
		for tick := 0; tick < 600; tick++ {
			g.Step(script(tick))
		}
		return g.Snapshot()
	}

	a := run(99)
	b := run(99)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and inputs produced diverging snapshots")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t, 42)
	stepUntilFalling(t, g)

	dst := core.NewScreen(80, 30)
	g.Render(dst)

	out := dst.String()
	if out == "" {
		t.Fatal("render produced an empty screen")
	}

	blockSpawnArea(g)
	g.Step(frameWithAction(core.ActionDrop))
	for i := 0; i < 3; i++ {
		g.Step(core.InputFrame{})
	}
	g.Render(dst)
}
