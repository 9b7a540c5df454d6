// Package typefall implements the typing-gated falling-block puzzle.
// Each piece carries a word; the piece cannot be moved until the player
// starts typing it correctly, and finishing the word drops it.
package typefall

import (
	"math/rand"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/registry"
	"github.com/vovakirdan/typefall/internal/wordbank"
)

// Phase is the engine state machine position.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseLineClearing
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseLineClearing:
		return "line_clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// lineScores is the base score per simultaneous rows cleared, multiplied by
// the current level. Monotonic in rows cleared.
var lineScores = [5]int{0, 100, 300, 500, 800}

// Game implements the typefall game.
type Game struct {
	cfg  config.TypefallConfig
	rng  *rand.Rand
	tick uint64

	board  *Board
	active *Piece
	gate   TypingGate
	bank   wordbank.Source

	score int
	lines int
	level int
	words int // completed words this session

	gravityTicks   int // Current ticks between gravity steps
	gravityCounter int

	phase Phase

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	paused bool
}

// Package-level variables set by the CLI in main, before any session
// starts. Per-session knobs (difficulty) travel in RuntimeConfig instead,
// so concurrent sessions never share mutable state.
var (
	configPath   string
	wordPackPath string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetWordPack sets the word pack file used on the next Reset.
// Empty means the embedded default list.
func SetWordPack(path string) {
	wordPackPath = path
}

// New creates a new typefall game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("typefall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "typefall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Typefall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadTypefall(configPath)
	if err != nil {
		gameCfg = config.DefaultTypefallConfig()
	}
	if cfg.Difficulty != "" {
		preset := config.ParseDifficultyPreset(cfg.Difficulty, gameCfg.Difficulty.Preset)
		gameCfg = config.ApplyDifficultyPreset(gameCfg, preset)
	}
	if wordPackPath != "" {
		gameCfg.Words.Pack = wordPackPath
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.bank = loadWords(gameCfg.Words, g.rng)

	g.restart()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// restart zeroes the session state without reloading config or word packs.
// Used both by Reset and by the in-game GameOver reset input.
func (g *Game) restart() {
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.level = 1
	g.words = 0
	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height, g.cfg.Board.SpawnBuffer)
	g.active = nil
	g.gate = NewTypingGate(g.cfg.Typing.CaseSensitive)
	g.gravityTicks = g.cfg.Gravity.TicksPerCell
	g.gravityCounter = 0
	g.phase = PhaseSpawning
	g.paused = false
}

// loadWords builds the word source for a session. Pack failures fall back
// to the embedded list so a bad --words flag degrades instead of crashing.
func loadWords(cfg config.WordsConfig, rng *rand.Rand) wordbank.Source {
	raw := wordbank.DefaultWords()
	if cfg.Pack != "" {
		if loaded, err := wordbank.LoadFile(cfg.Pack); err == nil {
			raw = loaded
		}
	}

	words := wordbank.Filter(raw, cfg.MinLength, cfg.MaxLength)
	if len(words) == 0 {
		// Length filter ate the whole pack; the embedded list always
		// has words in the default range.
		words = wordbank.Filter(wordbank.DefaultWords(), 3, 8)
	}

	bank, err := wordbank.New(words, rng)
	if err != nil {
		// Unreachable with a filtered list, but keep the engine total.
		bank, _ = wordbank.New([]string{"typefall"}, rng)
	}
	return bank
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Board.Width*2 + 24 // board + frame + word panel
	minH := g.cfg.Board.Height + 4   // board + frame + HUD
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	// Reset is the only input accepted in GameOver.
	if g.phase == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Capture the phase before input so a lock caused this tick spawns
	// the next piece on the following tick.
	phase := g.phase
	events = g.processInput(in, events)

	switch phase {
	case PhaseSpawning:
		events = g.spawn(events)
	case PhaseFalling:
		events = g.applyGravity(events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// processInput handles typed characters, lateral movement and explicit drops.
// Irrelevant input (characters with no active piece, movement mid-word) is a
// no-op, never an error.
func (g *Game) processInput(in core.InputFrame, events []core.Event) []core.Event {
	if g.phase != PhaseFalling || g.active == nil {
		return events
	}

	for _, ch := range in.Chars {
		switch g.gate.OnChar(g.active, ch) {
		case TypingCompleted:
			events = append(events, core.Event{
				Kind:  core.EventWordCompleted,
				Score: len(g.active.Word),
				Word:  g.active.Word,
			})
			g.score += len(g.active.Word)
			g.words++
			return g.hardDrop(events)
		case TypingAdvanced, TypingRejected:
			// Advanced keeps falling; Rejected leaves progress as is.
		}
	}

	if in.Has(core.ActionDrop) {
		return g.hardDrop(events)
	}

	if g.gate.MayMove(g.active) {
		switch {
		case in.Has(core.ActionLeft):
			g.tryMove(g.active.MovedLeft())
		case in.Has(core.ActionRight):
			g.tryMove(g.active.MovedRight())
		case in.Has(core.ActionRotate):
			g.tryMove(g.active.Rotated())
		}
	}

	return events
}

// tryMove applies a candidate piece if the board accepts it.
func (g *Game) tryMove(candidate Piece) bool {
	if !g.board.CanPlace(candidate.Cells()) {
		return false
	}
	*g.active = candidate
	return true
}

// spawn draws a word and a shape and places a new piece at top-center.
// A blocked spawn position ends the game immediately.
func (g *Game) spawn(events []core.Event) []core.Event {
	word := g.bank.Next()
	if wordbank.Validate(word) != nil {
		// Collaborator contract violation: never spawn an untypeable
		// piece. Substitute from the embedded list instead.
		fallback := wordbank.Filter(wordbank.DefaultWords(), 3, 8)
		word = fallback[g.rng.Intn(len(fallback))]
	}

	piece := Piece{
		Shape: Shape(g.rng.Intn(ShapeCount)),
		X:     (g.board.Width() - 4) / 2,
		Y:     0,
		Word:  word,
	}

	if !g.board.CanPlace(piece.Cells()) {
		g.phase = PhaseGameOver
		return append(events, core.Event{Kind: core.EventGameOver})
	}

	g.active = &piece
	g.gravityCounter = 0
	g.phase = PhaseFalling
	return events
}

// applyGravity attempts one downward step on the gravity interval and locks
// the piece when it cannot descend.
func (g *Game) applyGravity(events []core.Event) []core.Event {
	if g.active == nil {
		return events
	}

	g.gravityCounter++
	if g.gravityCounter < g.gravityTicks {
		return events
	}
	g.gravityCounter = 0

	if !g.tryMove(g.active.MovedDown()) {
		return g.lock(events)
	}
	return events
}

// hardDrop descends one collision-gated cell at a time to the lowest legal
// position, then locks.
func (g *Game) hardDrop(events []core.Event) []core.Event {
	if g.active == nil {
		return events
	}
	for g.tryMove(g.active.MovedDown()) {
	}
	return g.lock(events)
}

// lock commits the active piece to the board, clears completed rows and
// transitions to Spawning, or to GameOver if the piece settled above the
// visible area.
func (g *Game) lock(events []core.Event) []core.Event {
	g.phase = PhaseLocking
	g.board.Commit(g.active.Cells(), g.active.Shape.Color())
	events = append(events, core.Event{Kind: core.EventPieceLocked})
	g.active = nil

	if g.board.occupiedAbove() {
		g.phase = PhaseGameOver
		return append(events, core.Event{Kind: core.EventGameOver})
	}

	g.phase = PhaseLineClearing
	if rows := g.board.FullRows(); len(rows) > 0 {
		g.board.ClearRows(rows)
		gained := lineScores[min(len(rows), 4)] * g.level
		g.score += gained
		g.lines += len(rows)
		events = append(events, core.Event{
			Kind:  core.EventLinesCleared,
			Rows:  len(rows),
			Score: gained,
		})
		g.advanceLevel()
	}

	g.phase = PhaseSpawning
	return events
}

// advanceLevel recomputes the level and gravity speed from lines cleared.
func (g *Game) advanceLevel() {
	if !g.cfg.Difficulty.Progression {
		return
	}
	g.level = g.lines/g.cfg.Gravity.LinesPerLevel + 1

	ticks := g.cfg.Gravity.TicksPerCell - (g.level-1)*g.cfg.Gravity.SpeedupPerLevel
	if ticks < g.cfg.Gravity.MinTicksPerCell {
		ticks = g.cfg.Gravity.MinTicksPerCell
	}
	g.gravityTicks = ticks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		Words:    g.words,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}
