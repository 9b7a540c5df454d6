package typefall

import (
	"fmt"

	"github.com/vovakirdan/typefall/internal/core"
)

// Board cells render two characters wide so the playfield looks square
// in a terminal.
const cellW = 2

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	frameX := core.Max((dst.Width()-(g.board.Width()*cellW+2+wordPanelWidth))/2, 0)
	frameY := 2

	g.renderBoard(dst, frameX, frameY)
	g.renderWordPanel(dst, frameX+g.board.Width()*cellW+4, frameY+1)

	switch {
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - Ctrl+R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Esc to continue")
	}
}

const wordPanelWidth = 20

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Typefall - Score: %d  Lines: %d  Level: %d", g.score, g.lines, g.level)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the playfield frame, settled cells and the active piece.
// Only the visible rows are drawn; the spawn buffer stays hidden.
func (g *Game) renderBoard(dst *core.Screen, frameX, frameY int) {
	buf := g.board.Buffer()
	w := g.board.Width()
	h := g.board.Height()

	dst.DrawBox(core.NewRect(frameX, frameY, w*cellW+2, h+2))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := g.board.Cell(x, y+buf)
			if !cell.Occupied {
				continue
			}
			sx := frameX + 1 + x*cellW
			sy := frameY + 1 + y
			dst.SetColored(sx, sy, '█', cell.Color)
			dst.SetColored(sx+1, sy, '█', cell.Color)
		}
	}

	if g.active == nil {
		return
	}
	color := g.active.Shape.Color()
	for _, p := range g.active.Cells() {
		vy := p.Y - buf
		if vy < 0 {
			continue // still inside the spawn buffer
		}
		sx := frameX + 1 + p.X*cellW
		sy := frameY + 1 + vy
		dst.SetColored(sx, sy, '▓', color)
		dst.SetColored(sx+1, sy, '▓', color)
	}
}

// renderWordPanel draws the active word with typed progress highlighted.
func (g *Game) renderWordPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "Type:")
	if g.active == nil {
		dst.DrawTextColored(x, y+2, "(spawning...)", core.ColorGray)
		return
	}

	typed := g.active.Word[:g.active.Progress]
	rest := g.active.Word[g.active.Progress:]
	dst.DrawTextColored(x, y+2, typed, core.ColorBrightGreen)
	dst.DrawTextColored(x+len(typed), y+2, rest, core.ColorBrightWhite)

	if g.active.Progress == 0 {
		dst.DrawTextColored(x, y+4, "arrows move", core.ColorGray)
	} else {
		dst.DrawTextColored(x, y+4, "locked in", core.ColorGray)
	}
	dst.DrawTextColored(x, y+5, "Enter/Tab drop", core.ColorGray)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
