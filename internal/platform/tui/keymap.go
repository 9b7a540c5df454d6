package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typefall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
//
// Letter keys are typing input, never commands, so every in-game command
// lives on arrows, enter/tab or a ctrl chord. A plain "q" must reach the
// typing gate, not quit the session.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Printable runes are appended as typed characters in arrival order;
// everything else maps to a semantic action. Returns true on a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c":
		frame.Set(core.ActionQuit)
		return true
	case "left":
		frame.Set(core.ActionLeft)
		return false
	case "right":
		frame.Set(core.ActionRight)
		return false
	case "up":
		frame.Set(core.ActionRotate)
		return false
	case "enter", "tab", " ":
		frame.Set(core.ActionDrop)
		return false
	case "esc":
		frame.Set(core.ActionPause)
		return false
	case "ctrl+r":
		frame.Set(core.ActionRestart)
		return false
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		for _, r := range msg.Runes {
			frame.Type(r)
		}
	}

	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. Menus are not
// typing surfaces, so plain letters are fair game here.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
