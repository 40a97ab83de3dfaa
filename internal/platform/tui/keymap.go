package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action, or to the directions a
// movement key walks. Returns whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, dirs core.Direction, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, core.DirNone, true
	}

	// Walking: arrows, WASD and vi keys with their diagonals
	switch key {
	case "w", "up", "k":
		return core.ActionNone, core.DirUp, false
	case "s", "down", "j":
		return core.ActionNone, core.DirDown, false
	case "a", "left", "h":
		return core.ActionNone, core.DirLeft, false
	case "d", "right", "l":
		return core.ActionNone, core.DirRight, false
	case "y":
		return core.ActionNone, core.DirUp | core.DirLeft, false
	case "u":
		return core.ActionNone, core.DirUp | core.DirRight, false
	case "b":
		return core.ActionNone, core.DirDown | core.DirLeft, false
	case "n":
		return core.ActionNone, core.DirDown | core.DirRight, false
	}

	switch key {
	case " ":
		return core.ActionUse, core.DirNone, false
	case "enter":
		return core.ActionConfirm, core.DirNone, false
	case "p", "esc":
		return core.ActionPause, core.DirNone, false
	}

	return core.ActionNone, core.DirNone, false
}

// directionActions pairs each direction bit with its action.
var directionActions = []struct {
	dir    core.Direction
	action core.Action
}{
	{core.DirUp, core.ActionUp},
	{core.DirDown, core.ActionDown},
	{core.DirLeft, core.ActionLeft},
	{core.DirRight, core.ActionRight},
}

// HeldKeys turns key presses into held directions. Terminals report
// presses but never releases, so a press holds its direction for a number
// of ticks and key repeat keeps it held.
type HeldKeys struct {
	hold int
	left map[core.Direction]int
	once core.InputFrame
}

// NewHeldKeys creates a holder keeping directions for hold ticks.
func NewHeldKeys(hold int) *HeldKeys {
	if hold <= 0 {
		hold = 1
	}
	return &HeldKeys{
		hold: hold,
		left: make(map[core.Direction]int, len(directionActions)),
		once: core.NewInputFrame(),
	}
}

// Press holds dirs. A direction releases its opposite at once.
func (h *HeldKeys) Press(dirs core.Direction) {
	for _, da := range directionActions {
		if dirs&da.dir == 0 {
			continue
		}
		h.left[da.dir] = h.hold
		delete(h.left, opposite(da.dir))
	}
}

// Trigger sets an action for the next frame only.
func (h *HeldKeys) Trigger(a core.Action) {
	h.once.Set(a)
}

// Frame returns the input for the coming tick and ages held directions.
func (h *HeldKeys) Frame() core.InputFrame {
	in := h.once.Clone()
	h.once.Clear()
	for _, da := range directionActions {
		n, ok := h.left[da.dir]
		if !ok {
			continue
		}
		in.Set(da.action)
		if n <= 1 {
			delete(h.left, da.dir)
		} else {
			h.left[da.dir] = n - 1
		}
	}
	return in
}

// Release drops every held direction.
func (h *HeldKeys) Release() {
	clear(h.left)
	h.once.Clear()
}

func opposite(d core.Direction) core.Direction {
	switch d {
	case core.DirUp:
		return core.DirDown
	case core.DirDown:
		return core.DirUp
	case core.DirLeft:
		return core.DirRight
	case core.DirRight:
		return core.DirLeft
	}
	return core.DirNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionRecords
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab", "r":
		return MenuActionRecords
	}

	return MenuActionNone
}
