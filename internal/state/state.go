// Package state sequences the adventure through its game states: play,
// the scene and boundary transitions, walking the player in, game over and
// the end of the game. Each state runs one tick at a time and hands over by
// returning the state that replaces it.
package state

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// State is one phase of the game.
type State interface {
	// Execute runs one tick. It returns the state to switch to, or nil to
	// stay. A returned state starts at its first tick.
	Execute(in core.InputFrame) State

	// Session returns the game session the state belongs to.
	Session() *Session

	// Name identifies the state in logs and status reports.
	Name() string
}

// Surface is the renderer the states draw finished frames onto.
type Surface interface {
	Width() int
	Height() int
	Clear()
	Set(x, y int, r rune, c core.Color)
	DrawTextCentered(y int, text string, c core.Color)
	Blit(src *core.Screen, from core.Rect, x, y int)
	Clone() *core.Screen
	Present()
}

var _ Surface = (*core.Screen)(nil)

// Machine drives the active state and owns its replacement.
type Machine struct {
	state State
}

// NewMachine creates a machine starting in initial.
func NewMachine(initial State) *Machine {
	return &Machine{state: initial}
}

// Tick runs the active state for one tick and switches state when it asks to.
func (m *Machine) Tick(in core.InputFrame) {
	m.state.Session().ticks++
	next := m.state.Execute(in)
	if next == nil {
		return
	}
	next.Session().Logger.Debug("state change", "from", m.state.Name(), "to", next.Name())
	m.state = next
}

// Current returns the active state.
func (m *Machine) Current() State {
	return m.state
}

// Session returns the session of the active state. It changes when the
// game restarts.
func (m *Machine) Session() *Session {
	return m.state.Session()
}
