package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/game"
	"github.com/vovakirdan/tui-adventure/internal/state"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	g := game.New(state.Deps{
		Config: config.DefaultAdventureConfig(),
		Loader: world.NewLoader("", nil),
		Name:   "ulmo",
	}, false)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 24, TickRate: 60}, 4)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned no tick command")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestModelTicksGame(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick did not schedule the next one")
	}
	if st := m.State(); st.Phase != "play" || st.Map != "central" {
		t.Errorf("state = %+v", st)
	}
	if !strings.Contains(m.View(), "♥") {
		t.Error("view is missing the status line")
	}
}

func TestModelHoldsWalkKey(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey("a"))
	if _, held := m.held.left[core.DirLeft]; !held {
		t.Fatal("left not held after the key press")
	}
	for i := 0; i < 4; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	if _, held := m.held.left[core.DirLeft]; held {
		t.Error("left is still held after the hold ran out")
	}
	if st := m.State(); st.Phase != "play" {
		t.Errorf("phase = %q after walking on the meadow", st.Phase)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if m.View() != "" {
		t.Error("view not empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	m, _ = update(t, m, TickMsg{})

	if m.screen.Width() != 60 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 60x30", m.screen.Width(), m.screen.Height())
	}
	if st := m.State(); st.Phase != "play" {
		t.Errorf("phase = %q after resize", st.Phase)
	}
}
