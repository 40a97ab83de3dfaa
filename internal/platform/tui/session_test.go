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

func TestMenuItems(t *testing.T) {
	tests := []struct {
		name        string
		canContinue bool
		first       MenuChoice
		count       int
	}{
		{"fresh", false, ChoiceNewGame, 3},
		{"saved", true, ChoiceContinue, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(tt.canContinue, 80, 24)
			if len(m.items) != tt.count || m.items[0].Choice != tt.first {
				t.Errorf("items = %+v", m.items)
			}
		})
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(false, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil || m.Selected() == nil || m.Selected().Choice != ChoiceRecords {
		t.Errorf("selected = %+v", m.Selected())
	}
	if !strings.Contains(NewMenuModel(false, 80, 24).View(), "New adventure") {
		t.Error("view is missing the new game entry")
	}
}

func newTestSession(t *testing.T) (SessionModel, *[]bool) {
	t.Helper()
	var started []bool
	cfg := SessionConfig{
		Runtime:   core.RuntimeConfig{ScreenW: 40, ScreenH: 24, TickRate: 60},
		HoldTicks: 4,
		NewGame: func(cont bool) *game.Game {
			started = append(started, cont)
			return game.New(state.Deps{
				Config: config.DefaultAdventureConfig(),
				Loader: world.NewLoader("", nil),
			}, cont)
		},
		CanContinue: func() bool { return true },
	}
	return NewSessionModel(cfg), &started
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestSessionGameAndBack(t *testing.T) {
	m, started := newTestSession(t)

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game == nil || cmd == nil {
		t.Fatal("selecting continue did not start a game")
	}
	if len(*started) != 1 || !(*started)[0] {
		t.Errorf("games started = %v, want one continued game", *started)
	}

	m, _ = sessionUpdate(t, m, TickMsg{Gen: m.gen})
	if !strings.Contains(m.View(), "♥") {
		t.Error("game view is missing the status line")
	}

	m, _ = sessionUpdate(t, m, runeKey("q"))
	if m.game != nil {
		t.Fatal("q did not leave the game")
	}
	if m.quitting {
		t.Error("q quit the whole session")
	}

	// A tick from the finished game is ignored by the menu and the next game.
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game == nil || (*started)[1] {
		t.Fatalf("second game = %v", *started)
	}
	if m.game.gen != 2 {
		t.Errorf("gen = %d, want 2", m.game.gen)
	}
	m, _ = sessionUpdate(t, m, TickMsg{Gen: 1})
	if m.game.State().Phase != "" {
		t.Error("stale tick advanced the new game")
	}
}

func TestSessionRecordsAndBack(t *testing.T) {
	m, _ := newTestSession(t)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.records == nil {
		t.Fatal("tab did not open the records")
	}
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.records != nil || m.quitting {
		t.Fatal("esc did not return to the menu")
	}

	m, cmd := sessionUpdate(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q on the menu did not quit")
	}
}
