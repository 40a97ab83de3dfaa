package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/game"
)

// SessionConfig describes how a session creates its adventures.
type SessionConfig struct {
	Runtime   core.RuntimeConfig
	HoldTicks int

	// NewGame creates an adventure, continuing from the saved checkpoint
	// when cont is set.
	NewGame func(cont bool) *game.Game

	// CanContinue reports whether a checkpoint is saved. Nil means never.
	CanContinue func() bool

	// Records feeds the records board. Nil shows an empty board.
	Records RecordSource
}

// SessionModel manages the full flow: menu -> game or records -> menu.
// This is the top-level model used for SSH sessions and the local menu.
type SessionModel struct {
	config   SessionConfig
	menu     MenuModel
	game     *Model
	records  *RecordsModel
	gen      int
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	m := SessionModel{config: cfg}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	canContinue := m.config.CanContinue != nil && m.config.CanContinue()
	return NewMenuModel(canContinue, m.config.Runtime.ScreenW, m.config.Runtime.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.Runtime.ScreenW = wsm.Width
		m.config.Runtime.ScreenH = wsm.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.records != nil:
		return m.updateRecords(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	// The menu quits on selection; the session acts on it instead.
	switch selected.Choice {
	case ChoiceNewGame, ChoiceContinue:
		m.gen++
		gm := NewModel(m.config.NewGame(selected.Choice == ChoiceContinue), m.config.Runtime, m.config.HoldTicks)
		gm.embedded = true
		gm.gen = m.gen
		m.game = &gm
		return m, m.game.Init()

	case ChoiceRecords:
		rm := NewRecordsModel(m.config.Records, m.config.Runtime.TickRate, m.config.Runtime.ScreenW, m.config.Runtime.ScreenH)
		rm.embedded = true
		m.records = &rm
		return m, nil
	}

	m.quitting = true
	return m, tea.Quit
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateRecords handles updates when the records board is open.
func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.records.Update(msg)
	if rm, ok := newModel.(RecordsModel); ok {
		m.records = &rm
	}

	if m.records.IsGoingBack() {
		m.records = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	if m.records.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.game != nil:
		return m.game.View()
	case m.records != nil:
		return m.records.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
