package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	ChoiceNewGame MenuChoice = iota
	ChoiceContinue
	ChoiceRecords
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects an entry
}

// NewMenuModel creates the title menu. Continue is offered only when a
// checkpoint is saved.
func NewMenuModel(canContinue bool, width, height int) MenuModel {
	items := make([]MenuItem, 0, 4)
	if canContinue {
		items = append(items, MenuItem{Choice: ChoiceContinue, Title: "Continue"})
	}
	items = append(items,
		MenuItem{Choice: ChoiceNewGame, Title: "New adventure"},
		MenuItem{Choice: ChoiceRecords, Title: "Records"},
		MenuItem{Choice: ChoiceQuit, Title: "Quit"},
	)

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit // Exit menu to act on the choice

	case MenuActionRecords:
		m.selected = &MenuItem{Choice: ChoiceRecords, Title: "Records"}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Leave the upper third for the title
	for range max(1, m.height/3-4) {
		b.WriteString("\n")
	}

	b.WriteString(centerText("  T U I   A D V E N T U R E  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("A tiny world awaits", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-14s", cursor, item.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Records  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
