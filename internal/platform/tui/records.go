package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-adventure/internal/storage"
)

// Records board layout constants
const (
	maxRecords  = 100 // Max results to load
	boardChrome = 8   // Rows taken by title, tabs, borders and help
)

// RecordSource provides the rows of the records board.
type RecordSource interface {
	TopResults(limit int) ([]storage.Result, error)
	Checkpoints() ([]storage.CheckpointInfo, error)
}

// boardTab selects what the board lists.
type boardTab int

const (
	tabResults boardTab = iota
	tabSaves
)

var tabTitles = []string{"Finished adventures", "Saved checkpoints"}

// RecordsKeyMap defines the key bindings for the records board.
type RecordsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next list"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev list"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for the records board.
type RecordsModel struct {
	source   RecordSource
	tickRate int
	tab      boardTab
	rows     []table.Row
	err      error
	table    table.Model
	help     help.Model
	keys     RecordsKeyMap
	width    int
	height   int
	quitting bool

	// In a session leaving returns to the menu instead of quitting.
	embedded  bool
	goingBack bool
}

// NewRecordsModel creates a records board. tickRate converts result ticks
// to play time.
func NewRecordsModel(source RecordSource, tickRate, width, height int) RecordsModel {
	if tickRate <= 0 {
		tickRate = 60
	}
	h := help.New()
	h.ShowAll = false

	m := RecordsModel{
		source:   source,
		tickRate: tickRate,
		keys:     DefaultRecordsKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.load()
	return m
}

// columns returns the table columns of the current tab.
func (m *RecordsModel) columns() []table.Column {
	if m.tab == tabSaves {
		return []table.Column{
			{Title: "Slot", Width: 12},
			{Title: "Map", Width: 10},
			{Title: "Tile", Width: 8},
			{Title: "Coins", Width: 6},
			{Title: "Keys", Width: 5},
			{Title: "Taken", Width: 6},
			{Title: "Saved", Width: 14},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Coins", Width: 7},
		{Title: "Lives", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}
}

// createTable creates a table for the current tab.
func (m *RecordsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-boardChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the rows of the current tab.
func (m *RecordsModel) load() {
	m.rows, m.err = nil, nil
	if m.source != nil {
		if m.tab == tabSaves {
			m.rows, m.err = m.saveRows()
		} else {
			m.rows, m.err = m.resultRows()
		}
	}
	m.table = m.createTable()
	m.table.GotoTop()
}

func (m *RecordsModel) resultRows() ([]table.Row, error) {
	results, err := m.source.TopResults(maxRecords)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d/%d", r.Coins, r.Total),
			fmt.Sprintf("%d", r.Lives),
			playTime(r.Ticks, m.tickRate),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows, nil
}

func (m *RecordsModel) saveRows() ([]table.Row, error) {
	saves, err := m.source.Checkpoints()
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(saves))
	for i, s := range saves {
		rows[i] = table.Row{
			s.Slot,
			s.Map,
			fmt.Sprintf("%d,%d", s.TileX, s.TileY),
			fmt.Sprintf("%d", s.Coins),
			fmt.Sprintf("%d", s.Keys),
			fmt.Sprintf("%d", s.Removed),
			s.UpdatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows, nil
}

// playTime formats a tick count as minutes and seconds.
func playTime(ticks, tickRate int) string {
	secs := ticks / tickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the records board.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records board.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back) && m.embedded:
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % boardTab(len(tabTitles))
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + boardTab(len(tabTitles)) - 1) % boardTab(len(tabTitles))
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and other messages go to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m RecordsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RecordsModel) IsQuitting() bool {
	return m.quitting
}

// Rows returns the rows shown for the current tab.
func (m RecordsModel) Rows() []table.Row {
	return m.rows
}

// View renders the records board.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("ADVENTURE RECORDS", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RecordsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if boardTab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = tabStyle.Render(" " + title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or an empty message.
func (m RecordsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Cannot read records:\n" + m.err.Error())
	case len(m.rows) == 0 && m.tab == tabSaves:
		return emptyStyle.Render("No checkpoints saved yet.\nReach a checkpoint to save your progress!")
	case len(m.rows) == 0:
		return emptyStyle.Render("No adventures finished yet.\nFind your way to the end!")
	}
	return m.table.View()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// RunRecords runs the records board.
func RunRecords(source RecordSource, tickRate, width, height int) error {
	model := NewRecordsModel(source, tickRate, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
