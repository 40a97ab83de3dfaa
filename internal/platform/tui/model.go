package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/game"
)

// Model is the Bubble Tea model running the adventure.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      *HeldKeys
	gameState core.GameState
	gen       int
	quitting  bool

	// In a session the quit key leaves to the menu instead.
	embedded   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game. A key press
// keeps its direction held for hold ticks.
func NewModel(g *game.Game, cfg core.RuntimeConfig, hold int) Model {
	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   NewKeyMapper(),
		held:   NewHeldKeys(hold),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, dirs, isQuit := m.keys.MapKey(msg)
	if isQuit {
		if m.embedded && msg.String() != "ctrl+c" {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	if dirs != core.DirNone {
		m.held.Press(dirs)
	}
	if action != core.ActionNone {
		m.held.Trigger(action)
	}
	return m, nil
}

// handleResize follows the terminal size. The adventure keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.held.Frame())
	m.gameState = result.State

	// A text screen needs a fresh press; do not walk on into the next game.
	if m.gameState.GameOver || m.gameState.Finished {
		m.held.Release()
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// BackToMenu returns true if the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user wants to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".adventure", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, cfg core.RuntimeConfig, hold int) error {
	model := NewModel(g, cfg, hold)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
