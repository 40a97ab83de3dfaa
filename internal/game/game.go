// Package game adapts the adventure's state machine to the platform's
// Reset/Step/Render loop.
package game

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/state"
)

// ID identifies the adventure in logs and storage.
const ID = "adventure"

// Game runs one adventure on its own screen buffer.
type Game struct {
	deps    state.Deps
	cont    bool
	screen  *core.Screen
	machine *state.Machine
	paused  bool
	err     error
}

// New creates a game. With cont set the first session continues from
// deps.Resume when it is present.
func New(deps state.Deps, cont bool) *Game {
	return &Game{deps: deps, cont: cont}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "TUI Adventure" }

// Reset starts a new session sized to the terminal.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.deps.Surface = g.screen
	if cfg.TickRate > 0 {
		g.deps.Config.Timing.TickRate = cfg.TickRate
	}
	g.paused = false
	g.machine = nil

	s, err := state.NewSession(g.deps, g.cont)
	if err != nil {
		g.err = err
		if g.deps.Logger != nil {
			g.deps.Logger.Error("cannot start adventure", "err", err)
		}
		return
	}
	g.err = nil
	g.machine = state.NewMachine(state.NewPlay(s))
}

// Err returns the error that stopped the last Reset, if any.
func (g *Game) Err() error { return g.err }

// Step advances the adventure by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.machine == nil {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.machine.Tick(in)
	}
	return core.StepResult{State: g.State()}
}

// Render copies the last presented frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "CANNOT START ADVENTURE", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error(), core.ColorWhite)
		return
	}
	if g.screen == nil {
		return
	}
	dst.Blit(g.screen, g.screen.Bounds(), 0, 0)
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
}

// Resize follows a change in terminal size without restarting.
func (g *Game) Resize(w, h int) {
	if g.screen == nil {
		return
	}
	g.screen.Resize(w, h)
	if g.machine != nil {
		g.machine.Session().Resize()
	}
}

// Paused reports whether the adventure is paused.
func (g *Game) Paused() bool { return g.paused }

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{}
	}
	s := g.machine.Session()
	phase := g.machine.Current().Name()
	return core.GameState{
		Phase:    phase,
		Map:      s.Map.Name(),
		Coins:    s.Player.Coins(),
		Keys:     s.Player.Keys(),
		Lives:    s.Player.Lives(),
		GameOver: phase == "game-over",
		Finished: phase == "end-game",
	}
}
