package state

import (
	"fmt"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/event"
)

// GameOver shows the death screen. When a checkpoint was reached the
// player may continue from it until the countdown runs out.
type GameOver struct {
	session   *Session
	img       *core.Screen
	canResume bool
	countdown int
	ticks     int
}

// NewGameOver starts the death screen over the current frame.
func NewGameOver(s *Session) *GameOver {
	return &GameOver{
		session:   s,
		img:       s.Surface.Clone(),
		canResume: s.Handler.Snapshot().Checkpoint,
	}
}

// Session implements State.
func (g *GameOver) Session() *Session { return g.session }

// Name implements State.
func (g *GameOver) Name() string { return "game-over" }

// Countdown returns the seconds left to continue, or 0 once it is too late.
func (g *GameOver) Countdown() int { return g.countdown }

// Execute implements State.
func (g *GameOver) Execute(in core.InputFrame) State {
	s := g.session
	if g.countdown > 0 && (g.ticks-promptTick)%s.deps.Config.Timing.TickRate == 0 {
		g.updateCountdown()
	}

	switch {
	case g.ticks < textTick:
		zoomIn(s.Surface, g.img, g.ticks)
	case g.ticks == textTick:
		top, _ := textRows(s.Surface.Height())
		s.Surface.DrawTextCentered(top[0], "BRAVE ADVENTURER", core.ColorBrightWhite)
		s.Surface.DrawTextCentered(top[1], "YOU ARE DEAD", core.ColorBrightRed)
		if g.canResume {
			g.drawCountdown(s.deps.Config.Timing.ContinueCountdown)
		}
		s.Surface.Present()
	case g.ticks == promptTick:
		drawPrompt(s.Surface)
		if g.canResume {
			g.countdown = s.deps.Config.Timing.ContinueCountdown
		}
		s.Surface.Present()
	case g.ticks > promptTick && in.Use():
		return s.restart(g.countdown > 0)
	}
	g.ticks++
	return nil
}

func (g *GameOver) updateCountdown() {
	g.countdown--
	top, _ := textRows(g.session.Surface.Height())
	clearRow(g.session.Surface, top[2])
	if g.countdown > 0 {
		g.drawCountdown(g.countdown)
	} else {
		g.countdown = 0
	}
	g.session.Surface.Present()
}

func (g *GameOver) drawCountdown(n int) {
	top, _ := textRows(g.session.Surface.Height())
	g.session.Surface.DrawTextCentered(top[2], fmt.Sprintf("CONTINUE... %d", n), core.ColorBrightYellow)
}

// EndGame congratulates the player and records the result.
type EndGame struct {
	session *Session
	img     *core.Screen
	ticks   int
}

// NewEndGame starts the closing screen over the current frame.
func NewEndGame(s *Session) *EndGame {
	return &EndGame{session: s, img: s.Surface.Clone()}
}

// Session implements State.
func (e *EndGame) Session() *Session { return e.session }

// Name implements State.
func (e *EndGame) Name() string { return "end-game" }

// Execute implements State.
func (e *EndGame) Execute(in core.InputFrame) State {
	s := e.session
	if e.ticks == 0 {
		s.Bus.Publish(event.EndGame)
		s.record()
	}

	switch {
	case e.ticks < textTick:
		zoomIn(s.Surface, e.img, e.ticks)
	case e.ticks == textTick:
		top, _ := textRows(s.Surface.Height())
		s.Surface.DrawTextCentered(top[0], "YOUR ADVENTURE IS", core.ColorBrightWhite)
		s.Surface.DrawTextCentered(top[1], "AT AN END... FOR NOW!", core.ColorBrightWhite)
		found := fmt.Sprintf("YOU FOUND %d/%d COINS", s.Player.Coins(), s.deps.Config.Player.TotalCoins)
		s.Surface.DrawTextCentered(top[2], found, core.ColorBrightYellow)
		s.Surface.Present()
	case e.ticks == promptTick:
		drawPrompt(s.Surface)
		s.Surface.Present()
	case e.ticks > promptTick && in.Use():
		return s.restart(false)
	}
	e.ticks++
	return nil
}

func drawPrompt(dst Surface) {
	_, low := textRows(dst.Height())
	dst.DrawTextCentered(low[0], "PRESS SPACE", core.ColorBrightCyan)
	dst.DrawTextCentered(low[1], "TO PLAY AGAIN", core.ColorBrightCyan)
}

func clearRow(dst Surface, y int) {
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, y, ' ', core.ColorDefault)
	}
}
