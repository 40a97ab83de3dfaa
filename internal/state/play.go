package state

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/sprite"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// Play is the state where the player walks the map.
type Play struct {
	session *Session
	sprites *sprite.Group
}

// NewPlay creates the play state for the session's current map. The player
// must already be placed on it.
func NewPlay(s *Session) *Play {
	sprites, err := sprite.Build(s.Map, s.Bus, s.Handler.Registry())
	if err != nil {
		s.Logger.Error("cannot build sprites", "map", s.Map.Name(), "err", err)
		sprites = sprite.NewGroup()
	}
	s.Player.SetViewSize(s.viewSize())
	return &Play{session: s, sprites: sprites}
}

// Session implements State.
func (p *Play) Session() *Session { return p.session }

// Name implements State.
func (p *Play) Name() string { return "play" }

// Sprites returns the sprites on the map.
func (p *Play) Sprites() *sprite.Group { return p.sprites }

// Execute implements State. Map events are checked first, then
// collisions, then movement. The first transition found wins; without one
// the frame is drawn.
func (p *Play) Execute(in core.InputFrame) State {
	if tr := p.nextTransition(in); tr != nil {
		p.session.Logger.Debug("transition", "kind", tr.Kind, "map", tr.Map)
		return p.stateFor(tr)
	}
	p.render(1)
	return nil
}

func (p *Play) nextTransition(in core.InputFrame) *world.Transition {
	if tr := p.session.Player.Update(p.sprites); tr != nil {
		return tr
	}
	if tr := p.handleCollisions(); tr != nil {
		return tr
	}
	return p.handleInput(in)
}

func (p *Play) handleCollisions() *world.Transition {
	pl := p.session.Player
	if !pl.ProcessCollisions(p.sprites.Visible(pl.View())) {
		return nil
	}
	if pl.GameOver() {
		return world.GameOverTransition()
	}
	return p.lifeLostTransition()
}

func (p *Play) handleInput(in core.InputFrame) *world.Transition {
	pl := p.session.Player
	if bits := in.Directions(); bits != core.DirNone {
		pl.HandleMovement(bits)
		if tr := pl.BoundaryTransition(); tr != nil {
			return tr
		}
	}
	if in.Use() {
		pl.ProcessActions(p.sprites.Visible(pl.View()))
	}
	return nil
}

// lifeLostTransition rolls progress back to the last checkpoint and
// returns the player there.
func (p *Play) lifeLostTransition() *world.Transition {
	s := p.session
	s.Handler.SwitchToSnapshot()
	r := s.Handler.Registry()
	s.Player.SetCoins(r.Coins)
	s.Player.SetKeys(r.Keys)
	return world.LifeLostTransition(r.Map, r.TileX, r.TileY, r.Level)
}

func (p *Play) stateFor(tr *world.Transition) State {
	switch tr.Kind {
	case world.TransitionBoundary:
		return NewBoundaryTransition(p.session, tr)
	case world.TransitionScene, world.TransitionLifeLost:
		return NewSceneTransition(p.session, tr)
	case world.TransitionGameOver:
		return NewGameOver(p.session)
	case world.TransitionEndGame:
		return NewEndGame(p.session)
	default:
		p.session.Logger.Warn("ignoring transition", "kind", tr.Kind)
		return nil
	}
}

// drawMapView draws the map, its sprites and the player onto dst, advancing
// animations by increment ticks. The status line is drawn only on ticks
// that advance.
func (p *Play) drawMapView(dst *core.Screen, increment int) {
	s := p.session
	view := s.Player.View()

	dst.Clear()
	s.Map.Draw(dst, view)
	p.sprites.Animate(increment)
	p.sprites.Purge()
	p.sprites.Draw(dst, view, &s.Player.Entity)
	if increment > 0 {
		drawStatus(dst, s.Player, s.deps.Config.Player.TotalCoins)
	}
}

// render draws a frame and presents it.
func (p *Play) render(increment int) {
	s := p.session
	p.drawMapView(s.frame, increment)
	s.Surface.Blit(s.frame, s.frame.Bounds(), 0, 0)
	s.Surface.Present()
}

// showPlayer moves the player in from off-screen by (dx, dy) without
// animating the map.
func (p *Play) showPlayer(dx, dy int) {
	p.session.Player.Show(dx, dy)
	p.render(0)
}
