package state

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/event"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// SceneTransition zooms in on the current map, swaps to the target map at
// the midpoint and zooms back out.
type SceneTransition struct {
	session *Session
	tr      *world.Transition
	img     *core.Screen
	next    *Play
	ticks   int
}

// NewSceneTransition starts a zoom to the map named by tr.
func NewSceneTransition(s *Session, tr *world.Transition) *SceneTransition {
	return &SceneTransition{session: s, tr: tr, img: s.Surface.Clone()}
}

// Session implements State.
func (t *SceneTransition) Session() *Session { return t.session }

// Name implements State.
func (t *SceneTransition) Name() string { return "scene-transition" }

// Execute implements State.
func (t *SceneTransition) Execute(core.InputFrame) State {
	s := t.session
	if t.ticks == 0 && t.tr.Kind == world.TransitionScene {
		s.Bus.Publish(event.MapTransition)
	}

	switch {
	case t.ticks < swapTick:
		zoomIn(s.Surface, t.img, t.ticks)
	case t.ticks == swapTick:
		t.swap()
	case t.ticks < zoomTicks:
		zoomOut(s.Surface, t.img, t.ticks)
	default:
		if t.tr.Kind == world.TransitionLifeLost {
			return t.next
		}
		target := s.deps.Config.ShowPlayer.Ticks(t.tr.Boundary)
		return NewShowPlayer(t.next, s.Player.Direction(), target)
	}
	t.ticks++
	return nil
}

// swap loads the target map and draws its first frame, unseen, into the
// zoom image.
func (t *SceneTransition) swap() {
	s, tr := t.session, t.tr
	s.enterMap(tr.Map)
	s.Player.Place(tr.TileX, tr.TileY, tr.Level)
	if tr.Boundary != core.BoundaryNone {
		s.Player.Hide(tr.Boundary, 0)
	}
	t.next = NewPlay(s)
	s.Player.SetDirection(tr.Direction)
	t.next.drawMapView(t.img, 0)
}

// BoundaryTransition wipes from one map to its neighbour across the edge
// the player walked off.
type BoundaryTransition struct {
	session *Session
	tr      *world.Transition
	old     *core.Screen
	img     *core.Screen
	next    *Play
	ticks   int
}

// NewBoundaryTransition starts a wipe to the map named by tr.
func NewBoundaryTransition(s *Session, tr *world.Transition) *BoundaryTransition {
	return &BoundaryTransition{session: s, tr: tr}
}

// Session implements State.
func (t *BoundaryTransition) Session() *Session { return t.session }

// Name implements State.
func (t *BoundaryTransition) Name() string { return "boundary-transition" }

// Execute implements State.
func (t *BoundaryTransition) Execute(core.InputFrame) State {
	s, b := t.session, t.tr.Boundary
	switch {
	case t.ticks == 0:
		s.Bus.Publish(event.MapTransition)
		t.old = s.Surface.Clone()
		s.enterMap(t.tr.Map)
		s.Player.SetDirection(b.Direction())
		s.Player.Hide(b, t.tr.Modifier)
		t.next = NewPlay(s)
		t.img = s.newFrame()
		t.next.drawMapView(t.img, 0)
	case t.ticks < wipeTicks:
		wipe(s.Surface, t.old, t.img, b, t.ticks)
	default:
		return NewShowPlayer(t.next, b.Direction(), s.deps.Config.ShowPlayer.Ticks(b))
	}
	t.ticks++
	return nil
}

// ShowPlayer walks the player in from the edge or doorway it arrived
// through, then hands over to play.
type ShowPlayer struct {
	next   *Play
	dir    core.Direction
	target int
	ticks  int
}

// NewShowPlayer walks the player target steps towards dir before next
// takes over.
func NewShowPlayer(next *Play, dir core.Direction, target int) *ShowPlayer {
	return &ShowPlayer{next: next, dir: dir, target: target}
}

// Session implements State.
func (sp *ShowPlayer) Session() *Session { return sp.next.Session() }

// Name implements State.
func (sp *ShowPlayer) Name() string { return "show-player" }

// Execute implements State.
func (sp *ShowPlayer) Execute(core.InputFrame) State {
	if sp.ticks > sp.target {
		return sp.next
	}
	dx, dy := step(sp.dir)
	sp.next.showPlayer(dx, dy)
	sp.ticks++
	return nil
}

// step returns the pixel offset of one move towards dir.
func step(dir core.Direction) (dx, dy int) {
	if dir&core.DirUp != 0 {
		dy = -core.MoveUnit
	} else if dir&core.DirDown != 0 {
		dy = core.MoveUnit
	}
	if dir&core.DirLeft != 0 {
		dx = -core.MoveUnit
	} else if dir&core.DirRight != 0 {
		dx = core.MoveUnit
	}
	return dx, dy
}
