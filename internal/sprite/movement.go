package sprite

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/event"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

const (
	// DiagonalTick is the length of the diagonal cadence: two moves and
	// one pause in every three ticks.
	DiagonalTick = 3

	// FallUnit is how far a falling player drops each tick.
	FallUnit = 2 * core.MoveUnit
)

// Movement is the displacement requested by one combination of directions.
type Movement struct {
	DX        int
	DY        int
	Direction core.Direction // facing while moving
	Diagonal  bool
}

var movements = map[core.Direction]Movement{
	core.DirUp:                   {0, -core.MoveUnit, core.DirUp, false},
	core.DirDown:                 {0, core.MoveUnit, core.DirDown, false},
	core.DirLeft:                 {-core.MoveUnit, 0, core.DirLeft, false},
	core.DirRight:                {core.MoveUnit, 0, core.DirRight, false},
	core.DirUp | core.DirLeft:    {-core.MoveUnit, -core.MoveUnit, core.DirUp, true},
	core.DirUp | core.DirRight:   {core.MoveUnit, -core.MoveUnit, core.DirUp, true},
	core.DirDown | core.DirLeft:  {-core.MoveUnit, core.MoveUnit, core.DirDown, true},
	core.DirDown | core.DirRight: {core.MoveUnit, core.MoveUnit, core.DirDown, true},
}

// Decode maps direction bits to a movement. Opposing directions, three or
// more bits and no bits at all decode to nothing.
func Decode(bits core.Direction) (Movement, bool) {
	m, ok := movements[bits]
	return m, ok
}

// deferredMove is a movement shown this tick and applied on the next.
type deferredMove struct {
	level     int
	direction core.Direction
	dx, dy    int
}

// HandleMovement moves the player for one tick of directional input.
//
// Repeating last tick's movement advances the diagonal cadence and applies
// any deferred movement. Otherwise the move is validated against the map;
// a blocked move tries to slide (diagonal) or shuffle (axis aligned) and,
// failing both, only turns the player to face the attempted direction.
func (p *Player) HandleMovement(bits core.Direction) {
	if p.falling > 0 {
		return
	}
	m, ok := Decode(bits)
	if !ok {
		return
	}

	if p.moving && m == p.movement {
		p.ticks = (p.ticks + 1) % DiagonalTick
		if p.deferred != nil {
			d := *p.deferred
			p.wrapMovement(d.level, d.direction, d.dx, d.dy)
			return
		}
	} else {
		p.ticks = 0
		p.deferred = nil
	}
	p.movement = m
	p.moving = true

	candidate := p.base.Move(m.DX, m.DY)
	if valid, level := p.Gateway.IsMoveValid(p.Level, candidate); valid {
		if m.Diagonal && p.ticks == 0 {
			p.deferMovement(level, m.Direction, m.DX, m.DY)
		} else {
			p.wrapMovement(level, m.Direction, m.DX, m.DY)
		}
		return
	}

	var moved bool
	if m.Diagonal {
		moved = p.slide(m)
	} else {
		moved = p.shuffle(m, candidate)
	}
	if !moved && p.walk.Direction() != m.Direction {
		p.SetDirection(m.Direction)
	}
}

// slide keeps the horizontal, then the vertical, part of a blocked
// diagonal move.
func (p *Player) slide(m Movement) bool {
	if valid, level := p.Gateway.IsMoveValid(p.Level, p.base.Move(m.DX, 0)); valid {
		p.deferMovement(level, m.Direction, m.DX, 0)
		return true
	}
	if valid, level := p.Gateway.IsMoveValid(p.Level, p.base.Move(0, m.DY)); valid {
		p.deferMovement(level, m.Direction, 0, m.DY)
		return true
	}
	return false
}

// shuffle nudges a blocked axis-aligned move sideways by one unit when the
// map reports the nudged move is open, lining the player up with doorways
// and stairs.
func (p *Player) shuffle(m Movement, candidate core.Rect) bool {
	if m.DX == 0 {
		valid, level, sign := p.Gateway.IsVerticalValid(p.Level, candidate)
		if valid {
			p.deferMovement(level, m.Direction, sign*core.MoveUnit, m.DY)
		}
		return valid
	}
	valid, level, sign := p.Gateway.IsHorizontalValid(p.Level, candidate)
	if valid {
		p.deferMovement(level, m.Direction, m.DX, sign*core.MoveUnit)
	}
	return valid
}

// wrapMovement applies a movement, clears any deferred one and follows the
// player with the view.
func (p *Player) wrapMovement(level int, dir core.Direction, dx, dy int) {
	p.deferred = nil
	p.applyMovement(level, dir, dx, dy)
	p.updateViewRect()
}

// deferMovement runs on the spot this tick and keeps the real displacement
// for the next one.
func (p *Player) deferMovement(level int, dir core.Direction, dx, dy int) {
	p.deferred = &deferredMove{level: level, direction: dir, dx: dx, dy: dy}
	p.applyMovement(level, dir, 0, 0)
}

// applyMovement moves the player and advances its animation. Stepping onto
// the second or fourth frame of the walk cycle is a footstep.
func (p *Player) applyMovement(level int, dir core.Direction, dx, dy int) {
	p.Level = level
	p.Move(dx, dy)
	if p.falling > 0 {
		p.fall.Advance(1)
		p.image = p.fall.Current()
	} else {
		index, changed := p.walk.Advance(dir)
		p.image = p.walk.Current()
		if changed && (index == 1 || index == 3) {
			p.Publish(event.Footstep)
		}
	}
	p.updateMasks()
}

// SetDirection turns the player without moving.
func (p *Player) SetDirection(dir core.Direction) {
	p.applyMovement(p.Level, dir, 0, 0)
}

// BoundaryTransition returns the exit the player has walked through, if any.
// Leaving the map where no exit matches keeps the movement and returns nil.
func (p *Player) BoundaryTransition() *world.Transition {
	mapRect := p.Gateway.Rect()
	if mapRect.ContainsRect(p.rect) {
		return nil
	}
	b := core.ComputeBoundary(p.rect, mapRect)
	from, to := core.TileRangeForBoundary(p.base, b)
	for _, ev := range p.Gateway.BoundaryEvents(b) {
		if ev.Covers(from, to) {
			return ev.Transition
		}
	}
	p.Logger.Debug("no exit at boundary", "map", p.Gateway.Name(), "boundary", b, "from", from, "to", to)
	return nil
}
