// Package sprite implements the player, the map sprites and the movement
// resolver that moves the player across a world.Gateway.
package sprite

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/event"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// BaseRectHeight is the height of every base rect in pixels.
const BaseRectHeight = 4

// Kind identifies a type of sprite.
type Kind int

const (
	KindPlayer Kind = iota
	KindCoin
	KindKey
	KindDoor
	KindCheckpoint
	KindShadow
	KindFlames
	KindChest
	KindRock
	KindWasp
	KindBeetle
)

// geometry describes the size and placement of a kind.
type geometry struct {
	w, h       int // visual size in pixels
	offX, offY int // offset from the tile's top-left corner
	baseW      int // base rect width, centred under the sprite
	baseExtend int // how far the base rect reaches below the visual rect
}

var kinds = map[Kind]struct {
	name string
	geom geometry
}{
	KindPlayer:     {"player", geometry{12, 16, 2, -4, 8, 2}},
	KindCoin:       {"coin", geometry{8, 8, 4, 4, 8, 0}},
	KindKey:        {"key", geometry{8, 8, 4, 4, 8, 0}},
	KindDoor:       {"door", geometry{16, 32, 0, 0, 8, 2}},
	KindCheckpoint: {"checkpoint", geometry{10, 10, 3, 3, 8, 0}},
	KindShadow:     {"shadow", geometry{12, 4, 2, 12, 8, 0}},
	KindFlames:     {"flames", geometry{8, 12, 4, 2, 8, 0}},
	KindChest:      {"chest", geometry{16, 16, 0, 0, 8, 0}},
	KindRock:       {"rock", geometry{16, 16, 0, -4, 8, 0}},
	KindWasp:       {"wasp", geometry{12, 8, 2, 4, 10, 0}},
	KindBeetle:     {"beetle", geometry{12, 8, 2, 4, 10, 0}},
}

// String returns the kind name used in map files.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return "unknown"
}

// ParseKind converts a map file sprite type.
func ParseKind(s string) (Kind, bool) {
	for k, info := range kinds {
		if info.name == s && k != KindPlayer {
			return k, true
		}
	}
	return 0, false
}

// Collider reacts to the player's base rect overlapping the entity.
// It returns true when the player lost a life.
type Collider interface {
	Collide(e *Entity, p *Player) bool
}

// Actor reacts to the player pressing the action button next to the entity.
type Actor interface {
	Act(e *Entity, p *Player)
}

// Animator replaces the default frame cycling of an entity.
type Animator interface {
	Animate(e *Entity, increment int)
}

// Entity is a sprite on a map. Behaviour is attached through the optional
// Collider, Actor and Animator handles; a nil handle does nothing.
type Entity struct {
	UID      string
	Kind     Kind
	Level    int
	TileX    int
	TileY    int
	ToRemove bool
	Masked   bool // partly hidden behind scenery

	Gateway world.Gateway
	Bus     *event.Bus

	Collider  Collider
	Actor     Actor
	Animator  Animator
	Animation *Animation

	geom  geometry
	rect  core.Rect
	base  core.Rect
	image Frame
}

// NewEntity creates an unplaced entity of the given kind.
func NewEntity(kind Kind, anim *Animation) *Entity {
	e := &Entity{Kind: kind, Animation: anim}
	e.init(kind)
	return e
}

func (e *Entity) init(kind Kind) {
	e.Kind = kind
	e.geom = kinds[kind].geom
	e.rect = core.NewRect(0, 0, e.geom.w, e.geom.h)
	if e.Animation != nil {
		e.image = e.Animation.Current()
	}
	e.updateBaseRect()
}

// Setup binds the entity to its map and event bus.
func (e *Entity) Setup(uid string, gw world.Gateway, bus *event.Bus) {
	e.UID = uid
	e.Gateway = gw
	e.Bus = bus
}

// SetPixelPosition places the visual rect's top-left corner at (x, y).
func (e *Entity) SetPixelPosition(x, y, level int) {
	e.rect.X = x
	e.rect.Y = y
	e.Level = level
	e.updateBaseRect()
}

// SetTilePosition places the entity on a tile using its kind's offset.
func (e *Entity) SetTilePosition(tx, ty, level int) {
	e.TileX = tx
	e.TileY = ty
	e.SetPixelPosition(core.TileToPixel(tx)+e.geom.offX, core.TileToPixel(ty)+e.geom.offY, level)
}

// Move shifts the entity by (dx, dy) pixels.
func (e *Entity) Move(dx, dy int) {
	e.rect = e.rect.Move(dx, dy)
	e.updateBaseRect()
}

func (e *Entity) updateBaseRect() {
	e.base = core.NewRect(
		e.rect.X+(e.rect.W-e.geom.baseW)/2,
		e.rect.Bottom()+e.geom.baseExtend-BaseRectHeight,
		e.geom.baseW,
		BaseRectHeight,
	)
}

// Rect returns the visual rect in map pixels.
func (e *Entity) Rect() core.Rect { return e.rect }

// BaseRect returns the collision rect in map pixels.
func (e *Entity) BaseRect() core.Rect { return e.base }

// Image returns the frame currently shown.
func (e *Entity) Image() Frame { return e.image }

// SetImage replaces the frame currently shown.
func (e *Entity) SetImage(f Frame) { e.image = f }

// IsIntersecting reports whether the base rects of e and other overlap.
func (e *Entity) IsIntersecting(other *Entity) bool {
	return e.base.Intersects(other.base)
}

// ProcessCollision runs the collision behaviour, if any.
func (e *Entity) ProcessCollision(p *Player) bool {
	if e.Collider == nil {
		return false
	}
	return e.Collider.Collide(e, p)
}

// ProcessAction runs the action behaviour, if any.
func (e *Entity) ProcessAction(p *Player) {
	if e.Actor != nil {
		e.Actor.Act(e, p)
	}
}

// Animate advances the entity's animation by increment ticks.
func (e *Entity) Animate(increment int) {
	if e.Animator != nil {
		e.Animator.Animate(e, increment)
		return
	}
	if e.Animation == nil {
		return
	}
	e.Animation.Advance(increment)
	e.image = e.Animation.Current()
}

// Publish sends ev on the entity's bus, if bound.
func (e *Entity) Publish(ev event.Event) {
	if e.Bus != nil {
		e.Bus.Publish(ev)
	}
}

// Draw renders the entity onto s, where s shows the map area view.
// Cells covered by scenery in front of the entity are skipped.
func (e *Entity) Draw(s *core.Screen, view core.Rect) {
	cells := core.SnapToCells(e.rect.Move(-view.X, -view.Y))
	occluder, _ := e.Gateway.(world.Occluder)

	for row, line := range e.image.Rows {
		col := 0
		for _, r := range line {
			cx, cy := cells.X+col, cells.Y+row
			col++
			if r == ' ' {
				continue
			}
			if e.Masked && occluder != nil &&
				occluder.Covers(e.Level, view.X+cx*core.CellWidth, view.Y+cy*core.CellHeight) {
				continue
			}
			s.Set(cx, cy, r, e.image.Color)
		}
	}
}

// updateMasks records whether scenery hides part of the entity.
func (e *Entity) updateMasks() {
	if o, ok := e.Gateway.(world.Occluder); ok {
		e.Masked = o.Occludes(e.Level, e.rect)
		return
	}
	e.Masked = false
}
