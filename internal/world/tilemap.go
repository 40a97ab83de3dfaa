package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// Tile is one grid square of a map.
type Tile struct {
	Glyph  rune
	Color  core.Color
	Levels mapset.Set[int] // levels a sprite may stand on
	Stairs bool            // links each held level to its neighbours
	Drop   int             // levels to fall when stood on
	Cover  bool            // drawn over sprites below its top level
}

// NewTile creates a tile holding the given levels.
func NewTile(glyph rune, color core.Color, levels ...int) *Tile {
	t := &Tile{Glyph: glyph, Color: color, Levels: mapset.New[int]()}
	for _, l := range levels {
		t.Levels.Put(l)
	}
	return t
}

// Holds reports whether the tile can be occupied at level.
func (t *Tile) Holds(level int) bool {
	return t.Levels.Has(level)
}

// Top returns the highest level the tile holds, or 0.
func (t *Tile) Top() int {
	top := 0
	t.Levels.Each(func(l int) {
		if l > top {
			top = l
		}
	})
	return top
}

func (t *Tile) clone() *Tile {
	c := *t
	c.Levels = mapset.New[int]()
	t.Levels.Each(c.Levels.Put)
	return &c
}

// TileMap is a grid of tiles with the events and sprites placed on it.
// It implements Gateway.
type TileMap struct {
	name       string
	title      string
	cols       int
	rows       int
	tiles      [][]*Tile
	events     []MapEvent
	boundaries map[core.Boundary][]BoundaryEvent
	sprites    []SpriteSpec
}

// NewTileMap creates an empty map. Every tile starts as an impassable blank.
func NewTileMap(name string, cols, rows int) *TileMap {
	m := &TileMap{
		name:       name,
		cols:       cols,
		rows:       rows,
		tiles:      make([][]*Tile, rows),
		boundaries: make(map[core.Boundary][]BoundaryEvent),
	}
	for y := range m.tiles {
		m.tiles[y] = make([]*Tile, cols)
		for x := range m.tiles[y] {
			m.tiles[y][x] = NewTile(' ', core.ColorDefault)
		}
	}
	return m
}

// Name implements Gateway.
func (m *TileMap) Name() string { return m.name }

// Title returns the display title of the map.
func (m *TileMap) Title() string { return m.title }

// Cols returns the map width in tiles.
func (m *TileMap) Cols() int { return m.cols }

// Rows returns the map height in tiles.
func (m *TileMap) Rows() int { return m.rows }

// Rect implements Gateway.
func (m *TileMap) Rect() core.Rect {
	return core.NewRect(0, 0, core.TileToPixel(m.cols), core.TileToPixel(m.rows))
}

// Sprites returns the sprites placed on the map.
func (m *TileMap) Sprites() []SpriteSpec {
	return m.sprites
}

// SetTile replaces the tile at (tx, ty) with a copy of t.
func (m *TileMap) SetTile(tx, ty int, t *Tile) {
	if !m.inBounds(tx, ty) {
		return
	}
	m.tiles[ty][tx] = t.clone()
}

// TileAt returns the tile at (tx, ty), or nil outside the map.
func (m *TileMap) TileAt(tx, ty int) *Tile {
	if !m.inBounds(tx, ty) {
		return nil
	}
	return m.tiles[ty][tx]
}

// AddEvent registers a map event.
func (m *TileMap) AddEvent(e MapEvent) {
	m.events = append(m.events, e)
}

// AddBoundaryEvent registers an exit along an edge.
func (m *TileMap) AddBoundaryEvent(e BoundaryEvent) {
	m.boundaries[e.Boundary] = append(m.boundaries[e.Boundary], e)
}

// AddSprite places a sprite on the map.
func (m *TileMap) AddSprite(s SpriteSpec) {
	m.sprites = append(m.sprites, s)
}

// BoundaryEvents implements Gateway.
func (m *TileMap) BoundaryEvents(b core.Boundary) []BoundaryEvent {
	return m.boundaries[b]
}

// AddLevel implements Gateway.
func (m *TileMap) AddLevel(tx, ty, level int) {
	if t := m.TileAt(tx, ty); t != nil {
		t.Levels.Put(level)
	}
}

// IsMoveValid implements Gateway. A rect is valid at level when every tile
// it spans holds that level. It moves to an adjacent level when every tile
// holds the adjacent one and a spanned staircase holds the current one.
func (m *TileMap) IsMoveValid(level int, rect core.Rect) (bool, int) {
	if m.holdsAll(level, rect) {
		return true, level
	}
	if !m.stairsUnder(level, rect) {
		return false, level
	}
	for _, next := range [...]int{level + 1, level - 1} {
		if m.holdsAll(next, rect) {
			return true, next
		}
	}
	return false, level
}

// IsHorizontalValid implements Gateway.
func (m *TileMap) IsHorizontalValid(level int, rect core.Rect) (bool, int, int) {
	return m.nudge(level, rect, 0, core.MoveUnit)
}

// IsVerticalValid implements Gateway.
func (m *TileMap) IsVerticalValid(level int, rect core.Rect) (bool, int, int) {
	return m.nudge(level, rect, core.MoveUnit, 0)
}

// nudge tries rect shifted one unit either way along (ux, uy). When both
// sides are open the side that stays open a unit further wins.
func (m *TileMap) nudge(level int, rect core.Rect, ux, uy int) (bool, int, int) {
	negValid, negLevel := m.IsMoveValid(level, rect.Move(-ux, -uy))
	posValid, posLevel := m.IsMoveValid(level, rect.Move(ux, uy))
	switch {
	case negValid && posValid:
		negFar, _ := m.IsMoveValid(level, rect.Move(-2*ux, -2*uy))
		posFar, _ := m.IsMoveValid(level, rect.Move(2*ux, 2*uy))
		if posFar && !negFar {
			return true, posLevel, 1
		}
		return true, negLevel, -1
	case negValid:
		return true, negLevel, -1
	case posValid:
		return true, posLevel, 1
	}
	return false, level, 0
}

// Actions implements Gateway. A map event wins over a drop.
func (m *TileMap) Actions(level int, rect core.Rect) (*Transition, int) {
	for _, e := range m.events {
		if (e.Level == 0 || e.Level == level) && e.Area.ContainsRect(rect) {
			return e.Transition, 0
		}
	}
	drop := 0
	ok := m.eachTile(rect, func(tx, ty int) bool {
		t := m.TileAt(tx, ty)
		if t == nil || t.Drop == 0 || !t.Holds(level) {
			return false
		}
		if drop == 0 || t.Drop < drop {
			drop = t.Drop
		}
		return true
	})
	if !ok {
		return nil, 0
	}
	return nil, drop
}

// Occludes reports whether any tile spanned by rect covers a sprite at level.
func (m *TileMap) Occludes(level int, rect core.Rect) bool {
	occluded := false
	m.eachTile(rect, func(tx, ty int) bool {
		if m.covers(tx, ty, level) {
			occluded = true
			return false
		}
		return true
	})
	return occluded
}

// Covers reports whether the pixel (px, py) is drawn over sprites at level.
func (m *TileMap) Covers(level, px, py int) bool {
	return m.covers(core.PixelToTile(px), core.PixelToTile(py), level)
}

func (m *TileMap) covers(tx, ty, level int) bool {
	t := m.TileAt(tx, ty)
	return t != nil && t.Cover && t.Top() > level
}

// Draw renders the part of the map inside view onto s, one cell per
// CellWidth x CellHeight pixels.
func (m *TileMap) Draw(s *core.Screen, view core.Rect) {
	for cy := 0; cy < s.Height(); cy++ {
		py := view.Y + cy*core.CellHeight
		for cx := 0; cx < s.Width(); cx++ {
			px := view.X + cx*core.CellWidth
			t := m.TileAt(core.PixelToTile(px), core.PixelToTile(py))
			if t == nil {
				s.Set(cx, cy, ' ', core.ColorDefault)
				continue
			}
			s.Set(cx, cy, t.Glyph, t.Color)
		}
	}
}

func (m *TileMap) inBounds(tx, ty int) bool {
	return tx >= 0 && tx < m.cols && ty >= 0 && ty < m.rows
}

// eachTile calls fn for every tile index rect spans until fn returns false.
func (m *TileMap) eachTile(rect core.Rect, fn func(tx, ty int) bool) bool {
	x0, x1 := core.PixelToTile(rect.X), core.PixelToTile(rect.Right()-1)
	y0, y1 := core.PixelToTile(rect.Y), core.PixelToTile(rect.Bottom()-1)
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if !fn(tx, ty) {
				return false
			}
		}
	}
	return true
}

func (m *TileMap) holdsAll(level int, rect core.Rect) bool {
	return m.eachTile(rect, func(tx, ty int) bool {
		if t := m.TileAt(tx, ty); t != nil {
			return t.Holds(level)
		}
		return m.isExit(tx, ty)
	})
}

func (m *TileMap) stairsUnder(level int, rect core.Rect) bool {
	return !m.eachTile(rect, func(tx, ty int) bool {
		t := m.TileAt(tx, ty)
		return t == nil || !t.Stairs || !t.Holds(level)
	})
}

// isExit reports whether an out-of-map tile lies on a configured exit.
func (m *TileMap) isExit(tx, ty int) bool {
	if tx < 0 && !m.exitCovers(core.BoundaryLeft, ty) {
		return false
	}
	if tx >= m.cols && !m.exitCovers(core.BoundaryRight, ty) {
		return false
	}
	if ty < 0 && !m.exitCovers(core.BoundaryUp, tx) {
		return false
	}
	if ty >= m.rows && !m.exitCovers(core.BoundaryDown, tx) {
		return false
	}
	return true
}

func (m *TileMap) exitCovers(b core.Boundary, index int) bool {
	for _, e := range m.boundaries[b] {
		if e.Covers(index, index) {
			return true
		}
	}
	return false
}
