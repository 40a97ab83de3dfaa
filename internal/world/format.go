package world

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// Definition is the YAML form of a map.
type Definition struct {
	Name       string                 `yaml:"name"`
	Title      string                 `yaml:"title"`
	Legend     map[string]LegendEntry `yaml:"legend"`
	Rows       []string               `yaml:"rows"`
	Events     []EventDef             `yaml:"events"`
	Boundaries []BoundaryDef          `yaml:"boundaries"`
	Sprites    []SpriteSpec           `yaml:"sprites"`
}

// LegendEntry describes the tile a row glyph stands for.
type LegendEntry struct {
	Levels []int  `yaml:"levels"`
	Stairs bool   `yaml:"stairs"`
	Drop   int    `yaml:"drop"`
	Cover  bool   `yaml:"cover"`
	Color  string `yaml:"color"`
	Glyph  string `yaml:"glyph"` // drawn instead of the row glyph when set
}

// TransitionDef is the YAML form of a Transition.
type TransitionDef struct {
	Kind      string `yaml:"kind"`
	Map       string `yaml:"map"`
	Tile      [2]int `yaml:"tile"`
	Level     int    `yaml:"level"`
	Direction string `yaml:"direction"`
	Modifier  int    `yaml:"modifier"`
}

// EventDef places a transition on an area of tiles.
// Level 0 matches any level; Size defaults to a single tile.
type EventDef struct {
	Tile       [2]int        `yaml:"tile"`
	Size       [2]int        `yaml:"size"`
	Level      int           `yaml:"level"`
	Transition TransitionDef `yaml:"transition"`
}

// BoundaryDef places an exit on a span of one map edge.
type BoundaryDef struct {
	Edge       string        `yaml:"edge"`
	Range      [2]int        `yaml:"range"`
	Transition TransitionDef `yaml:"transition"`
}

// SpriteSpec places a sprite on a map.
type SpriteSpec struct {
	Type   string `yaml:"type"`
	UID    string `yaml:"uid"`
	Tile   [2]int `yaml:"tile"`
	Level  int    `yaml:"level"`
	Patrol int    `yaml:"patrol"` // tiles covered by creatures before turning
}

// Parse decodes and validates a YAML map.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("world: unmarshal map: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the definition is self-consistent.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("world: map has no name")
	}
	if len(d.Rows) == 0 {
		return fmt.Errorf("world: map %s has no rows", d.Name)
	}
	for glyph := range d.Legend {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("world: map %s: legend key %q must be a single character", d.Name, glyph)
		}
	}
	width := utf8.RuneCountInString(d.Rows[0])
	for y, row := range d.Rows {
		if utf8.RuneCountInString(row) != width {
			return fmt.Errorf("world: map %s: row %d has width %d, expected %d",
				d.Name, y, utf8.RuneCountInString(row), width)
		}
		for _, r := range row {
			if _, ok := d.Legend[string(r)]; !ok {
				return fmt.Errorf("world: map %s: row %d uses glyph %q missing from legend", d.Name, y, r)
			}
		}
	}
	for i, e := range d.Events {
		if _, err := e.Transition.build(core.BoundaryNone); err != nil {
			return fmt.Errorf("world: map %s: event %d: %w", d.Name, i, err)
		}
	}
	for i, b := range d.Boundaries {
		edge, ok := core.ParseBoundary(b.Edge)
		if !ok || edge == core.BoundaryNone {
			return fmt.Errorf("world: map %s: boundary %d: unknown edge %q", d.Name, i, b.Edge)
		}
		if b.Range[0] > b.Range[1] {
			return fmt.Errorf("world: map %s: boundary %d: empty range %v", d.Name, i, b.Range)
		}
		if _, err := b.Transition.build(edge); err != nil {
			return fmt.Errorf("world: map %s: boundary %d: %w", d.Name, i, err)
		}
	}
	seen := make(map[string]bool, len(d.Sprites))
	for i, s := range d.Sprites {
		if s.UID == "" {
			return fmt.Errorf("world: map %s: sprite %d has no uid", d.Name, i)
		}
		if seen[s.UID] {
			return fmt.Errorf("world: map %s: duplicate sprite uid %q", d.Name, s.UID)
		}
		seen[s.UID] = true
	}
	return nil
}

// Build creates a fresh TileMap from the definition. Each call returns an
// independent map so level edits never leak into the cached definition.
func (d *Definition) Build() (*TileMap, error) {
	width := utf8.RuneCountInString(d.Rows[0])
	m := NewTileMap(d.Name, width, len(d.Rows))
	m.title = d.Title
	if m.title == "" {
		m.title = d.Name
	}

	tiles := make(map[rune]*Tile, len(d.Legend))
	for key, entry := range d.Legend {
		r, _ := utf8.DecodeRuneInString(key)
		t, err := entry.tile(r)
		if err != nil {
			return nil, fmt.Errorf("world: map %s: legend %q: %w", d.Name, key, err)
		}
		tiles[r] = t
	}
	for y, row := range d.Rows {
		x := 0
		for _, r := range row {
			m.SetTile(x, y, tiles[r])
			x++
		}
	}

	for _, e := range d.Events {
		t, err := e.Transition.build(core.BoundaryNone)
		if err != nil {
			return nil, err
		}
		w, h := e.Size[0], e.Size[1]
		if w == 0 {
			w = 1
		}
		if h == 0 {
			h = 1
		}
		m.AddEvent(MapEvent{
			Area: core.NewRect(core.TileToPixel(e.Tile[0]), core.TileToPixel(e.Tile[1]),
				core.TileToPixel(w), core.TileToPixel(h)),
			Level:      e.Level,
			Transition: t,
		})
	}
	for _, b := range d.Boundaries {
		edge, _ := core.ParseBoundary(b.Edge)
		t, err := b.Transition.build(edge)
		if err != nil {
			return nil, err
		}
		m.AddBoundaryEvent(BoundaryEvent{Boundary: edge, From: b.Range[0], To: b.Range[1], Transition: t})
	}
	for _, s := range d.Sprites {
		m.AddSprite(s)
	}
	return m, nil
}

func (e LegendEntry) tile(key rune) (*Tile, error) {
	glyph := key
	if e.Glyph != "" {
		glyph, _ = utf8.DecodeRuneInString(e.Glyph)
	}
	color := core.ColorDefault
	if e.Color != "" {
		c, ok := core.ParseColor(e.Color)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", e.Color)
		}
		color = c
	}
	t := NewTile(glyph, color, e.Levels...)
	t.Stairs = e.Stairs
	t.Drop = e.Drop
	t.Cover = e.Cover
	return t, nil
}

// build converts the definition. edge is the boundary the transition is
// attached to, or BoundaryNone for map events.
func (t TransitionDef) build(edge core.Boundary) (*Transition, error) {
	kind := TransitionScene
	if t.Kind != "" {
		k, ok := ParseTransitionKind(t.Kind)
		if !ok {
			return nil, fmt.Errorf("unknown transition kind %q", t.Kind)
		}
		kind = k
	}
	if kind == TransitionEndGame {
		return EndGameTransition(), nil
	}
	if t.Map == "" {
		return nil, fmt.Errorf("%s transition has no target map", kind)
	}
	if kind == TransitionBoundary && edge == core.BoundaryNone {
		return nil, fmt.Errorf("boundary transition outside a boundary")
	}

	dir := core.DirDown
	if edge != core.BoundaryNone {
		dir = edge.Direction()
	}
	if t.Direction != "" {
		d, ok := core.ParseDirection(t.Direction)
		if !ok {
			return nil, fmt.Errorf("unknown direction %q", t.Direction)
		}
		dir = d
	}
	return &Transition{
		Kind:      kind,
		Map:       t.Map,
		TileX:     t.Tile[0],
		TileY:     t.Tile[1],
		Level:     t.Level,
		Direction: dir,
		Boundary:  edge,
		Modifier:  t.Modifier,
	}, nil
}
