package sprite

import (
	"sort"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// Group holds the sprites of a map. Removal is two-phase: sprites are
// flagged with ToRemove during a pass and dropped by Purge afterwards.
type Group struct {
	entities []*Entity
}

// NewGroup creates a group holding entities.
func NewGroup(entities ...*Entity) *Group {
	return &Group{entities: entities}
}

// Add appends entities to the group.
func (g *Group) Add(entities ...*Entity) {
	g.entities = append(g.entities, entities...)
}

// Len returns the number of entities, including ones flagged for removal.
func (g *Group) Len() int {
	return len(g.entities)
}

// Entities returns the live entities in insertion order.
func (g *Group) Entities() []*Entity {
	live := make([]*Entity, 0, len(g.entities))
	for _, e := range g.entities {
		if !e.ToRemove {
			live = append(live, e)
		}
	}
	return live
}

// Visible returns the live entities whose visual rect overlaps view.
func (g *Group) Visible(view core.Rect) []*Entity {
	visible := make([]*Entity, 0, len(g.entities))
	for _, e := range g.entities {
		if !e.ToRemove && e.rect.Intersects(view) {
			visible = append(visible, e)
		}
	}
	return visible
}

// Animate advances every live entity by increment ticks.
func (g *Group) Animate(increment int) {
	// Indexing keeps entities added during the pass out of it.
	n := len(g.entities)
	for i := 0; i < n; i++ {
		if e := g.entities[i]; !e.ToRemove {
			e.Animate(increment)
		}
	}
}

// Purge drops flagged entities and returns how many were removed.
func (g *Group) Purge() int {
	kept := g.entities[:0]
	for _, e := range g.entities {
		if !e.ToRemove {
			kept = append(kept, e)
		}
	}
	removed := len(g.entities) - len(kept)
	for i := len(kept); i < len(g.entities); i++ {
		g.entities[i] = nil
	}
	g.entities = kept
	return removed
}

// Find returns the entity with the given uid, or nil.
func (g *Group) Find(uid string) *Entity {
	for _, e := range g.entities {
		if e.UID == uid {
			return e
		}
	}
	return nil
}

// Draw renders live entities onto s in level order, lower levels first.
// extra entities, such as the player, are drawn alongside the group's.
func (g *Group) Draw(s *core.Screen, view core.Rect, extra ...*Entity) {
	visible := append(g.Visible(view), extra...)
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Level < visible[j].Level
	})
	for _, e := range visible {
		e.Draw(s, view)
	}
}
