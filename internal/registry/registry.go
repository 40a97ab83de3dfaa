// Package registry tracks the player's progress through the adventure:
// where the player is, what they carry and which sprites are gone from
// each map. A Handler keeps it up to date from the event bus and holds
// the checkpoint snapshot a lost life returns to.
package registry

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-adventure/internal/event"
)

// MapProgress records the sprites taken from one map.
type MapProgress struct {
	Removed mapset.Set[string]   // collected coins and keys, opened doors
	Doors   []event.DoorMetadata // opened doors, replayed on load
}

func newMapProgress() *MapProgress {
	return &MapProgress{Removed: mapset.New[string]()}
}

func (m *MapProgress) clone() *MapProgress {
	c := newMapProgress()
	m.Removed.Each(c.Removed.Put)
	c.Doors = append([]event.DoorMetadata(nil), m.Doors...)
	return c
}

// Registry is the progress of one game.
type Registry struct {
	Map        string
	TileX      int
	TileY      int
	Level      int
	Coins      int
	Keys       int
	Checkpoint bool // a checkpoint has been reached

	maps map[string]*MapProgress
}

// New creates the progress of a game starting on a map tile.
func New(mapName string, tx, ty, level int) *Registry {
	return &Registry{
		Map:   mapName,
		TileX: tx,
		TileY: ty,
		Level: level,
		maps:  make(map[string]*MapProgress),
	}
}

// Clone returns a deep copy.
func (r *Registry) Clone() *Registry {
	c := *r
	c.maps = make(map[string]*MapProgress, len(r.maps))
	for name, m := range r.maps {
		c.maps[name] = m.clone()
	}
	return &c
}

func (r *Registry) progress(mapName string) *MapProgress {
	m, ok := r.maps[mapName]
	if !ok {
		m = newMapProgress()
		r.maps[mapName] = m
	}
	return m
}

// Removed reports whether the sprite uid is gone from a map.
func (r *Registry) Removed(mapName, uid string) bool {
	m, ok := r.maps[mapName]
	return ok && m.Removed.Has(uid)
}

// OpenedDoors returns the doors opened on a map.
func (r *Registry) OpenedDoors(mapName string) []event.DoorMetadata {
	if m, ok := r.maps[mapName]; ok {
		return m.Doors
	}
	return nil
}

// MarkRemoved records that sprite uid is gone from a map.
func (r *Registry) MarkRemoved(mapName, uid string) {
	r.progress(mapName).Removed.Put(uid)
}

// OpenDoor records an opened door. The door itself is removed.
func (r *Registry) OpenDoor(mapName string, d event.DoorMetadata) {
	m := r.progress(mapName)
	if m.Removed.Has(d.ID) {
		return
	}
	m.Removed.Put(d.ID)
	m.Doors = append(m.Doors, d)
}

// RemovedUIDs returns the sprites gone from a map, doors included, sorted.
func (r *Registry) RemovedUIDs(mapName string) []string {
	m, ok := r.maps[mapName]
	if !ok {
		return nil
	}
	uids := make([]string, 0, m.Removed.Size())
	m.Removed.Each(func(uid string) { uids = append(uids, uid) })
	sort.Strings(uids)
	return uids
}

// Maps returns the names of maps with recorded progress, sorted.
func (r *Registry) Maps() []string {
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
