package sprite

import (
	"fmt"

	"github.com/vovakirdan/tui-adventure/internal/event"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// Progress tells the builder which sprites are gone for good and which
// doors have already been opened on a map.
type Progress interface {
	Removed(mapName, uid string) bool
	OpenedDoors(mapName string) []event.DoorMetadata
}

// New creates an entity of the named kind.
func New(kind Kind, patrol int) (*Entity, error) {
	switch kind {
	case KindCoin:
		return NewCoin(), nil
	case KindKey:
		return NewKey(), nil
	case KindDoor:
		return NewDoor(), nil
	case KindCheckpoint:
		return NewCheckpoint(), nil
	case KindFlames:
		return NewFlames(), nil
	case KindChest:
		return NewChest(), nil
	case KindRock:
		return NewRock(), nil
	case KindWasp:
		return NewWasp(patrol), nil
	case KindBeetle:
		return NewBeetle(patrol), nil
	default:
		return nil, fmt.Errorf("sprite: cannot place a %s", kind)
	}
}

// Build creates the sprites of a map. Doors already opened have their map
// actions replayed and, like collected items, are left out.
func Build(m *world.TileMap, bus *event.Bus, progress Progress) (*Group, error) {
	if progress != nil {
		for _, d := range progress.OpenedDoors(m.Name()) {
			d.ApplyMapActions(m)
		}
	}

	g := NewGroup()
	for _, spec := range m.Sprites() {
		if progress != nil && progress.Removed(m.Name(), spec.UID) {
			continue
		}
		kind, ok := ParseKind(spec.Type)
		if !ok {
			return nil, fmt.Errorf("sprite: map %s: unknown sprite type %q", m.Name(), spec.Type)
		}
		e, err := New(kind, spec.Patrol)
		if err != nil {
			return nil, err
		}
		e.Setup(spec.UID, m, bus)
		e.SetTilePosition(spec.Tile[0], spec.Tile[1], spec.Level)
		e.updateMasks()
		g.Add(e)
	}
	return g, nil
}
