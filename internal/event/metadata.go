package event

// Metadata describes the sprite an event originated from.
type Metadata interface {
	UID() string
}

// LevelAdder is the part of a map that door metadata edits.
type LevelAdder interface {
	AddLevel(tx, ty, level int)
}

// ItemMetadata identifies a collected coin or key.
type ItemMetadata struct {
	ID string
}

// UID returns the item's sprite id.
func (m ItemMetadata) UID() string { return m.ID }

// DoorMetadata identifies a door and where it stands.
type DoorMetadata struct {
	ID    string
	TileX int
	TileY int
	Level int
}

// UID returns the door's sprite id.
func (m DoorMetadata) UID() string { return m.ID }

// ApplyMapActions opens the doorway: the tile below the door becomes
// walkable at the door's level.
func (m DoorMetadata) ApplyMapActions(g LevelAdder) {
	g.AddLevel(m.TileX, m.TileY+1, m.Level)
}

// CheckpointMetadata records where a checkpoint was reached and the
// player's counters at that moment.
type CheckpointMetadata struct {
	ID    string
	Map   string
	TileX int
	TileY int
	Level int
	Coins int
	Keys  int
}

// UID returns the checkpoint's sprite id.
func (m CheckpointMetadata) UID() string { return m.ID }
