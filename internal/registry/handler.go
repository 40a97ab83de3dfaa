package registry

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-adventure/internal/event"
)

// Handler applies gameplay events to a Registry. It listens for collected
// items, opened doors and checkpoints.
type Handler struct {
	Logger *log.Logger

	registry     *Registry
	snapshot     *Registry
	mapName      string
	onCheckpoint func(*Registry)
}

// NewHandler creates a handler for r. Until a checkpoint is reached the
// snapshot is the starting progress.
func NewHandler(r *Registry) *Handler {
	return &Handler{
		Logger:   log.New(io.Discard),
		registry: r,
		snapshot: r.Clone(),
		mapName:  r.Map,
	}
}

// Resume creates a handler continuing from a saved snapshot.
func Resume(snapshot *Registry) *Handler {
	h := NewHandler(snapshot.Clone())
	h.snapshot = snapshot.Clone()
	return h
}

// Registry returns the live progress.
func (h *Handler) Registry() *Registry { return h.registry }

// Snapshot returns the progress saved at the last checkpoint.
func (h *Handler) Snapshot() *Registry { return h.snapshot }

// EnterMap sets the map that item events refer to.
func (h *Handler) EnterMap(name string) {
	h.mapName = name
}

// OnCheckpoint sets fn to receive a copy of each new snapshot, replacing
// any previous function.
func (h *Handler) OnCheckpoint(fn func(*Registry)) {
	h.onCheckpoint = fn
}

// SwitchToSnapshot discards progress made since the last checkpoint.
func (h *Handler) SwitchToSnapshot() {
	h.registry = h.snapshot.Clone()
	h.mapName = h.registry.Map
}

// Kinds implements event.Listener.
func (h *Handler) Kinds() []event.Kind {
	return []event.Kind{
		event.KindCoinCollected,
		event.KindKeyCollected,
		event.KindDoorOpened,
		event.KindCheckpointReached,
	}
}

// HandleEvent implements event.Listener.
func (h *Handler) HandleEvent(ev event.Event) {
	r := h.registry
	switch ev.Kind {
	case event.KindCoinCollected:
		r.Coins++
		r.MarkRemoved(h.mapName, ev.Metadata.UID())
	case event.KindKeyCollected:
		r.Keys++
		r.MarkRemoved(h.mapName, ev.Metadata.UID())
	case event.KindDoorOpened:
		d, ok := ev.Metadata.(event.DoorMetadata)
		if !ok {
			return
		}
		r.Keys--
		r.OpenDoor(h.mapName, d)
	case event.KindCheckpointReached:
		cp, ok := ev.Metadata.(event.CheckpointMetadata)
		if !ok {
			return
		}
		h.checkpoint(cp)
	}
}

func (h *Handler) checkpoint(cp event.CheckpointMetadata) {
	r := h.registry
	r.Map = cp.Map
	r.TileX = cp.TileX
	r.TileY = cp.TileY
	r.Level = cp.Level
	r.Coins = cp.Coins
	r.Keys = cp.Keys
	r.Checkpoint = true
	r.MarkRemoved(cp.Map, cp.ID)

	h.snapshot = r.Clone()
	h.Logger.Debug("checkpoint reached", "map", cp.Map, "x", cp.TileX, "y", cp.TileY, "coins", cp.Coins)
	if h.onCheckpoint != nil {
		h.onCheckpoint(h.snapshot.Clone())
	}
}
