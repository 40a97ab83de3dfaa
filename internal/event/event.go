// Package event carries gameplay occurrences from sprites and states to
// listeners such as the progress registry, the logger and the sound board.
package event

// Kind identifies the type of a gameplay event.
type Kind int

const (
	KindNone Kind = iota
	KindFootstep
	KindPlayerFalling
	KindLifeLost
	KindCoinCollected
	KindKeyCollected
	KindDoorOpening
	KindDoorOpened
	KindCheckpointReached
	KindMapTransition
	KindEndGame
	KindWaspZooming
	KindBeetleCrawling
)

var kindNames = [...]string{
	KindNone:              "none",
	KindFootstep:          "footstep",
	KindPlayerFalling:     "player-falling",
	KindLifeLost:          "life-lost",
	KindCoinCollected:     "coin-collected",
	KindKeyCollected:      "key-collected",
	KindDoorOpening:       "door-opening",
	KindDoorOpened:        "door-opened",
	KindCheckpointReached: "checkpoint-reached",
	KindMapTransition:     "map-transition",
	KindEndGame:           "end-game",
	KindWaspZooming:       "wasp-zooming",
	KindBeetleCrawling:    "beetle-crawling",
}

// String returns the event kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every publishable kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindFootstep; int(k) < len(kindNames); k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Event is a single gameplay occurrence. Metadata is nil for marker events.
type Event struct {
	Kind     Kind
	Metadata Metadata
}

// Marker events carry no payload and are shared.
var (
	Footstep       = Event{Kind: KindFootstep}
	PlayerFalling  = Event{Kind: KindPlayerFalling}
	LifeLost       = Event{Kind: KindLifeLost}
	MapTransition  = Event{Kind: KindMapTransition}
	EndGame        = Event{Kind: KindEndGame}
	WaspZooming    = Event{Kind: KindWaspZooming}
	BeetleCrawling = Event{Kind: KindBeetleCrawling}
)

// CoinCollected builds the event published when a coin is picked up.
func CoinCollected(uid string) Event {
	return Event{Kind: KindCoinCollected, Metadata: ItemMetadata{ID: uid}}
}

// KeyCollected builds the event published when a key is picked up.
func KeyCollected(uid string) Event {
	return Event{Kind: KindKeyCollected, Metadata: ItemMetadata{ID: uid}}
}

// DoorOpening builds the event published when a door starts to open.
func DoorOpening(d DoorMetadata) Event {
	return Event{Kind: KindDoorOpening, Metadata: d}
}

// DoorOpened builds the event published once the door animation finishes.
func DoorOpened(d DoorMetadata) Event {
	return Event{Kind: KindDoorOpened, Metadata: d}
}

// CheckpointReached builds the event published when a checkpoint is touched.
func CheckpointReached(c CheckpointMetadata) Event {
	return Event{Kind: KindCheckpointReached, Metadata: c}
}
