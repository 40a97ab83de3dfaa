package event

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestBusPublishOrder(t *testing.T) {
	bus := NewBus()
	var calls []string

	bus.Subscribe(KindCoinCollected, func(Event) { calls = append(calls, "first") })
	bus.Subscribe(KindCoinCollected, func(Event) { calls = append(calls, "second") })
	bus.Subscribe(KindKeyCollected, func(Event) { calls = append(calls, "key") })

	bus.Publish(CoinCollected("c1"))

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v, expected [first second]", calls)
	}
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	bus.Publish(Footstep)
	if bus.HandlerCount(KindFootstep) != 0 {
		t.Error("expected no handlers")
	}
}

type recordingListener struct {
	got []Event
}

func (r *recordingListener) Kinds() []Kind {
	return []Kind{KindDoorOpened, KindCheckpointReached}
}

func (r *recordingListener) HandleEvent(ev Event) {
	r.got = append(r.got, ev)
}

func TestBusRegister(t *testing.T) {
	bus := NewBus()
	l := &recordingListener{}
	bus.Register(l)

	bus.Publish(DoorOpened(DoorMetadata{ID: "d1", TileX: 3, TileY: 4, Level: 1}))
	bus.Publish(Footstep)
	bus.Publish(CheckpointReached(CheckpointMetadata{ID: "cp", Map: "central"}))

	if len(l.got) != 2 {
		t.Fatalf("listener received %d events, expected 2", len(l.got))
	}
	if l.got[0].Metadata.UID() != "d1" {
		t.Errorf("first event uid = %q, expected d1", l.got[0].Metadata.UID())
	}
	if l.got[1].Kind != KindCheckpointReached {
		t.Errorf("second event kind = %v", l.got[1].Kind)
	}
}

func TestMarkerEventsAreShared(t *testing.T) {
	if Footstep != (Event{Kind: KindFootstep}) {
		t.Error("Footstep marker should carry no metadata")
	}
	if LifeLost.Metadata != nil {
		t.Error("LifeLost marker should carry no metadata")
	}
}

type levelRecorder struct {
	tx, ty, level int
}

func (r *levelRecorder) AddLevel(tx, ty, level int) {
	r.tx, r.ty, r.level = tx, ty, level
}

func TestDoorMetadataApplyMapActions(t *testing.T) {
	rec := &levelRecorder{}
	DoorMetadata{ID: "d", TileX: 5, TileY: 2, Level: 1}.ApplyMapActions(rec)

	if rec.tx != 5 || rec.ty != 3 || rec.level != 1 {
		t.Errorf("AddLevel(%d, %d, %d), expected (5, 3, 1)", rec.tx, rec.ty, rec.level)
	}
}

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	bus := NewBus()
	bus.Register(NewLogListener(logger))
	bus.Publish(KeyCollected("k7"))

	out := buf.String()
	if !strings.Contains(out, "key-collected") || !strings.Contains(out, "k7") {
		t.Errorf("log output %q missing kind or uid", out)
	}
}

func TestKindString(t *testing.T) {
	if KindBeetleCrawling.String() != "beetle-crawling" {
		t.Errorf("String() = %q", KindBeetleCrawling.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("String() = %q", Kind(99).String())
	}
	if len(Kinds()) != 12 {
		t.Errorf("Kinds() has %d entries, expected 12", len(Kinds()))
	}
}
