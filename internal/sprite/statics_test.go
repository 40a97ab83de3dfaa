package sprite

import (
	"testing"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/event"
)

func TestCoinCollectedOnce(t *testing.T) {
	bus := event.NewBus()
	rec := newRecorder(bus)
	gw := openGateway()
	p := newTestPlayer(gw, bus)

	coin := NewCoin()
	coin.Setup("coin-1", gw, bus)
	placeOnPlayer(coin, p)
	sprites := []*Entity{&p.Entity, coin}

	if p.ProcessCollisions(sprites) {
		t.Fatal("collecting a coin should not cost a life")
	}
	if p.ProcessCollisions(sprites) {
		t.Fatal("collecting a coin should not cost a life")
	}

	if len(rec.events) != 1 {
		t.Fatalf("published %d events, expected 1", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Kind != event.KindCoinCollected || ev.Metadata.UID() != "coin-1" {
		t.Errorf("event = %v %v, expected coin-1 collected", ev.Kind, ev.Metadata)
	}
	if p.Coins() != 1 {
		t.Errorf("Coins() = %d, expected 1", p.Coins())
	}
	if !coin.ToRemove {
		t.Error("collected coin should be flagged for removal")
	}
}

func TestKeyCollected(t *testing.T) {
	bus := event.NewBus()
	rec := newRecorder(bus)
	gw := openGateway()
	p := newTestPlayer(gw, bus)

	key := NewKey()
	key.Setup("key-1", gw, bus)
	placeOnPlayer(key, p)
	p.ProcessCollisions([]*Entity{key})

	if p.Keys() != 1 || rec.count(event.KindKeyCollected) != 1 || !key.ToRemove {
		t.Errorf("keys = %d, events = %d, removed = %v", p.Keys(), rec.count(event.KindKeyCollected), key.ToRemove)
	}
}

func TestNoCollisionWhenApart(t *testing.T) {
	bus := event.NewBus()
	rec := newRecorder(bus)
	gw := openGateway()
	p := newTestPlayer(gw, bus)

	coin := NewCoin()
	coin.Setup("coin-1", gw, bus)
	coin.SetTilePosition(9, 9, 1)
	p.ProcessCollisions([]*Entity{coin})

	if len(rec.events) != 0 || coin.ToRemove {
		t.Error("a distant coin should not be collected")
	}
}

func TestDoorOpening(t *testing.T) {
	bus := event.NewBus()
	rec := newRecorder(bus)
	gw := openGateway()
	p := newTestPlayer(gw, bus)

	door := NewDoor()
	door.Setup("door-1", gw, bus)
	door.SetTilePosition(5, 3, 1)
	placeOnPlayer(door, p)
	door.TileX, door.TileY = 5, 3

	p.ProcessActions([]*Entity{door})
	if rec.count(event.KindDoorOpening) != 0 {
		t.Fatal("a door should not open without a key")
	}

	p.IncrementKeys()
	p.ProcessActions([]*Entity{door})
	p.ProcessActions([]*Entity{door})
	if rec.count(event.KindDoorOpening) != 1 {
		t.Fatalf("door opening events = %d, expected 1", rec.count(event.KindDoorOpening))
	}
	if p.Keys() != 0 {
		t.Errorf("Keys() = %d, expected the key used up", p.Keys())
	}

	frames := door.Animation.Len() * door.Animation.Skip()
	for i := 0; i < frames-1; i++ {
		door.Animate(1)
	}
	if door.ToRemove {
		t.Fatal("door removed before the animation finished")
	}
	door.Animate(1)

	if !door.ToRemove {
		t.Fatal("door should be removed once open")
	}
	if rec.count(event.KindDoorOpened) != 1 {
		t.Errorf("door opened events = %d, expected 1", rec.count(event.KindDoorOpened))
	}
	if len(gw.added) != 1 || gw.added[0] != [3]int{5, 4, 1} {
		t.Errorf("map actions = %v, expected the doorway opened at 5,4", gw.added)
	}
}

func TestCheckpointReached(t *testing.T) {
	bus := event.NewBus()
	var meta event.CheckpointMetadata
	bus.Subscribe(event.KindCheckpointReached, func(ev event.Event) {
		meta = ev.Metadata.(event.CheckpointMetadata)
	})
	gw := openGateway()
	gw.name = "house"
	p := newTestPlayer(gw, bus)
	p.SetCoins(3)
	p.SetKeys(1)

	cp := NewCheckpoint()
	cp.Setup("cp-1", gw, bus)
	cp.SetTilePosition(3, 7, 1)
	placeOnPlayer(cp, p)
	p.ProcessCollisions([]*Entity{cp})

	want := event.CheckpointMetadata{ID: "cp-1", Map: "house", TileX: 3, TileY: 7, Level: 1, Coins: 3, Keys: 1}
	if meta != want {
		t.Errorf("checkpoint metadata = %+v, expected %+v", meta, want)
	}
	if !p.HasCheckpoint() || !cp.ToRemove {
		t.Error("checkpoint should light the indicator and disappear")
	}
}

func TestCreatureCostsLife(t *testing.T) {
	bus := event.NewBus()
	rec := newRecorder(bus)
	gw := openGateway()
	p := newTestPlayer(gw, bus)

	wasp := NewWasp(2)
	wasp.Setup("wasp-1", gw, bus)
	placeOnPlayer(wasp, p)
	coin := NewCoin()
	coin.Setup("coin-1", gw, bus)
	placeOnPlayer(coin, p)

	if !p.ProcessCollisions([]*Entity{wasp, coin}) {
		t.Fatal("touching a wasp should cost a life")
	}
	if p.Lives() != 1 {
		t.Errorf("Lives() = %d, expected 1", p.Lives())
	}
	if rec.count(event.KindCoinCollected) != 0 {
		t.Error("collisions should stop at the first lost life")
	}
}

func TestCreaturePatrol(t *testing.T) {
	bus := event.NewBus()
	rec := newRecorder(bus)
	gw := openGateway()

	wasp := NewWasp(1)
	wasp.Setup("wasp-1", gw, bus)
	wasp.SetTilePosition(5, 5, 1)
	x := wasp.Rect().X

	for i := 0; i < core.TileSize; i++ {
		wasp.Animate(1)
	}
	if wasp.Rect().X-x != core.TileSize {
		t.Fatalf("wasp moved %d pixels, expected %d", wasp.Rect().X-x, core.TileSize)
	}
	wasp.Animate(1)
	if rec.count(event.KindWaspZooming) != 1 {
		t.Fatal("wasp should turn at the end of its patrol")
	}
	wasp.Animate(1)
	if wasp.Rect().X-x != core.TileSize-1 {
		t.Errorf("wasp at %d after turning, expected it heading back", wasp.Rect().X-x)
	}
}

func TestBeetleTurnsWhenBlocked(t *testing.T) {
	bus := event.NewBus()
	rec := newRecorder(bus)
	gw := openGateway()
	gw.valid = func(level int, r core.Rect) bool { return false }

	beetle := NewBeetle(4)
	beetle.Setup("beetle-1", gw, bus)
	beetle.SetTilePosition(5, 5, 1)
	y := beetle.Rect().Y
	beetle.Animate(1)

	if beetle.Rect().Y != y {
		t.Error("a blocked beetle should not move")
	}
	if rec.count(event.KindBeetleCrawling) != 1 {
		t.Error("a blocked beetle should turn")
	}
}
