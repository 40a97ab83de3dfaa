package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/event"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

const meadowYAML = `name: meadow
legend:
  ".": {levels: [1], color: green}
  "#": {color: gray}
rows:
  - "##########"
  - "#........#"
  - "#........#"
  - "#........#"
  - "#........#"
  - "#........#"
  - "#........#"
  - "##########"
events:
  - tile: [6, 2]
    level: 1
    transition: {kind: scene, map: meadow, tile: [2, 5], level: 1}
sprites:
  - {type: wasp, uid: meadow-wasp-1, tile: [6, 4], level: 1}
  - {type: wasp, uid: meadow-wasp-2, tile: [6, 2], level: 1}
`

// meadowDeps starts the game on a small walled map with two wasps, one of
// them sitting on a map event.
func meadowDeps(t *testing.T) Deps {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "meadow.yaml"), []byte(meadowYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	deps := testDeps(t)
	deps.Loader = world.NewLoader(dir, nil)
	deps.Config.Start.Map = "meadow"
	deps.Config.Start.X = 2
	deps.Config.Start.Y = 4
	deps.Config.Start.Level = 1
	return deps
}

func directionFrame(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestPlayOpensDoorAndEntersHouse(t *testing.T) {
	deps := testDeps(t)
	m, s := newTestMachine(t, deps)
	s.Player.SetKeys(1)
	s.Player.Place(19, 5, 1)

	// Walk up to the locked door until the wall stops the player.
	up := directionFrame(core.ActionUp)
	tickN(m, 8, up)
	if m.Current().Name() != "play" {
		t.Fatalf("state = %s in front of a locked door", m.Current().Name())
	}
	if s.Map.TileAt(19, 4).Holds(1) {
		t.Fatal("doorway is open before the door")
	}

	m.Tick(useFrame())
	if s.Player.Keys() != 0 {
		t.Errorf("keys = %d after using the door, want 0", s.Player.Keys())
	}
	tickN(m, 30, core.NewInputFrame())
	if !s.Map.TileAt(19, 4).Holds(1) {
		t.Fatal("doorway still closed after the door opened")
	}

	for i := 0; i < 10 && m.Current().Name() == "play"; i++ {
		m.Tick(up)
	}
	if m.Current().Name() != "scene-transition" {
		t.Fatalf("state = %s, want scene-transition", m.Current().Name())
	}

	idle := core.NewInputFrame()
	tickN(m, swapTick, idle)
	if s.Map.Name() != "central" {
		t.Fatalf("map swapped early to %q", s.Map.Name())
	}
	m.Tick(idle)
	if s.Map.Name() != "house" {
		t.Fatalf("map = %q after the midpoint, want house", s.Map.Name())
	}
	if s.Player.TileX != 6 || s.Player.TileY != 8 || s.Player.Level != 1 {
		t.Errorf("player on tile (%d,%d) level %d, want (6,8) level 1",
			s.Player.TileX, s.Player.TileY, s.Player.Level)
	}

	tickN(m, zoomTicks-swapTick, idle)
	if m.Current().Name() != "show-player" {
		t.Errorf("state = %s, want show-player", m.Current().Name())
	}
}

func TestPlayCollisionCostsLife(t *testing.T) {
	deps := meadowDeps(t)
	m, s := newTestMachine(t, deps)
	s.Player.SetCoins(3)
	s.Player.SetKeys(1)
	s.Player.Place(6, 4, 1)

	m.Tick(core.NewInputFrame())

	if m.Current().Name() != "scene-transition" {
		t.Fatalf("state = %s, want scene-transition", m.Current().Name())
	}
	if s.Player.Lives() != deps.Config.Player.Lives-1 {
		t.Errorf("lives = %d, want %d", s.Player.Lives(), deps.Config.Player.Lives-1)
	}
	if s.Player.Coins() != 0 || s.Player.Keys() != 0 {
		t.Errorf("coins %d keys %d, want both rolled back to 0", s.Player.Coins(), s.Player.Keys())
	}

	tickN(m, zoomTicks+1, core.NewInputFrame())
	if m.Current().Name() != "play" {
		t.Fatalf("state = %s, want play", m.Current().Name())
	}
	if s.Player.TileX != 2 || s.Player.TileY != 4 {
		t.Errorf("player on tile (%d,%d), want the start (2,4)", s.Player.TileX, s.Player.TileY)
	}
}

func TestPlayCollisionRollsBackToCheckpoint(t *testing.T) {
	deps := meadowDeps(t)
	m, s := newTestMachine(t, deps)
	s.Bus.Publish(event.CheckpointReached(event.CheckpointMetadata{
		ID: "meadow-checkpoint-1", Map: "meadow", TileX: 3, TileY: 6, Level: 1, Coins: 1,
	}))
	s.Player.SetCoins(4)
	s.Player.Place(6, 4, 1)

	m.Tick(core.NewInputFrame())
	if s.Player.Coins() != 1 {
		t.Errorf("coins = %d, want the checkpoint's 1", s.Player.Coins())
	}

	tickN(m, zoomTicks+1, core.NewInputFrame())
	if s.Player.TileX != 3 || s.Player.TileY != 6 {
		t.Errorf("player on tile (%d,%d), want the checkpoint (3,6)", s.Player.TileX, s.Player.TileY)
	}
}

func TestPlayCollisionWithoutLivesIsGameOver(t *testing.T) {
	deps := meadowDeps(t)
	deps.Config.Player.Lives = 0
	m, s := newTestMachine(t, deps)
	s.Player.Place(6, 4, 1)

	m.Tick(core.NewInputFrame())
	if m.Current().Name() != "game-over" {
		t.Errorf("state = %s, want game-over", m.Current().Name())
	}
}

func TestPlayCheckOrder(t *testing.T) {
	t.Run("map event before collision", func(t *testing.T) {
		deps := meadowDeps(t)
		m, s := newTestMachine(t, deps)
		s.Player.Place(6, 2, 1)

		m.Tick(core.NewInputFrame())
		if m.Current().Name() != "scene-transition" {
			t.Fatalf("state = %s, want scene-transition", m.Current().Name())
		}
		if s.Player.Lives() != deps.Config.Player.Lives {
			t.Errorf("lives = %d, the wasp on the event tile should not be reached", s.Player.Lives())
		}
	})

	t.Run("collision before movement", func(t *testing.T) {
		deps := meadowDeps(t)
		m, s := newTestMachine(t, deps)
		s.Player.Place(6, 4, 1)
		before := s.Player.Rect()

		m.Tick(directionFrame(core.ActionLeft))
		if s.Player.Lives() != deps.Config.Player.Lives-1 {
			t.Fatalf("lives = %d, want a life lost", s.Player.Lives())
		}
		if s.Player.Rect() != before {
			t.Errorf("player moved to %+v on the tick it lost a life", s.Player.Rect())
		}
	})

	t.Run("movement without transitions", func(t *testing.T) {
		deps := meadowDeps(t)
		m, s := newTestMachine(t, deps)
		before := s.Player.Rect()

		m.Tick(directionFrame(core.ActionLeft))
		if m.Current().Name() != "play" {
			t.Fatalf("state = %s, want play", m.Current().Name())
		}
		if got := s.Player.Rect().X; got != before.X-core.MoveUnit {
			t.Errorf("player x = %d, want %d", got, before.X-core.MoveUnit)
		}
	})
}
