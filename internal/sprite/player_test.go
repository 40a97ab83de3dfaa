package sprite

import (
	"testing"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/event"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

func TestFalling(t *testing.T) {
	gw := openGateway()
	bus := event.NewBus()
	rec := newRecorder(bus)
	p := newTestPlayer(gw, bus)
	p.Place(5, 5, 3)
	sprites := NewGroup()

	gw.downLevel = 2
	if tr := p.Update(sprites); tr != nil {
		t.Fatalf("Update() = %+v, expected no transition", tr)
	}
	if p.Falling() != 2*core.TileSize {
		t.Fatalf("Falling() = %d, expected %d", p.Falling(), 2*core.TileSize)
	}
	if rec.count(event.KindPlayerFalling) != 1 {
		t.Error("expected one falling event")
	}
	shadow := p.Shadow()
	if shadow == nil || sprites.Find("shadow") != shadow {
		t.Fatal("falling should add a shadow to the sprites")
	}
	if shadow.Level != 1 {
		t.Errorf("shadow level = %d, expected 1", shadow.Level)
	}

	_, y := position(p)
	wantLevels := []int{2, 2, 2, 2, 1, 1, 1, 1}
	last := p.Falling()
	for i, want := range wantLevels {
		p.HandleMovement(core.DirLeft)
		p.Update(sprites)
		if p.Falling() != last-FallUnit {
			t.Fatalf("tick %d: Falling() = %d, expected %d", i+1, p.Falling(), last-FallUnit)
		}
		last = p.Falling()
		if p.Level != want {
			t.Errorf("tick %d: level = %d, expected %d", i+1, p.Level, want)
		}
	}

	if p.Falling() != 0 {
		t.Fatalf("Falling() = %d after landing", p.Falling())
	}
	if _, ny := position(p); ny-y != 2*core.TileSize {
		t.Errorf("fell %d pixels, expected %d", ny-y, 2*core.TileSize)
	}
	if !shadow.ToRemove {
		t.Error("landing should flag the shadow for removal")
	}
	if shadow.Rect().Bottom() != p.Rect().Bottom() {
		t.Errorf("shadow bottom = %d, player landed at %d", shadow.Rect().Bottom(), p.Rect().Bottom())
	}
	if gw.actions != 1 {
		t.Errorf("map actions checked %d times, expected only before the fall", gw.actions)
	}
	if p.Direction() != core.DirDown {
		t.Error("input while falling should be ignored")
	}
}

func TestUpdateReturnsMapTransition(t *testing.T) {
	gw := openGateway()
	gw.transition = &world.Transition{Kind: world.TransitionScene, Map: "house"}
	p := newTestPlayer(gw, event.NewBus())

	if tr := p.Update(NewGroup()); tr != gw.transition {
		t.Errorf("Update() = %+v, expected the map transition", tr)
	}
}

func TestHide(t *testing.T) {
	tests := []struct {
		boundary core.Boundary
		check    func(r, m core.Rect) bool
	}{
		{core.BoundaryUp, func(r, m core.Rect) bool { return r.Y == m.Bottom() }},
		{core.BoundaryDown, func(r, m core.Rect) bool { return r.Bottom() == m.Y }},
		{core.BoundaryLeft, func(r, m core.Rect) bool { return r.X == m.Right() }},
		{core.BoundaryRight, func(r, m core.Rect) bool { return r.Right() == m.X }},
	}

	for _, tt := range tests {
		t.Run(tt.boundary.String(), func(t *testing.T) {
			gw := openGateway()
			p := newTestPlayer(gw, event.NewBus())
			p.Hide(tt.boundary, 0)
			if !tt.check(p.Rect(), gw.Rect()) {
				t.Errorf("Hide(%v) placed the player at %+v", tt.boundary, p.Rect())
			}
		})
	}
}

func TestHideModifier(t *testing.T) {
	p := newTestPlayer(openGateway(), event.NewBus())
	x, _ := position(p)
	p.Hide(core.BoundaryUp, 2)
	if nx, _ := position(p); nx-x != 2*core.TileSize {
		t.Errorf("modifier shifted x by %d, expected %d", nx-x, 2*core.TileSize)
	}
}

func TestViewFollowsPlayer(t *testing.T) {
	gw := openGateway()
	p := newTestPlayer(gw, event.NewBus())

	p.Place(0, 0, 1)
	if v := p.View(); v.X != 0 || v.Y != 0 {
		t.Errorf("view at the map corner = %+v, expected origin", v)
	}

	p.Place(19, 19, 1)
	v := p.View()
	if v.Right() != gw.rect.Right() || v.Bottom() != gw.rect.Bottom() {
		t.Errorf("view at the far corner = %+v, expected clamped to the map", v)
	}

	p.Place(10, 10, 1)
	v = p.View()
	if v.X%core.CellWidth != 0 || v.Y%core.CellHeight != 0 {
		t.Errorf("view %+v is not cell aligned", v)
	}
	if !v.ContainsRect(p.Rect()) {
		t.Errorf("view %+v does not show the player at %+v", v, p.Rect())
	}
}

func TestViewCentresSmallMap(t *testing.T) {
	gw := openGateway()
	gw.rect = core.NewRect(0, 0, 80, 48)
	p := newTestPlayer(gw, event.NewBus())
	p.Place(1, 1, 1)

	v := p.View()
	if v.X != -40 || v.Y != -24 {
		t.Errorf("view = %+v, expected the map centred", v)
	}
}

func TestLoseLife(t *testing.T) {
	bus := event.NewBus()
	rec := newRecorder(bus)
	p := newTestPlayer(openGateway(), bus)

	for i := 0; i < 2; i++ {
		p.LoseLife()
		if p.GameOver() {
			t.Fatalf("game over after losing %d lives", i+1)
		}
	}
	p.LoseLife()
	if !p.GameOver() {
		t.Error("expected game over after the last life")
	}
	if rec.count(event.KindLifeLost) != 3 {
		t.Errorf("life lost events = %d, expected 3", rec.count(event.KindLifeLost))
	}
}
