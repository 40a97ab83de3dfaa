package sprite

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/event"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// fakeGateway is a scriptable map for movement tests.
type fakeGateway struct {
	name       string
	rect       core.Rect
	valid      func(level int, r core.Rect) bool
	vertical   func(level int, r core.Rect) (bool, int, int)
	horizontal func(level int, r core.Rect) (bool, int, int)
	boundaries map[core.Boundary][]world.BoundaryEvent
	transition *world.Transition
	downLevel  int
	actions    int
	added      [][3]int
}

func openGateway() *fakeGateway {
	return &fakeGateway{
		name:       "fake",
		rect:       core.NewRect(0, 0, 320, 320),
		boundaries: make(map[core.Boundary][]world.BoundaryEvent),
	}
}

func (g *fakeGateway) Name() string    { return g.name }
func (g *fakeGateway) Rect() core.Rect { return g.rect }

func (g *fakeGateway) IsMoveValid(level int, r core.Rect) (bool, int) {
	if g.valid == nil {
		return true, level
	}
	return g.valid(level, r), level
}

func (g *fakeGateway) IsHorizontalValid(level int, r core.Rect) (bool, int, int) {
	if g.horizontal == nil {
		return false, level, 0
	}
	return g.horizontal(level, r)
}

func (g *fakeGateway) IsVerticalValid(level int, r core.Rect) (bool, int, int) {
	if g.vertical == nil {
		return false, level, 0
	}
	return g.vertical(level, r)
}

func (g *fakeGateway) Actions(level int, r core.Rect) (*world.Transition, int) {
	g.actions++
	down := g.downLevel
	g.downLevel = 0
	return g.transition, down
}

func (g *fakeGateway) AddLevel(tx, ty, level int) {
	g.added = append(g.added, [3]int{tx, ty, level})
}

func (g *fakeGateway) BoundaryEvents(b core.Boundary) []world.BoundaryEvent {
	return g.boundaries[b]
}

// recorder collects published events.
type recorder struct {
	events []event.Event
}

func newRecorder(bus *event.Bus) *recorder {
	r := &recorder{}
	for _, k := range event.Kinds() {
		bus.Subscribe(k, func(ev event.Event) { r.events = append(r.events, ev) })
	}
	return r
}

func (r *recorder) count(k event.Kind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}

func newTestPlayer(gw world.Gateway, bus *event.Bus) *Player {
	p := NewPlayer(2)
	p.Setup("ulmo", gw, bus)
	p.SetViewSize(160, 96)
	p.Place(5, 5, 1)
	return p
}

// position returns the player's visual top-left corner.
func position(p *Player) (int, int) {
	r := p.Rect()
	return r.X, r.Y
}

// placeOnPlayer moves e so that its base rect sits on the player's.
func placeOnPlayer(e *Entity, p *Player) {
	pb := p.BaseRect()
	x := pb.X - (e.geom.w-e.geom.baseW)/2
	y := pb.Y + BaseRectHeight - e.geom.baseExtend - e.geom.h
	e.SetPixelPosition(x, y, p.Level)
}
