package sprite

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/event"
)

// NewCoin creates a coin collected on contact.
func NewCoin() *Entity {
	e := NewEntity(KindCoin, NewAnimation(6, coinArt...))
	e.Collider = collectCoin{}
	return e
}

type collectCoin struct{}

func (collectCoin) Collide(e *Entity, p *Player) bool {
	e.Publish(event.CoinCollected(e.UID))
	p.IncrementCoins()
	e.ToRemove = true
	return false
}

// NewKey creates a key collected on contact.
func NewKey() *Entity {
	e := NewEntity(KindKey, NewAnimation(6, keyArt...))
	e.Collider = collectKey{}
	return e
}

type collectKey struct{}

func (collectKey) Collide(e *Entity, p *Player) bool {
	e.Publish(event.KeyCollected(e.UID))
	p.IncrementKeys()
	e.ToRemove = true
	return false
}

// NewDoor creates a locked door. Using it with a key plays the opening
// animation, after which the doorway below it becomes walkable.
func NewDoor() *Entity {
	e := NewEntity(KindDoor, NewAnimation(6, doorArt...))
	d := &door{}
	e.Actor = d
	e.Animator = d
	return e
}

type door struct {
	opening bool
	count   int
	index   int
}

func (d *door) metadata(e *Entity) event.DoorMetadata {
	return event.DoorMetadata{ID: e.UID, TileX: e.TileX, TileY: e.TileY, Level: e.Level}
}

func (d *door) Act(e *Entity, p *Player) {
	if p.Keys() <= 0 || d.opening {
		return
	}
	p.DecrementKeys()
	d.opening = true
	e.Publish(event.DoorOpening(d.metadata(e)))
}

func (d *door) Animate(e *Entity, increment int) {
	if increment == 0 || !d.opening || e.ToRemove {
		return
	}
	d.count = (d.count + increment) % e.Animation.Skip()
	if d.count != 0 {
		return
	}
	d.index++
	if d.index == e.Animation.Len() {
		d.opened(e)
		return
	}
	e.image = doorArt[d.index]
}

func (d *door) opened(e *Entity) {
	meta := d.metadata(e)
	meta.ApplyMapActions(e.Gateway)
	e.Publish(event.DoorOpened(meta))
	e.ToRemove = true
}

// NewCheckpoint creates a checkpoint that saves progress on contact.
func NewCheckpoint() *Entity {
	e := NewEntity(KindCheckpoint, NewAnimation(12, checkpointArt...))
	e.Collider = reachCheckpoint{}
	return e
}

type reachCheckpoint struct{}

func (reachCheckpoint) Collide(e *Entity, p *Player) bool {
	e.Publish(event.CheckpointReached(event.CheckpointMetadata{
		ID:    e.UID,
		Map:   e.Gateway.Name(),
		TileX: e.TileX,
		TileY: e.TileY,
		Level: e.Level,
		Coins: p.Coins(),
		Keys:  p.Keys(),
	}))
	p.CheckpointReached()
	e.ToRemove = true
	return false
}

// NewShadow creates the shadow marking where a falling player will land.
func NewShadow(p *Player, downLevel int) *Entity {
	e := NewEntity(KindShadow, NewAnimation(0, shadowArt...))
	e.Setup("shadow", p.Gateway, p.Bus)
	r := p.Rect()
	y := r.Y + downLevel*core.TileSize + r.H - e.rect.H
	e.SetPixelPosition(r.X, y, p.Level-downLevel)
	return e
}

// NewFlames creates a flickering torch.
func NewFlames() *Entity {
	return NewEntity(KindFlames, NewAnimation(6, flamesArt...))
}

// NewChest creates a closed chest.
func NewChest() *Entity {
	return NewEntity(KindChest, NewAnimation(0, chestArt...))
}

// NewRock creates a boulder.
func NewRock() *Entity {
	return NewEntity(KindRock, NewAnimation(0, rockArt...))
}

// NewWasp creates a wasp patrolling left and right.
func NewWasp(patrol int) *Entity {
	e := NewEntity(KindWasp, NewAnimation(3, waspArt...))
	c := &creature{dx: 1, patrol: patrol * core.TileSize, turn: event.WaspZooming}
	e.Collider = c
	e.Animator = c
	return e
}

// NewBeetle creates a beetle patrolling up and down.
func NewBeetle(patrol int) *Entity {
	e := NewEntity(KindBeetle, NewAnimation(6, beetleArt...))
	c := &creature{dy: 1, patrol: patrol * core.TileSize, turn: event.BeetleCrawling}
	e.Collider = c
	e.Animator = c
	return e
}

// creature walks back and forth along one axis, turning after patrol
// pixels or when the map blocks it. Touching it costs a life.
type creature struct {
	dx, dy    int
	patrol    int
	travelled int
	turn      event.Event
}

func (c *creature) Collide(e *Entity, p *Player) bool {
	p.LoseLife()
	return true
}

func (c *creature) Animate(e *Entity, increment int) {
	if e.Animation != nil {
		e.Animation.Advance(increment)
		e.image = e.Animation.Current()
	}
	for i := 0; i < increment; i++ {
		c.step(e)
	}
}

func (c *creature) step(e *Entity) {
	blocked := false
	if e.Gateway != nil {
		valid, _ := e.Gateway.IsMoveValid(e.Level, e.base.Move(c.dx, c.dy))
		blocked = !valid
	}
	if blocked || (c.patrol > 0 && c.travelled >= c.patrol) {
		c.dx, c.dy = -c.dx, -c.dy
		c.travelled = 0
		e.Publish(c.turn)
		return
	}
	e.Move(c.dx, c.dy)
	c.travelled++
}
