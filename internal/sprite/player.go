package sprite

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/event"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// Player is the sprite under the user's control.
type Player struct {
	Entity

	Logger *log.Logger

	// movement
	movement Movement
	moving   bool
	deferred *deferredMove
	ticks    int
	falling  int // pixels left to fall

	walk *DirectionalFrames
	fall *Animation

	view   core.Rect
	shadow *Entity

	coins      int
	keys       int
	lives      int
	checkpoint bool
}

// NewPlayer creates a player with the given number of spare lives.
func NewPlayer(lives int) *Player {
	p := &Player{
		Logger: log.New(io.Discard),
		walk:   NewDirectionalFrames(6, playerWalk),
		fall:   NewAnimation(4, playerFalling...),
		lives:  lives,
	}
	p.init(KindPlayer)
	p.image = p.walk.Current()
	return p
}

// SetGateway moves the player onto another map.
func (p *Player) SetGateway(gw world.Gateway) {
	p.Gateway = gw
}

// SetViewSize sets the size of the camera window in pixels.
func (p *Player) SetViewSize(w, h int) {
	p.view.W = w
	p.view.H = h
	if p.Gateway != nil {
		p.updateViewRect()
	}
}

// View returns the camera window onto the map.
func (p *Player) View() core.Rect { return p.view }

// Direction returns the facing.
func (p *Player) Direction() core.Direction { return p.walk.Direction() }

// Falling returns the pixels left to fall, 0 when grounded.
func (p *Player) Falling() int { return p.falling }

// Shadow returns the shadow shown while falling, or nil.
func (p *Player) Shadow() *Entity { return p.shadow }

// Ticks returns the diagonal cadence counter.
func (p *Player) Ticks() int { return p.ticks }

// HasDeferred reports whether a deferred movement is pending.
func (p *Player) HasDeferred() bool { return p.deferred != nil }

// Place puts the player on a tile of its map, cancelling any movement or
// fall in progress.
func (p *Player) Place(tx, ty, level int) {
	p.deferred = nil
	p.moving = false
	if p.falling > 0 {
		p.falling = 0
		p.land()
	}
	p.shadow = nil
	p.SetTilePosition(tx, ty, level)
	p.updateViewRect()
}

// Update runs the player's own logic for one tick: falling, or the events
// and drops under its feet. It returns a transition triggered by the map.
func (p *Player) Update(sprites *Group) *world.Transition {
	if p.falling > 0 {
		p.wrapMovement(p.Level, core.DirNone, 0, FallUnit)
		if p.falling%core.TileSize == 0 {
			p.Level--
		}
		p.falling -= FallUnit
		if p.falling == 0 {
			p.land()
		}
		return nil
	}

	transition, downLevel := p.Gateway.Actions(p.Level, p.base)
	if transition != nil {
		return transition
	}
	if downLevel > 0 {
		p.startFalling(downLevel, sprites)
	}
	return nil
}

func (p *Player) startFalling(downLevel int, sprites *Group) {
	p.Logger.Debug("player falling", "levels", downLevel, "from", p.Level)
	p.falling = downLevel * core.TileSize
	p.fall.Reset()
	p.image = p.fall.Current()

	p.shadow = NewShadow(p, downLevel)
	if sprites != nil {
		sprites.Add(p.shadow)
	}
	p.Publish(event.PlayerFalling)
}

func (p *Player) land() {
	p.image = p.walk.Current()
	p.updateMasks()
	if p.shadow != nil {
		p.shadow.ToRemove = true
	}
}

// ProcessCollisions runs the collision behaviour of every sprite touching
// the player. It returns true as soon as one costs a life.
func (p *Player) ProcessCollisions(sprites []*Entity) bool {
	if len(sprites) == 0 {
		return false
	}
	for _, s := range sprites {
		if s == &p.Entity || s.ToRemove {
			continue
		}
		if s.IsIntersecting(&p.Entity) && s.ProcessCollision(p) {
			return true
		}
	}
	return false
}

// ProcessActions runs the action behaviour of every sprite touching the player.
func (p *Player) ProcessActions(sprites []*Entity) {
	for _, s := range sprites {
		if s == &p.Entity || s.ToRemove {
			continue
		}
		if s.IsIntersecting(&p.Entity) {
			s.ProcessAction(p)
		}
	}
}

// Show nudges the player in from off-screen, keeping its facing.
func (p *Player) Show(dx, dy int) {
	p.wrapMovement(p.Level, p.walk.Direction(), dx, dy)
}

// Hide places the player just beyond the edge of its map opposite to the
// boundary it crossed. modifier shifts the position by whole tiles.
func (p *Player) Hide(b core.Boundary, modifier int) {
	m := p.Gateway.Rect()
	x, y := p.rect.X, p.rect.Y
	if modifier != 0 {
		x += modifier * core.TileSize
		y += modifier * core.TileSize
	}
	switch b {
	case core.BoundaryUp:
		y = m.Bottom()
	case core.BoundaryDown:
		y = m.Y - p.rect.H
	case core.BoundaryLeft:
		x = m.Right()
	case core.BoundaryRight:
		x = m.X - p.rect.W
	}
	p.SetPixelPosition(x, y, p.Level)
	p.updateViewRect()
}

// updateViewRect centres the view on the player, keeping it inside the map.
// A map smaller than the view is centred in it. The view is aligned to
// whole cells.
func (p *Player) updateViewRect() {
	if p.Gateway == nil || p.view.W == 0 || p.view.H == 0 {
		return
	}
	m := p.Gateway.Rect()
	cx, cy := p.rect.Center()
	p.view.X = alignDown(viewAxis(cx-p.view.W/2, m.X, m.Right(), p.view.W), core.CellWidth)
	p.view.Y = alignDown(viewAxis(cy-p.view.H/2, m.Y, m.Bottom(), p.view.H), core.CellHeight)
}

func viewAxis(pos, lo, hi, size int) int {
	if hi-lo <= size {
		return lo - (size-(hi-lo))/2
	}
	return core.Clamp(pos, lo, hi-size)
}

func alignDown(v, unit int) int {
	if v < 0 {
		return -((-v + unit - 1) / unit) * unit
	}
	return v - v%unit
}

// Coins returns the number of coins collected.
func (p *Player) Coins() int { return p.coins }

// SetCoins sets the coin count.
func (p *Player) SetCoins(n int) { p.coins = n }

// IncrementCoins adds one coin.
func (p *Player) IncrementCoins() { p.coins++ }

// Keys returns the number of keys held.
func (p *Player) Keys() int { return p.keys }

// SetKeys sets the key count.
func (p *Player) SetKeys(n int) { p.keys = n }

// IncrementKeys adds one key.
func (p *Player) IncrementKeys() { p.keys++ }

// DecrementKeys uses up one key.
func (p *Player) DecrementKeys() { p.keys-- }

// Lives returns the number of spare lives.
func (p *Player) Lives() int { return p.lives }

// LoseLife publishes the loss and removes a life.
func (p *Player) LoseLife() {
	p.Publish(event.LifeLost)
	p.lives--
}

// GameOver reports whether the player has run out of lives.
func (p *Player) GameOver() bool { return p.lives < 0 }

// CheckpointReached lights the checkpoint indicator.
func (p *Player) CheckpointReached() { p.checkpoint = true }

// HasCheckpoint reports whether a checkpoint was reached this session.
func (p *Player) HasCheckpoint() bool { return p.checkpoint }
