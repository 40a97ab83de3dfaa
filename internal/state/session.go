package state

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-adventure/internal/config"
	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/event"
	"github.com/vovakirdan/tui-adventure/internal/registry"
	"github.com/vovakirdan/tui-adventure/internal/sprite"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

// ResultData describes a finished adventure.
type ResultData struct {
	Player string
	Coins  int
	Total  int
	Lives  int
	Ticks  int
}

// Recorder stores finished adventures.
type Recorder interface {
	RecordAdventure(ResultData) error
}

// CheckpointStore persists checkpoint snapshots.
type CheckpointStore interface {
	SaveCheckpoint(slot string, r *registry.Registry) error
}

// Deps are the collaborators a session is built from.
type Deps struct {
	Config  config.AdventureConfig
	Loader  *world.Loader
	Surface Surface
	Logger  *log.Logger

	// Name identifies the player in save slots and records.
	Name string

	// Resume is a saved snapshot a continued game starts from.
	Resume *registry.Registry

	// Optional persistence.
	Checkpoints CheckpointStore
	Recorder    Recorder
}

// Session is one game from start to game over or the end: the event bus,
// the progress registry, the player and the map being played.
type Session struct {
	Bus     *event.Bus
	Handler *registry.Handler
	Player  *sprite.Player
	Map     *world.TileMap
	Surface Surface
	Logger  *log.Logger

	deps  Deps
	frame *core.Screen
	ticks int
}

// NewSession starts a game. With cont set and a saved snapshot in deps the
// game continues from it; otherwise it begins at the configured start.
func NewSession(deps Deps, cont bool) (*Session, error) {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	var handler *registry.Handler
	if cont && deps.Resume != nil {
		handler = registry.Resume(deps.Resume)
	} else {
		handler = newHandler(deps.Config)
	}
	return start(deps, handler)
}

// Restart begins a new game on the same collaborators. With cont set it
// continues from the last checkpoint.
func (s *Session) Restart(cont bool) (*Session, error) {
	if cont {
		s.Handler.SwitchToSnapshot()
		return start(s.deps, s.Handler)
	}
	return start(s.deps, newHandler(s.deps.Config))
}

func newHandler(cfg config.AdventureConfig) *registry.Handler {
	st := cfg.Start
	return registry.NewHandler(registry.New(st.Map, st.X, st.Y, st.Level))
}

func start(deps Deps, handler *registry.Handler) (*Session, error) {
	logger := deps.Logger
	bus := event.NewBus()
	bus.Register(handler)
	bus.Register(event.NewLogListener(logger))

	handler.Logger = logger
	handler.OnCheckpoint(nil)
	if deps.Checkpoints != nil {
		store, slot := deps.Checkpoints, deps.Name
		handler.OnCheckpoint(func(r *registry.Registry) {
			if err := store.SaveCheckpoint(slot, r); err != nil {
				logger.Warn("cannot save checkpoint", "err", err)
			}
		})
	}

	r := handler.Registry()
	m, err := deps.Loader.Load(r.Map)
	if err != nil {
		return nil, fmt.Errorf("state: cannot load start map: %w", err)
	}
	handler.EnterMap(m.Name())

	p := sprite.NewPlayer(deps.Config.Player.Lives)
	p.Logger = logger
	p.Setup("player", m, bus)
	p.SetCoins(r.Coins)
	p.SetKeys(r.Keys)
	if r.Checkpoint {
		p.CheckpointReached()
	}

	s := &Session{
		Bus:     bus,
		Handler: handler,
		Player:  p,
		Map:     m,
		Surface: deps.Surface,
		Logger:  logger,
		deps:    deps,
		frame:   core.NewScreen(deps.Surface.Width(), deps.Surface.Height()),
	}
	p.SetViewSize(s.viewSize())
	p.Place(r.TileX, r.TileY, r.Level)

	logger.Info("game started", "map", m.Name(), "x", r.TileX, "y", r.TileY, "checkpoint", r.Checkpoint)
	return s, nil
}

// Config returns the configuration the session was started with.
func (s *Session) Config() config.AdventureConfig {
	return s.deps.Config
}

// Ticks returns how many ticks the session has run.
func (s *Session) Ticks() int {
	return s.ticks
}

// Resize follows a change in the surface size.
func (s *Session) Resize() {
	s.frame.Resize(s.Surface.Width(), s.Surface.Height())
	s.Player.SetViewSize(s.viewSize())
}

// viewSize returns the surface size in map pixels.
func (s *Session) viewSize() (int, int) {
	return s.Surface.Width() * core.CellWidth, s.Surface.Height() * core.CellHeight
}

// newFrame returns a blank off-screen frame the size of the surface.
func (s *Session) newFrame() *core.Screen {
	return core.NewScreen(s.Surface.Width(), s.Surface.Height())
}

// enterMap moves the player onto the named map. A map that cannot be loaded
// is logged and the current one is kept.
func (s *Session) enterMap(name string) {
	m, err := s.deps.Loader.Load(name)
	if err != nil {
		s.Logger.Error("cannot load map", "map", name, "err", err)
		return
	}
	s.Logger.Debug("map loaded", "map", name)
	s.Map = m
	s.Player.SetGateway(m)
	s.Handler.EnterMap(m.Name())
}

// restart is the state a confirmed restart switches to. A failed restart
// is logged and the current state is kept.
func (s *Session) restart(cont bool) State {
	next, err := s.Restart(cont)
	if err != nil {
		s.Logger.Error("cannot restart", "err", err)
		return nil
	}
	return NewPlay(next)
}

// record stores the result of a finished adventure, if a recorder is set.
func (s *Session) record() {
	if s.deps.Recorder == nil {
		return
	}
	err := s.deps.Recorder.RecordAdventure(ResultData{
		Player: s.deps.Name,
		Coins:  s.Player.Coins(),
		Total:  s.deps.Config.Player.TotalCoins,
		Lives:  s.Player.Lives(),
		Ticks:  s.ticks,
	})
	if err != nil {
		s.Logger.Warn("cannot record result", "err", err)
	}
}
