// Package world holds tile maps and the queries the movement resolver makes
// against them.
package world

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// Gateway is the contract the movement resolver and sprites need from a map.
type Gateway interface {
	// Name returns the map name used by transitions and saves.
	Name() string

	// Rect returns the map area in pixels.
	Rect() core.Rect

	// IsMoveValid reports whether rect may occupy the map at level, and the
	// level the occupant ends up on (stairs change it).
	IsMoveValid(level int, rect core.Rect) (valid bool, newLevel int)

	// IsHorizontalValid checks whether a blocked horizontal move becomes valid
	// after a one unit vertical nudge. sign is -1 (up) or +1 (down).
	IsHorizontalValid(level int, rect core.Rect) (valid bool, newLevel int, sign int)

	// IsVerticalValid checks whether a blocked vertical move becomes valid
	// after a one unit horizontal nudge. sign is -1 (left) or +1 (right).
	IsVerticalValid(level int, rect core.Rect) (valid bool, newLevel int, sign int)

	// Actions returns the transition triggered at rect, or the number of
	// levels to fall when rect stands over a drop.
	Actions(level int, rect core.Rect) (transition *Transition, downLevel int)

	// AddLevel makes the tile at (tx, ty) reachable at level.
	AddLevel(tx, ty, level int)

	// BoundaryEvents returns the exits configured along an edge.
	BoundaryEvents(b core.Boundary) []BoundaryEvent
}

// Occluder is implemented by maps with scenery drawn in front of sprites.
type Occluder interface {
	// Occludes reports whether scenery hides any part of rect at level.
	Occludes(level int, rect core.Rect) bool

	// Covers reports whether the pixel (px, py) is drawn over sprites at level.
	Covers(level, px, py int) bool
}

// TransitionKind tells the state machine which state handles a transition.
type TransitionKind int

const (
	TransitionScene TransitionKind = iota + 1
	TransitionBoundary
	TransitionLifeLost
	TransitionGameOver
	TransitionEndGame
)

// String returns the transition kind name.
func (k TransitionKind) String() string {
	switch k {
	case TransitionScene:
		return "scene"
	case TransitionBoundary:
		return "boundary"
	case TransitionLifeLost:
		return "life-lost"
	case TransitionGameOver:
		return "game-over"
	case TransitionEndGame:
		return "end-game"
	default:
		return "unknown"
	}
}

// ParseTransitionKind converts a map file kind name.
func ParseTransitionKind(s string) (TransitionKind, bool) {
	switch s {
	case "scene":
		return TransitionScene, true
	case "boundary":
		return TransitionBoundary, true
	case "end-game", "end":
		return TransitionEndGame, true
	default:
		return 0, false
	}
}

// Transition describes a pending state change. It is never mutated after
// creation; the state machine consumes it once.
type Transition struct {
	Kind      TransitionKind
	Map       string
	TileX     int
	TileY     int
	Level     int
	Direction core.Direction
	Boundary  core.Boundary // edge crossed, if any
	Modifier  int           // tile offset applied when placing the player off-screen
}

// LifeLostTransition returns the player to a saved position.
func LifeLostTransition(mapName string, tx, ty, level int) *Transition {
	return &Transition{
		Kind:      TransitionLifeLost,
		Map:       mapName,
		TileX:     tx,
		TileY:     ty,
		Level:     level,
		Direction: core.DirDown,
	}
}

// GameOverTransition ends the session.
func GameOverTransition() *Transition {
	return &Transition{Kind: TransitionGameOver}
}

// EndGameTransition finishes the adventure.
func EndGameTransition() *Transition {
	return &Transition{Kind: TransitionEndGame}
}

// BoundaryEvent is an exit along one map edge. From and To are the
// inclusive tile indexes it spans: columns for up/down, rows for left/right.
type BoundaryEvent struct {
	Boundary   core.Boundary
	From       int
	To         int
	Transition *Transition
}

// Covers reports whether every tile in [from, to] lies inside the event range.
func (e BoundaryEvent) Covers(from, to int) bool {
	return from >= e.From && to <= e.To
}

// MapEvent triggers a transition when a base rect stands fully inside its
// area at its level.
type MapEvent struct {
	Area       core.Rect
	Level      int
	Transition *Transition
}
