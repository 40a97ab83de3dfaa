package sprite

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// Frame is one image of a sprite as rows of cells. Spaces are transparent.
type Frame struct {
	Rows  []string
	Color core.Color
}

// Animation cycles through frames, advancing one frame every skip ticks.
type Animation struct {
	frames []Frame
	skip   int
	count  int
	index  int
}

// NewAnimation creates an animation. A skip of 0 never advances.
func NewAnimation(skip int, frames ...Frame) *Animation {
	return &Animation{frames: frames, skip: skip}
}

// Advance moves the animation on by increment ticks and reports the frame
// index and whether it changed.
func (a *Animation) Advance(increment int) (int, bool) {
	if increment == 0 || a.skip == 0 || len(a.frames) < 2 {
		return a.index, false
	}
	a.count = (a.count + increment) % a.skip
	if a.count != 0 {
		return a.index, false
	}
	a.index = (a.index + 1) % len(a.frames)
	return a.index, true
}

// Current returns the frame being shown.
func (a *Animation) Current() Frame {
	if len(a.frames) == 0 {
		return Frame{}
	}
	return a.frames[a.index]
}

// Index returns the current frame index.
func (a *Animation) Index() int { return a.index }

// Len returns the number of frames.
func (a *Animation) Len() int { return len(a.frames) }

// Skip returns the number of ticks each frame is shown.
func (a *Animation) Skip() int { return a.skip }

// Reset returns to the first frame.
func (a *Animation) Reset() {
	a.count = 0
	a.index = 0
}

// DirectionalFrames holds a walk cycle for each facing.
type DirectionalFrames struct {
	cycles    map[core.Direction][]Frame
	direction core.Direction
	skip      int
	count     int
	index     int
}

// NewDirectionalFrames creates walk cycles facing down.
func NewDirectionalFrames(skip int, cycles map[core.Direction][]Frame) *DirectionalFrames {
	return &DirectionalFrames{cycles: cycles, direction: core.DirDown, skip: skip}
}

// Direction returns the current facing.
func (d *DirectionalFrames) Direction() core.Direction {
	return d.direction
}

// Advance steps the walk cycle for dir. Turning to a new facing restarts the
// cycle. DirNone keeps the current facing. It returns the frame index and
// whether the frame changed.
func (d *DirectionalFrames) Advance(dir core.Direction) (int, bool) {
	if dir != core.DirNone && dir != d.direction {
		d.direction = dir
		d.count = 0
		d.index = 0
		return d.index, false
	}
	cycle := d.cycles[d.direction]
	if d.skip == 0 || len(cycle) < 2 {
		return d.index, false
	}
	d.count = (d.count + 1) % d.skip
	if d.count != 0 {
		return d.index, false
	}
	d.index = (d.index + 1) % len(cycle)
	return d.index, true
}

// Current returns the frame for the current facing.
func (d *DirectionalFrames) Current() Frame {
	cycle := d.cycles[d.direction]
	if len(cycle) == 0 {
		return Frame{}
	}
	return cycle[d.index%len(cycle)]
}

// Index returns the walk cycle index.
func (d *DirectionalFrames) Index() int { return d.index }
