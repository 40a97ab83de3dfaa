// Package core provides fundamental types and utilities for the adventure.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Grid dimensions in map pixels.
const (
	TileSize = 16 // Width and height of one map tile
	MoveUnit = 2  // Pixels covered by a single step
)

// Terminal cell dimensions in map pixels. A tile occupies 4x2 cells.
const (
	CellWidth  = 4
	CellHeight = 8
)

// Rect represents an axis-aligned bounding box in map pixel space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Move returns a copy of the rectangle shifted by (dx, dy).
func (r Rect) Move(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if inner lies entirely within this rectangle.
func (r Rect) ContainsRect(inner Rect) bool {
	return inner.X >= r.X && inner.Right() <= r.Right() &&
		inner.Y >= r.Y && inner.Bottom() <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// TileToPixel converts a tile index to the pixel coordinate of its top-left edge.
func TileToPixel(t int) int {
	return t * TileSize
}

// PixelToTile converts a pixel coordinate to the index of the tile containing it.
// Negative coordinates map to negative tiles.
func PixelToTile(p int) int {
	return floorDiv(p, TileSize)
}

// PixelToCell converts a pixel rectangle to the cell rectangle covering it.
func PixelToCell(r Rect) Rect {
	x0 := floorDiv(r.X, CellWidth)
	y0 := floorDiv(r.Y, CellHeight)
	x1 := floorDiv(r.Right()+CellWidth-1, CellWidth)
	y1 := floorDiv(r.Bottom()+CellHeight-1, CellHeight)
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// SnapToCells places a sprite rectangle on the cell grid, rounding its
// position to the nearest cell and keeping a fixed cell size.
func SnapToCells(r Rect) Rect {
	return NewRect(
		floorDiv(r.X+CellWidth/2, CellWidth),
		floorDiv(r.Y+CellHeight/2, CellHeight),
		Max(1, r.W/CellWidth),
		Max(1, r.H/CellHeight),
	)
}

func floorDiv(a, b int) int {
	if a < 0 {
		return -((-a + b - 1) / b)
	}
	return a / b
}

// ComputeBoundary reports which edge of container the rect violates.
// Horizontal edges are checked first, then vertical ones, so a corner
// violation reports the vertical boundary.
func ComputeBoundary(r, container Rect) Boundary {
	boundary := BoundaryNone
	if r.X < container.X {
		boundary = BoundaryLeft
	} else if r.Right() > container.Right() {
		boundary = BoundaryRight
	}
	if r.Y < container.Y {
		boundary = BoundaryUp
	} else if r.Bottom() > container.Bottom() {
		boundary = BoundaryDown
	}
	return boundary
}

// TileRangeForBoundary returns the inclusive range of tiles the rect spans
// along the violated edge: columns for up/down, rows for left/right.
func TileRangeForBoundary(r Rect, b Boundary) (from, to int) {
	if b == BoundaryUp || b == BoundaryDown {
		return PixelToTile(r.X), PixelToTile(r.Right() - 1)
	}
	return PixelToTile(r.Y), PixelToTile(r.Bottom() - 1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
