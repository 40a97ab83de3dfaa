package core

// Direction is a bit set of the four cardinal directions.
// Bits combine, so DirUp|DirLeft describes an up-left diagonal.
type Direction int

const (
	DirNone  Direction = 0
	DirUp    Direction = 1
	DirDown  Direction = 2
	DirLeft  Direction = 4
	DirRight Direction = 8
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp | DirLeft:
		return "up-left"
	case DirUp | DirRight:
		return "up-right"
	case DirDown | DirLeft:
		return "down-left"
	case DirDown | DirRight:
		return "down-right"
	default:
		return "invalid"
	}
}

// ParseDirection converts a cardinal direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	case "", "none":
		return DirNone, true
	default:
		return DirNone, false
	}
}

// Boundary identifies the map edge a sprite has crossed.
// Values match the cardinal Direction bits.
type Boundary int

const (
	BoundaryNone  = Boundary(DirNone)
	BoundaryUp    = Boundary(DirUp)
	BoundaryDown  = Boundary(DirDown)
	BoundaryLeft  = Boundary(DirLeft)
	BoundaryRight = Boundary(DirRight)
)

// Direction returns the facing that matches crossing this boundary.
func (b Boundary) Direction() Direction {
	return Direction(b)
}

// String returns a human-readable name for the boundary.
func (b Boundary) String() string {
	return Direction(b).String()
}

// ParseBoundary converts an edge name to a Boundary.
func ParseBoundary(s string) (Boundary, bool) {
	d, ok := ParseDirection(s)
	return Boundary(d), ok
}
