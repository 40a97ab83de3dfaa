package world

import (
	"testing"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

// testMap builds a small map from rows:
//
//	'.' ground at level 1, '^' plateau at level 2, '=' stairs (1 and 2),
//	'o' ledge at level 2 dropping one level, 'A' tunnel covered at level 2,
//	'#' wall.
func testMap(t *testing.T, rows ...string) *TileMap {
	t.Helper()
	m := NewTileMap("test", len(rows[0]), len(rows))
	for y, row := range rows {
		for x, r := range row {
			var tile *Tile
			switch r {
			case '.':
				tile = NewTile(r, core.ColorGreen, 1)
			case '^':
				tile = NewTile(r, core.ColorBrown, 2)
			case '=':
				tile = NewTile(r, core.ColorWhite, 1, 2)
				tile.Stairs = true
			case 'o':
				tile = NewTile(r, core.ColorBrown, 2)
				tile.Drop = 1
			case 'A':
				tile = NewTile(r, core.ColorBrown, 1, 2)
				tile.Cover = true
			case '#':
				tile = NewTile(r, core.ColorGray)
			default:
				t.Fatalf("unknown glyph %q", r)
			}
			m.SetTile(x, y, tile)
		}
	}
	return m
}

// tileRect returns an 8x4 base rect centred in tile (tx, ty).
func tileRect(tx, ty int) core.Rect {
	return core.NewRect(core.TileToPixel(tx)+4, core.TileToPixel(ty)+6, 8, 4)
}

func TestIsMoveValid(t *testing.T) {
	m := testMap(t,
		"....",
		".^^.",
		".=^.",
		"..#.",
	)

	tests := []struct {
		name      string
		level     int
		rect      core.Rect
		valid     bool
		wantLevel int
	}{
		{"ground", 1, tileRect(0, 0), true, 1},
		{"wall", 1, tileRect(2, 3), false, 1},
		{"plateau from ground", 1, tileRect(1, 1), false, 1},
		{"stairs at ground level", 1, tileRect(1, 2), true, 1},
		{"stairs to plateau", 1, tileRect(1, 2).Move(0, -8), true, 2},
		{"plateau to stairs", 2, tileRect(1, 2), true, 2},
		{"stairs to ground", 2, tileRect(1, 2).Move(0, 8), true, 1},
		{"straddling ground and wall", 1, tileRect(1, 3).Move(8, 0), false, 1},
		{"outside without exit", 1, tileRect(0, 0).Move(0, -10), false, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			valid, level := m.IsMoveValid(tc.level, tc.rect)
			if valid != tc.valid {
				t.Fatalf("IsMoveValid() valid = %v, expected %v", valid, tc.valid)
			}
			if valid && level != tc.wantLevel {
				t.Errorf("IsMoveValid() level = %d, expected %d", level, tc.wantLevel)
			}
		})
	}
}

func TestIsMoveValidExit(t *testing.T) {
	m := testMap(t,
		"....",
		"....",
	)
	m.AddBoundaryEvent(BoundaryEvent{
		Boundary:   core.BoundaryUp,
		From:       1,
		To:         2,
		Transition: &Transition{Kind: TransitionBoundary, Map: "north"},
	})

	if valid, _ := m.IsMoveValid(1, tileRect(1, 0).Move(0, -10)); !valid {
		t.Error("moving into a configured exit should be valid")
	}
	if valid, _ := m.IsMoveValid(1, tileRect(3, 0).Move(0, -10)); valid {
		t.Error("moving off the map outside an exit should be invalid")
	}
}

func TestNudge(t *testing.T) {
	// The opening above row 1 is column 1 only.
	m := testMap(t,
		"#.##",
		"....",
	)
	// A base rect moved up into row 0, one unit left of the opening.
	candidate := core.NewRect(14, 14, 8, 4)

	valid, level, sign := m.IsVerticalValid(1, candidate)
	if !valid {
		t.Fatal("IsVerticalValid() should find the opening")
	}
	if sign != 1 || level != 1 {
		t.Errorf("IsVerticalValid() = (level %d, sign %d), expected (1, 1)", level, sign)
	}

	blocked := core.NewRect(36, 8, 8, 4)
	if valid, _, _ := m.IsVerticalValid(1, blocked); valid {
		t.Error("IsVerticalValid() should fail away from any opening")
	}
}

func TestNudgeHorizontal(t *testing.T) {
	m := testMap(t,
		".#",
		"..",
	)
	// Moving right into column 1 while 2px into row 0.
	candidate := core.NewRect(20, 14, 8, 4)
	valid, _, sign := m.IsHorizontalValid(1, candidate)
	if !valid || sign != 1 {
		t.Errorf("IsHorizontalValid() = (%v, sign %d), expected (true, 1)", valid, sign)
	}
}

func TestActions(t *testing.T) {
	m := testMap(t,
		"^oo.",
		"....",
	)
	door := &Transition{Kind: TransitionScene, Map: "house", TileX: 2, TileY: 3, Level: 1}
	m.AddEvent(MapEvent{Area: core.NewRect(48, 16, 16, 16), Level: 1, Transition: door})

	tr, down := m.Actions(1, tileRect(3, 1))
	if tr != door || down != 0 {
		t.Errorf("Actions() on event = (%v, %d), expected the door transition", tr, down)
	}

	if tr, _ := m.Actions(2, tileRect(3, 1)); tr != nil {
		t.Error("event should only trigger at its level")
	}

	if tr, down := m.Actions(2, tileRect(1, 0)); tr != nil || down != 1 {
		t.Errorf("Actions() on ledge = (%v, %d), expected drop 1", tr, down)
	}

	// Half on the plateau, half on the ledge.
	if _, down := m.Actions(2, tileRect(0, 0).Move(8, 0)); down != 0 {
		t.Errorf("Actions() straddling ledge returned drop %d", down)
	}

	if tr, down := m.Actions(1, tileRect(0, 1)); tr != nil || down != 0 {
		t.Error("Actions() on plain ground should return nothing")
	}
}

func TestAddLevel(t *testing.T) {
	m := testMap(t,
		"#",
		".",
	)
	if valid, _ := m.IsMoveValid(1, tileRect(0, 0)); valid {
		t.Fatal("wall should be blocked before AddLevel")
	}
	m.AddLevel(0, 0, 1)
	if valid, _ := m.IsMoveValid(1, tileRect(0, 0)); !valid {
		t.Error("tile should be walkable after AddLevel")
	}
	m.AddLevel(10, 10, 1)
}

func TestOccludes(t *testing.T) {
	m := testMap(t,
		".A.",
	)
	if !m.Occludes(1, tileRect(1, 0)) {
		t.Error("covered tile should occlude level 1 sprites")
	}
	if m.Occludes(2, tileRect(1, 0)) {
		t.Error("covered tile should not occlude sprites on its top level")
	}
	if m.Occludes(1, tileRect(0, 0)) {
		t.Error("open ground should not occlude")
	}
	if !m.Covers(1, 20, 4) {
		t.Error("Covers() should report the tunnel pixel")
	}
}

func TestSetTileCopies(t *testing.T) {
	m := NewTileMap("copy", 2, 1)
	shared := NewTile('.', core.ColorGreen, 1)
	m.SetTile(0, 0, shared)
	m.SetTile(1, 0, shared)

	m.AddLevel(0, 0, 3)
	if m.TileAt(1, 0).Holds(3) {
		t.Error("AddLevel should only change one tile")
	}
	if shared.Holds(3) {
		t.Error("AddLevel should not change the source tile")
	}
}

func TestDraw(t *testing.T) {
	m := testMap(t,
		".#",
	)
	s := core.NewScreen(10, 3)
	m.Draw(s, core.NewRect(0, 0, 40, 24))

	if got := s.Row(0); got != "....####  " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(2); got != "          " {
		t.Errorf("Row(2) = %q, expected blank below the map", got)
	}
	if s.GetCell(0, 0).Color != core.ColorGreen {
		t.Errorf("ground color = %v", s.GetCell(0, 0).Color)
	}
}
