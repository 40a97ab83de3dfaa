package world

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

const sampleMap = `
name: sample
title: Sample Field
legend:
  "#": {color: gray}
  ".": {levels: [1], color: green}
  "=": {levels: [1, 2], stairs: true, glyph: "≡"}
  "o": {levels: [2], drop: 1}
rows:
  - "#..#"
  - "#=o#"
  - "#..#"
events:
  - tile: [1, 2]
    level: 1
    transition: {map: cellar, tile: [3, 4], level: 1}
  - tile: [2, 2]
    transition: {kind: end-game}
boundaries:
  - edge: up
    range: [1, 2]
    transition: {kind: boundary, map: north, modifier: 1}
sprites:
  - {type: coin, uid: c1, tile: [1, 0], level: 1}
  - {type: wasp, uid: w1, tile: [2, 0], level: 1, patrol: 3}
`

func TestParseAndBuild(t *testing.T) {
	def, err := Parse([]byte(sampleMap))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	m, err := def.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if m.Name() != "sample" || m.Title() != "Sample Field" {
		t.Errorf("name/title = %q/%q", m.Name(), m.Title())
	}
	if m.Rect() != core.NewRect(0, 0, 64, 48) {
		t.Errorf("Rect() = %+v", m.Rect())
	}
	stairs := m.TileAt(1, 1)
	if !stairs.Stairs || stairs.Glyph != '≡' || !stairs.Holds(2) {
		t.Errorf("stairs tile = %+v", stairs)
	}
	if m.TileAt(2, 1).Drop != 1 {
		t.Errorf("ledge drop = %d", m.TileAt(2, 1).Drop)
	}
	if m.TileAt(0, 0).Color != core.ColorGray {
		t.Errorf("wall color = %v", m.TileAt(0, 0).Color)
	}

	tr, _ := m.Actions(1, tileRect(1, 2))
	if tr == nil || tr.Kind != TransitionScene || tr.Map != "cellar" || tr.TileX != 3 || tr.TileY != 4 {
		t.Fatalf("scene event = %+v", tr)
	}
	if tr.Direction != core.DirDown {
		t.Errorf("scene direction = %v, expected default down", tr.Direction)
	}

	tr, _ = m.Actions(2, tileRect(2, 2))
	if tr == nil || tr.Kind != TransitionEndGame {
		t.Errorf("event with level 0 should match any level, got %+v", tr)
	}

	exits := m.BoundaryEvents(core.BoundaryUp)
	if len(exits) != 1 {
		t.Fatalf("BoundaryEvents(up) = %d events", len(exits))
	}
	exit := exits[0].Transition
	if exit.Kind != TransitionBoundary || exit.Boundary != core.BoundaryUp ||
		exit.Direction != core.DirUp || exit.Modifier != 1 {
		t.Errorf("boundary transition = %+v", exit)
	}

	if len(m.Sprites()) != 2 || m.Sprites()[1].Patrol != 3 {
		t.Errorf("Sprites() = %+v", m.Sprites())
	}
}

func TestBuildReturnsIndependentMaps(t *testing.T) {
	def, err := Parse([]byte(sampleMap))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := def.Build()
	b, _ := def.Build()

	a.AddLevel(0, 0, 1)
	if b.TileAt(0, 0).Holds(1) {
		t.Error("AddLevel on one build leaked into another")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing name",
			yaml: `rows: ["."]`,
			want: "no name",
		},
		{
			name: "ragged rows",
			yaml: "name: x\nlegend: {\".\": {levels: [1]}}\nrows: [\"..\", \".\"]",
			want: "row 1 has width",
		},
		{
			name: "unknown glyph",
			yaml: "name: x\nlegend: {\".\": {levels: [1]}}\nrows: [\".x\"]",
			want: "missing from legend",
		},
		{
			name: "bad edge",
			yaml: "name: x\nlegend: {\".\": {}}\nrows: [\".\"]\nboundaries: [{edge: sideways, transition: {map: y}}]",
			want: "unknown edge",
		},
		{
			name: "event without map",
			yaml: "name: x\nlegend: {\".\": {}}\nrows: [\".\"]\nevents: [{tile: [0, 0], transition: {kind: scene}}]",
			want: "no target map",
		},
		{
			name: "duplicate uid",
			yaml: "name: x\nlegend: {\".\": {}}\nrows: [\".\"]\nsprites: [{type: coin, uid: a}, {type: key, uid: a}]",
			want: "duplicate sprite uid",
		},
		{
			name: "bad yaml",
			yaml: "name: [",
			want: "unmarshal",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Parse() error = %v, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestBuildUnknownColor(t *testing.T) {
	def, err := Parse([]byte("name: x\nlegend: {\".\": {color: plaid}}\nrows: [\".\"]"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := def.Build(); err == nil || !strings.Contains(err.Error(), "plaid") {
		t.Errorf("Build() error = %v, expected unknown color", err)
	}
}
