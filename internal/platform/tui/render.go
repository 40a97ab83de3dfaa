package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-adventure/internal/core"
)

// palette gives the terminal color behind each color name used by map
// legends and sprite art. "default" keeps the terminal's own foreground.
var palette = map[string]lipgloss.Color{
	// terrain
	"green":  "2",
	"yellow": "3",
	"brown":  "130",
	"gray":   "245",
	"blue":   "4",
	"cyan":   "6",

	// items and creatures
	"red":            "1",
	"magenta":        "5",
	"white":          "7",
	"orange":         "208",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// colorStyles holds one lipgloss style per core.Color, built from palette.
var colorStyles = buildStyles(palette)

func buildStyles(p map[string]lipgloss.Color) map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for name, code := range p {
		if c, ok := core.ParseColor(name); ok {
			styles[c] = lipgloss.NewStyle().Foreground(code)
		}
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a color are styled together.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	color := core.ColorDefault
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(styleFor(color).Render(run.String()))
			run.Reset()
		}
	}
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}
