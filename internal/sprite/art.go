package sprite

import (
	"github.com/vovakirdan/tui-adventure/internal/core"
)

func frame(color core.Color, rows ...string) Frame {
	return Frame{Rows: rows, Color: color}
}

func walkCycle(head string) []Frame {
	c := core.ColorBrightCyan
	return []Frame{
		frame(c, head, "/|\\"),
		frame(c, head, "/| "),
		frame(c, head, "/|\\"),
		frame(c, head, " |\\"),
	}
}

// Art for every sprite kind. Sizes match the kind's pixel size in cells.
var (
	playerWalk = map[core.Direction][]Frame{
		core.DirUp:    walkCycle("( )"),
		core.DirDown:  walkCycle("(o)"),
		core.DirLeft:  walkCycle("<o)"),
		core.DirRight: walkCycle("(o>"),
	}
	playerFalling = []Frame{
		frame(core.ColorBrightCyan, "\\o/", " | "),
		frame(core.ColorBrightCyan, "\\o/", "/ \\"),
	}
	coinArt       = []Frame{frame(core.ColorBrightYellow, "()"), frame(core.ColorYellow, "||")}
	keyArt        = []Frame{frame(core.ColorBrightYellow, "o-"), frame(core.ColorYellow, "o=")}
	checkpointArt = []Frame{frame(core.ColorBrightMagenta, "|>"), frame(core.ColorMagenta, "|»")}
	shadowArt     = []Frame{frame(core.ColorGray, "___")}
	flamesArt     = []Frame{frame(core.ColorRed, "^^"), frame(core.ColorOrange, "'^")}
	chestArt      = []Frame{frame(core.ColorBrown, "[==]", "|__|")}
	rockArt       = []Frame{frame(core.ColorGray, "/^^\\", "\\__/")}
	waspArt       = []Frame{frame(core.ColorYellow, ">o<"), frame(core.ColorBrightYellow, "<o>")}
	beetleArt     = []Frame{frame(core.ColorMagenta, "(#)"), frame(core.ColorBrightMagenta, "{#}")}
	doorArt       = []Frame{
		frame(core.ColorBrown, "┌──┐", "│▓▓│", "│▓▓│", "│▓▓│"),
		frame(core.ColorBrown, "┌──┐", "│▒▒│", "│▒▒│", "│▒▒│"),
		frame(core.ColorBrown, "┌──┐", "│░░│", "│░░│", "│░░│"),
		frame(core.ColorBrown, "┌──┐", "│  │", "│  │", "│  │"),
	}
)
