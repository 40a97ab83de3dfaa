package state

import (
	"fmt"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/sprite"
)

// Transition timing in ticks.
const (
	zoomTicks  = 64 // zoom in, swap at the midpoint, zoom out
	swapTick   = zoomTicks / 2
	wipeTicks  = 32
	textTick   = 32 // game over and end game text
	promptTick = 64
)

// zoomIn shrinks img towards the centre of dst, blacking out the border.
func zoomIn(dst Surface, img *core.Screen, ticks int) {
	w, h := dst.Width(), dst.Height()
	xb, yb := (ticks+1)*w/zoomTicks, (ticks+1)*h/zoomTicks
	dst.Clear()
	dst.Blit(img, core.NewRect(xb, yb, w-2*xb, h-2*yb), xb, yb)
	dst.Present()
}

// zoomOut grows img out from the centre of dst.
func zoomOut(dst Surface, img *core.Screen, ticks int) {
	w, h := dst.Width(), dst.Height()
	xb, yb := (zoomTicks-ticks)*w/zoomTicks, (zoomTicks-ticks)*h/zoomTicks
	dst.Clear()
	dst.Blit(img, core.NewRect(xb, yb, w-2*xb, h-2*yb), xb, yb)
	dst.Present()
}

// wipe slides next in over old from the edge opposite boundary b.
func wipe(dst Surface, old, next *core.Screen, b core.Boundary, ticks int) {
	w, h := dst.Width(), dst.Height()
	xs, ys := ticks*w/wipeTicks, ticks*h/wipeTicks
	switch b {
	case core.BoundaryUp:
		dst.Blit(old, core.NewRect(0, 0, w, h-ys), 0, ys)
		dst.Blit(next, core.NewRect(0, h-ys, w, ys), 0, 0)
	case core.BoundaryDown:
		dst.Blit(old, core.NewRect(0, ys, w, h-ys), 0, 0)
		dst.Blit(next, core.NewRect(0, 0, w, ys), 0, h-ys)
	case core.BoundaryLeft:
		dst.Blit(old, core.NewRect(0, 0, w-xs, h), xs, 0)
		dst.Blit(next, core.NewRect(w-xs, 0, xs, h), 0, 0)
	default:
		dst.Blit(old, core.NewRect(xs, 0, w-xs, h), 0, 0)
		dst.Blit(next, core.NewRect(0, 0, xs, h), w-xs, 0)
	}
	dst.Present()
}

// drawStatus draws keys, lives, the checkpoint flag and the coin count
// along the top row.
func drawStatus(dst *core.Screen, p *sprite.Player, totalCoins int) {
	dst.DrawText(1, 0, "⚷", core.ColorBrightYellow)
	dst.DrawText(2, 0, fmt.Sprintf("%d", p.Keys()), core.ColorBrightWhite)
	dst.DrawText(5, 0, "♥", core.ColorBrightRed)
	dst.DrawText(6, 0, fmt.Sprintf("%d", p.Lives()), core.ColorBrightWhite)
	if p.HasCheckpoint() {
		dst.DrawText(9, 0, "⚑", core.ColorBrightMagenta)
	}

	coins := fmt.Sprintf("%d/%d", p.Coins(), totalCoins)
	x := dst.Width() - len(coins) - 1
	dst.DrawText(x-2, 0, "●", core.ColorBrightYellow)
	dst.DrawText(x, 0, coins, core.ColorBrightWhite)
}

// textRows returns the rows of the three top lines and two prompt lines of
// the game over and end game screens.
func textRows(h int) (top [3]int, low [2]int) {
	y := h / 4
	top = [3]int{y, y + 2, y + 4}
	low = [2]int{h - y - 2, h - y}
	return top, low
}
