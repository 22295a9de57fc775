package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

const (
	blockRune = '█'
	ballRune  = '●'
)

// Canvas projects world-pixel drawing calls onto a character screen.
// Every cell covers worldW/cols by worldH/rows pixels.
type Canvas struct {
	screen *core.Screen
	worldW float64
	worldH float64
	bg     core.Color
}

// NewCanvas creates a canvas of cols x rows cells showing a world of
// worldW x worldH pixels.
func NewCanvas(cols, rows int, worldW, worldH float64) *Canvas {
	return &Canvas{
		screen: core.NewScreen(max(cols, 1), max(rows, 1)),
		worldW: worldW,
		worldH: worldH,
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Background returns the color of the last Clear.
func (c *Canvas) Background() core.Color {
	return c.bg
}

// Resize changes the cell grid; the world size stays the same.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(max(cols, 1), max(rows, 1))
}

func (c *Canvas) cellW() float64 { return c.worldW / float64(c.screen.Width()) }
func (c *Canvas) cellH() float64 { return c.worldH / float64(c.screen.Height()) }

// span maps a pixel interval to a half-open cell interval, at least one cell wide.
func span(from, size, cell float64) (int, int) {
	start := int(math.Round(from / cell))
	end := int(math.Round((from + size) / cell))
	if end <= start {
		end = start + 1
	}
	return start, end
}

// Clear blanks the screen and remembers the background color.
func (c *Canvas) Clear(bg core.Color) {
	c.bg = bg
	c.screen.Clear()
}

// DrawRect fills the cells covered by r.
func (c *Canvas) DrawRect(r core.Rect, color core.Color) {
	x0, x1 := span(r.X, r.W, c.cellW())
	y0, y1 := span(r.Y, r.H, c.cellH())
	c.screen.FillRect(x0, y0, x1-x0, y1-y0, core.Cell{Rune: blockRune, Color: color})
}

// DrawCircle marks the cell containing the center.
func (c *Canvas) DrawCircle(center core.Vec, _ float64, color core.Color) {
	x := int(math.Floor(center.X / c.cellW()))
	y := int(math.Floor(center.Y / c.cellH()))
	c.screen.SetCell(x, y, core.Cell{Rune: ballRune, Color: color})
}

// DrawText writes text at the cell nearest pos. Large text is bold, framed,
// and shifted so it stays on screen.
func (c *Canvas) DrawText(text string, pos core.Vec, large bool) {
	x := int(math.Round(pos.X / c.cellW()))
	y := int(math.Round(pos.Y / c.cellH()))
	if !large {
		c.screen.DrawText(x, y, text, core.ColorWhite, false)
		return
	}

	w := utf8.RuneCountInString(text) + 4
	x = core.Clamp(x, 0, max(c.screen.Width()-w, 0))
	y = core.Clamp(y, 1, max(c.screen.Height()-2, 1))

	c.screen.FillRect(x, y-1, w, 3, core.Cell{Rune: ' '})
	c.screen.DrawBox(x, y-1, w, 3, core.ColorWhite)
	c.screen.DrawText(x+2, y, text, core.ColorWhite, true)
}
