package termhost

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/falling"
)

// blockRune fills cells painted by FillArc and FillRect.
const blockRune = '█'

type cell struct {
	r  rune
	fg tcell.Color
}

// Canvas is a grid of cells. A zero rune means the cell is empty.
type Canvas struct {
	cells  []cell
	w, h   int
	ctx    *Context
	parent *Element
}

// SetSize reallocates the grid; all cells become empty.
func (c *Canvas) SetSize(width, height int) {
	c.w, c.h = width, height
	if width <= 0 || height <= 0 {
		c.cells = nil
		return
	}
	c.cells = make([]cell, width*height)
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (width, height int) { return c.w, c.h }

// Context2D returns the canvas' drawing context.
func (c *Canvas) Context2D() (falling.Context2D, error) {
	if c.ctx == nil {
		c.ctx = &Context{canvas: c, fill: tcell.ColorWhite}
	}
	return c.ctx, nil
}

// Rune returns the rune at (x, y), or 0 when empty or out of range.
func (c *Canvas) Rune(x, y int) rune {
	if c.cells == nil || x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.cells[y*c.w+x].r
}

func (c *Canvas) set(x, y int, r rune, fg tcell.Color) {
	if c.cells == nil || x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, fg: fg}
}

// blit writes non-empty cells into the screen, clipped to bounds.
func (c *Canvas) blit(screen tcell.Screen, bounds image.Rectangle, bg tcell.Style) {
	for y := 0; y < c.h && bounds.Min.Y+y < bounds.Max.Y; y++ {
		for x := 0; x < c.w && bounds.Min.X+x < bounds.Max.X; x++ {
			cl := c.cells[y*c.w+x]
			if cl.r == 0 {
				continue
			}
			screen.SetContent(bounds.Min.X+x, bounds.Min.Y+y, cl.r, nil,
				bg.Foreground(cl.fg))
		}
	}
}

// Context implements falling.Context2D on cells. Paths and fonts have no
// meaning on a cell grid and are accepted and ignored.
type Context struct {
	canvas *Canvas
	colors falling.ColorCache
	fill   tcell.Color
	hidden bool
}

// ClearRect empties the covered cells.
func (x *Context) ClearRect(rx, ry, rw, rh float64) {
	c := x.canvas
	if c.cells == nil {
		return
	}
	r := cellRect(rx, ry, rw, rh).Intersect(image.Rect(0, 0, c.w, c.h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		clear(c.cells[y*c.w+r.Min.X : y*c.w+r.Max.X])
	}
}

func (x *Context) BeginPath() {}

func (x *Context) ClosePath() {}

// SetFillStyle sets the foreground color. Fully transparent colors make
// later fills invisible.
func (x *Context) SetFillStyle(s string) {
	c := x.colors.Resolve(s)
	x.hidden = c.A == 0
	x.fill = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FillArc marks every cell whose center lies inside the circle. The
// center cell is always marked so that sub-cell flakes stay visible.
// Arc angles are ignored.
func (x *Context) FillArc(cx, cy, radius, _, _ float64) {
	c := x.canvas
	if c.cells == nil || x.hidden || radius <= 0 {
		return
	}
	r := cellRect(cx-radius, cy-radius, 2*radius, 2*radius)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for xx := r.Min.X; xx < r.Max.X; xx++ {
			dx, dy := float64(xx)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= radius*radius {
				c.set(xx, y, blockRune, x.fill)
			}
		}
	}
	c.set(int(math.Floor(cx)), int(math.Floor(cy)), blockRune, x.fill)
}

// FillRect marks every cell the rectangle touches.
func (x *Context) FillRect(rx, ry, rw, rh float64) {
	c := x.canvas
	if c.cells == nil || x.hidden {
		return
	}
	r := cellRect(rx, ry, rw, rh)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for xx := r.Min.X; xx < r.Max.X; xx++ {
			c.set(xx, y, blockRune, x.fill)
		}
	}
}

func (x *Context) SetFont(falling.Font) {}

// FillText writes the runes of s left to right in the row containing y.
func (x *Context) FillText(s string, tx, ty float64) {
	c := x.canvas
	if c.cells == nil || x.hidden {
		return
	}
	col, row := int(math.Floor(tx)), int(math.Floor(ty))
	for _, r := range s {
		c.set(col, row, r, x.fill)
		col++
	}
}

// cellRect returns the cells touched by a rectangle in pixel space.
func cellRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}
