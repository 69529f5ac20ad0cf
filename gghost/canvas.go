package gghost

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"github.com/phanxgames/falling"
)

// Canvas is an offscreen RGBA surface backed by a gg.Context. A Canvas has
// no pixels until it is given a positive size.
type Canvas struct {
	dc     *gg.Context
	w, h   int
	fonts  *fontCache
	ctx    *Context
	parent *Element
}

// SetSize reallocates the surface. Contents and drawing state are reset,
// matching what a browser canvas does on resize.
func (c *Canvas) SetSize(width, height int) {
	c.w, c.h = width, height
	if width <= 0 || height <= 0 {
		c.dc = nil
		return
	}
	c.dc = gg.NewContext(width, height)
}

// Size returns the current pixel size.
func (c *Canvas) Size() (width, height int) {
	return c.w, c.h
}

// Context2D returns the canvas' drawing context. The same Context is
// returned on every call and stays valid across SetSize.
func (c *Canvas) Context2D() (falling.Context2D, error) {
	if c.ctx == nil {
		c.ctx = &Context{canvas: c}
	}
	return c.ctx, nil
}

// Image returns the current pixels, or nil for an unsized canvas.
func (c *Canvas) Image() image.Image {
	if c.dc == nil {
		return nil
	}
	return c.dc.Image()
}

// SavePNG writes the current pixels to path.
func (c *Canvas) SavePNG(path string) error {
	if c.dc == nil {
		return errEmptyCanvas
	}
	return c.dc.SavePNG(path)
}

// Context implements falling.Context2D on top of gg. Fill style and font
// are kept here rather than on the gg.Context so they survive SetSize.
type Context struct {
	canvas *Canvas
	colors falling.ColorCache
	fill   color.NRGBA
	font   falling.Font
}

func (x *Context) dc() *gg.Context {
	return x.canvas.dc
}

// ClearRect makes the covered pixels fully transparent.
func (x *Context) ClearRect(rx, ry, rw, rh float64) {
	dc := x.dc()
	if dc == nil {
		return
	}
	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return
	}
	r := image.Rect(
		int(math.Floor(rx)), int(math.Floor(ry)),
		int(math.Ceil(rx+rw)), int(math.Ceil(ry+rh)),
	).Intersect(img.Bounds())
	draw.Draw(img, r, image.Transparent, image.Point{}, draw.Src)
}

// BeginPath discards any pending path.
func (x *Context) BeginPath() {
	if dc := x.dc(); dc != nil {
		dc.ClearPath()
	}
}

// ClosePath closes the current subpath.
func (x *Context) ClosePath() {
	if dc := x.dc(); dc != nil {
		dc.ClosePath()
	}
}

// SetFillStyle sets the fill color for subsequent fills.
func (x *Context) SetFillStyle(c string) {
	x.fill = x.colors.Resolve(c)
}

// FillArc fills the arc from startAngle to endAngle.
func (x *Context) FillArc(cx, cy, radius, startAngle, endAngle float64) {
	dc := x.dc()
	if dc == nil || radius <= 0 {
		return
	}
	dc.SetColor(x.fill)
	dc.NewSubPath()
	dc.DrawArc(cx, cy, radius, startAngle, endAngle)
	dc.Fill()
}

// FillRect fills an axis-aligned rectangle.
func (x *Context) FillRect(rx, ry, rw, rh float64) {
	dc := x.dc()
	if dc == nil {
		return
	}
	dc.SetColor(x.fill)
	dc.DrawRectangle(rx, ry, rw, rh)
	dc.Fill()
}

// SetFont selects the face used by FillText.
func (x *Context) SetFont(f falling.Font) {
	x.font = f
}

// FillText draws text with its baseline at y.
func (x *Context) FillText(text string, tx, ty float64) {
	dc := x.dc()
	if dc == nil || text == "" {
		return
	}
	face := x.canvas.fonts.face(x.font)
	if face == nil {
		return
	}
	dc.SetFontFace(face)
	dc.SetColor(x.fill)
	dc.DrawString(text, tx, ty)
}
