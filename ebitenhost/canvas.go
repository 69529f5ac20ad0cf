package ebitenhost

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/falling"
)

// arcSegments is the number of triangles used for a full turn when an arc
// is not a complete circle.
const arcSegments = 48

// Canvas is an offscreen *ebiten.Image. It has no image until it is given
// a positive size.
type Canvas struct {
	image  *ebiten.Image
	w, h   int
	fonts  *fontCache
	ctx    *Context
	parent *Element
}

// SetSize reallocates the backing image. The previous image is released
// immediately.
func (c *Canvas) SetSize(width, height int) {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
	c.w, c.h = width, height
	if width <= 0 || height <= 0 {
		return
	}
	c.image = ebiten.NewImage(width, height)
}

// Size returns the current pixel size.
func (c *Canvas) Size() (width, height int) { return c.w, c.h }

// Image returns the backing image, or nil for an unsized canvas.
func (c *Canvas) Image() *ebiten.Image { return c.image }

// Context2D returns the canvas' drawing context. It is created once and
// survives SetSize.
func (c *Canvas) Context2D() (falling.Context2D, error) {
	if c.ctx == nil {
		c.ctx = &Context{canvas: c}
	}
	return c.ctx, nil
}

// Dispose releases the backing image.
func (c *Canvas) Dispose() {
	c.SetSize(0, 0)
}

// Context implements falling.Context2D with ebiten's vector and text
// packages. Fills are anti-aliased.
type Context struct {
	canvas *Canvas
	colors falling.ColorCache
	fill   color.NRGBA
	font   falling.Font

	verts []ebiten.Vertex
	inds  []uint16
}

// ClearRect makes the covered pixels transparent.
func (x *Context) ClearRect(rx, ry, rw, rh float64) {
	img := x.canvas.image
	if img == nil {
		return
	}
	r := image.Rect(
		int(math.Floor(rx)), int(math.Floor(ry)),
		int(math.Ceil(rx+rw)), int(math.Ceil(ry+rh)),
	).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	if r == img.Bounds() {
		img.Clear()
		return
	}
	img.SubImage(r).(*ebiten.Image).Clear()
}

// BeginPath is a no-op; every fill call draws immediately.
func (x *Context) BeginPath() {}

// ClosePath is a no-op; every fill call draws immediately.
func (x *Context) ClosePath() {}

// SetFillStyle sets the fill color for subsequent fills.
func (x *Context) SetFillStyle(c string) {
	x.fill = x.colors.Resolve(c)
}

// FillArc fills the region bounded by the arc and its chord. A sweep of a
// full turn or more is drawn as a circle.
func (x *Context) FillArc(cx, cy, radius, startAngle, endAngle float64) {
	img := x.canvas.image
	if img == nil || radius <= 0 {
		return
	}
	sweep := endAngle - startAngle
	if math.Abs(sweep) >= 2*math.Pi {
		vector.DrawFilledCircle(img, float32(cx), float32(cy), float32(radius), x.fill, true)
		return
	}
	x.fillSegment(img, cx, cy, radius, startAngle, sweep)
}

// fillSegment draws the arc as a triangle fan anchored at its first point.
func (x *Context) fillSegment(img *ebiten.Image, cx, cy, radius, start, sweep float64) {
	x.verts, x.inds = arcFan(x.verts[:0], x.inds[:0], cx, cy, radius, start, sweep, x.fill)
	if len(x.inds) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	img.DrawTriangles(x.verts, x.inds, ensureWhitePixel(), op)
}

// arcFan appends the vertices and indices of the chord-bounded segment
// from start to start+sweep. Sweeps too small for one triangle append
// nothing.
func arcFan(verts []ebiten.Vertex, inds []uint16, cx, cy, radius, start, sweep float64, c color.NRGBA) ([]ebiten.Vertex, []uint16) {
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * arcSegments))
	if n < 2 {
		return verts, inds
	}
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	base := uint16(len(verts))
	for i := 0; i <= n; i++ {
		t := start + sweep*float64(i)/float64(n)
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(cx + radius*math.Cos(t)),
			DstY:   float32(cy + radius*math.Sin(t)),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	for i := 1; i < n; i++ {
		inds = append(inds, base, base+uint16(i), base+uint16(i+1))
	}
	return verts, inds
}

// FillRect fills an axis-aligned rectangle.
func (x *Context) FillRect(rx, ry, rw, rh float64) {
	img := x.canvas.image
	if img == nil {
		return
	}
	vector.DrawFilledRect(img, float32(rx), float32(ry), float32(rw), float32(rh), x.fill, true)
}

// SetFont selects the face used by FillText.
func (x *Context) SetFont(f falling.Font) {
	x.font = f
}

// FillText draws s with its alphabetic baseline at y.
func (x *Context) FillText(s string, tx, ty float64) {
	img := x.canvas.image
	if img == nil || s == "" {
		return
	}
	face := x.canvas.fonts.face(x.font)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(tx, ty-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(x.fill)
	text.Draw(img, s, face, op)
}

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily created 1x1 white image used as the
// source of untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
