// Package ebitenhost runs falling scenes in an Ebitengine window.
//
// A Host exposes the window as the "body" element and any number of named
// regions ("#id") positioned inside it. Each scene canvas is an offscreen
// *ebiten.Image that the Game composites onto the screen every frame.
package ebitenhost

import (
	"fmt"
	"image"
	"strings"

	"github.com/phanxgames/falling"
)

// Host implements falling.Host for an Ebitengine window. The body element
// always matches the size reported by the last Layout call.
type Host struct {
	width, height int
	body          *Element
	regions       map[string]*Element
	order         []*Element
	fonts         *fontCache
}

// New returns a host whose window starts at width x height.
func New(width, height int) *Host {
	h := &Host{
		width:   width,
		height:  height,
		regions: make(map[string]*Element),
		fonts:   newFontCache(),
	}
	h.body = &Element{host: h, id: "body", body: true}
	h.order = append(h.order, h.body)
	return h
}

// Body returns the element that covers the whole window.
func (h *Host) Body() *Element { return h.body }

// Size returns the current window size in pixels.
func (h *Host) Size() (width, height int) { return h.width, h.height }

// AddRegion registers a region addressable as "#id". Bounds are in window
// coordinates and are clipped to the window when measured. Adding an
// existing id moves that region.
func (h *Host) AddRegion(id string, bounds image.Rectangle) *Element {
	if el, ok := h.regions[id]; ok {
		el.bounds = bounds.Canon()
		return el
	}
	el := &Element{host: h, id: id, bounds: bounds.Canon()}
	h.regions[id] = el
	h.order = append(h.order, el)
	return el
}

// Query resolves "body" or "#id".
func (h *Host) Query(selector string) (falling.Element, bool) {
	selector = strings.TrimSpace(selector)
	if selector == "body" {
		return h.body, true
	}
	if id, ok := strings.CutPrefix(selector, "#"); ok && id != "" {
		if el, ok := h.regions[id]; ok {
			return el, true
		}
	}
	return nil, false
}

// CreateCanvas returns a detached, unsized canvas.
func (h *Host) CreateCanvas() (falling.Canvas, error) {
	return &Canvas{fonts: h.fonts}, nil
}

// setSize records a new window size and reports whether it changed.
func (h *Host) setSize(width, height int) bool {
	if width == h.width && height == h.height {
		return false
	}
	h.width, h.height = width, height
	return true
}

// Element is a rectangular area of the window that canvases attach to.
type Element struct {
	host     *Host
	id       string
	body     bool
	bounds   image.Rectangle
	children []*Canvas
}

// ID returns the element id ("body" for the window element).
func (e *Element) ID() string { return e.id }

// Bounds returns the visible area in window coordinates.
func (e *Element) Bounds() image.Rectangle {
	window := image.Rect(0, 0, e.host.width, e.host.height)
	if e.body {
		return window
	}
	return e.bounds.Intersect(window)
}

// ClientSize returns the visible width and height.
func (e *Element) ClientSize() (width, height int) {
	b := e.Bounds()
	return b.Dx(), b.Dy()
}

// AppendChild attaches a canvas created by this package.
func (e *Element) AppendChild(c falling.Canvas) error {
	canvas, ok := c.(*Canvas)
	if !ok {
		return fmt.Errorf("ebitenhost: cannot attach %T", c)
	}
	if canvas.parent != nil {
		return fmt.Errorf("ebitenhost: canvas already attached to %q", canvas.parent.id)
	}
	canvas.parent = e
	e.children = append(e.children, canvas)
	return nil
}

// Canvases returns the attached canvases in attach order.
func (e *Element) Canvases() []*Canvas {
	return e.children
}
