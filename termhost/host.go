// Package termhost runs falling scenes in a terminal through tcell.
//
// Every terminal cell is one pixel: a 3px flake covers a handful of cells
// and text flakes print their runes directly. The caller owns the screen
// lifecycle (Init and Fini); Run only draws and reads events.
package termhost

import (
	"fmt"
	"image"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/falling"
)

// Host implements falling.Host on a tcell.Screen. "body" is the whole
// screen; regions added with AddRegion are addressed as "#id".
type Host struct {
	screen  tcell.Screen
	body    *Element
	regions map[string]*Element
	order   []*Element
}

// New wraps an initialized screen.
func New(screen tcell.Screen) *Host {
	h := &Host{screen: screen, regions: make(map[string]*Element)}
	h.body = &Element{host: h, id: "body", body: true}
	h.order = append(h.order, h.body)
	return h
}

// Screen returns the wrapped screen.
func (h *Host) Screen() tcell.Screen { return h.screen }

// Body returns the element covering the whole screen.
func (h *Host) Body() *Element { return h.body }

// AddRegion registers a region in cell coordinates. Adding an existing id
// moves it.
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

// CreateCanvas returns a detached, unsized cell canvas.
func (h *Host) CreateCanvas() (falling.Canvas, error) {
	return &Canvas{}, nil
}

// draw copies every attached canvas onto the screen at its element origin.
func (h *Host) draw(bg tcell.Style) {
	for _, el := range h.order {
		b := el.Bounds()
		for _, c := range el.children {
			c.blit(h.screen, b, bg)
		}
	}
}

// Element is a rectangle of cells that canvases attach to.
type Element struct {
	host     *Host
	id       string
	body     bool
	bounds   image.Rectangle
	children []*Canvas
}

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// Bounds returns the visible cells in screen coordinates.
func (e *Element) Bounds() image.Rectangle {
	w, h := e.host.screen.Size()
	screen := image.Rect(0, 0, w, h)
	if e.body {
		return screen
	}
	return e.bounds.Intersect(screen)
}

// ClientSize returns the visible size in cells.
func (e *Element) ClientSize() (width, height int) {
	b := e.Bounds()
	return b.Dx(), b.Dy()
}

// AppendChild attaches a canvas created by this package.
func (e *Element) AppendChild(c falling.Canvas) error {
	canvas, ok := c.(*Canvas)
	if !ok {
		return fmt.Errorf("termhost: cannot attach %T", c)
	}
	if canvas.parent != nil {
		return fmt.Errorf("termhost: canvas already attached to %q", canvas.parent.id)
	}
	canvas.parent = e
	e.children = append(e.children, canvas)
	return nil
}

// Canvases returns the attached canvases in attach order.
func (e *Element) Canvases() []*Canvas { return e.children }
