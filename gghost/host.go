// Package gghost is a headless falling.Host that rasterizes on the CPU with
// gg. It is useful for tests, thumbnails and exporting frame sequences.
//
//	host := gghost.New(640, 360)
//	scene, _ := falling.NewScene(host, cfg)
//	scene.Resize()
//	rec := gghost.Recorder{Dir: "frames", Prefix: "snow"}
//	paths, err := rec.Record(scene, 120)
package gghost

import (
	"fmt"
	"strings"

	"github.com/phanxgames/falling"
)

// Host holds a "body" element of a fixed size plus optional named regions
// addressed as "#id". Sizes change only through SetSize, which stands in
// for a layout change in a real host.
type Host struct {
	body    *Element
	regions map[string]*Element
	fonts   *fontCache
}

// New creates a host whose body element is width×height pixels.
func New(width, height int) *Host {
	return &Host{
		body:    &Element{id: "body", w: width, h: height},
		regions: make(map[string]*Element),
		fonts:   newFontCache(),
	}
}

// Body returns the body element.
func (h *Host) Body() *Element {
	return h.body
}

// AddRegion adds a named element of the given size, selectable as "#id".
// Adding an existing id resizes it.
func (h *Host) AddRegion(id string, width, height int) *Element {
	if el, ok := h.regions[id]; ok {
		el.SetSize(width, height)
		return el
	}
	el := &Element{id: id, w: width, h: height}
	h.regions[id] = el
	return el
}

// Query resolves "body" or "#id".
func (h *Host) Query(selector string) (falling.Element, bool) {
	selector = strings.TrimSpace(selector)
	if selector == "body" {
		return h.body, true
	}
	if id, ok := strings.CutPrefix(selector, "#"); ok {
		if el, ok := h.regions[id]; ok {
			return el, true
		}
	}
	return nil, false
}

// CreateCanvas returns a new, unsized Canvas.
func (h *Host) CreateCanvas() (falling.Canvas, error) {
	return &Canvas{fonts: h.fonts}, nil
}

// Element is a rectangular host element.
type Element struct {
	id       string
	w, h     int
	children []*Canvas
}

// ID returns the element id ("body" for the body element).
func (e *Element) ID() string {
	return e.id
}

// ClientSize returns the element size.
func (e *Element) ClientSize() (int, int) {
	return e.w, e.h
}

// SetSize changes the element size. Scenes see it on their next Resize.
func (e *Element) SetSize(width, height int) {
	e.w, e.h = width, height
}

// AppendChild attaches a Canvas created by this package.
func (e *Element) AppendChild(c falling.Canvas) error {
	gc, ok := c.(*Canvas)
	if !ok {
		return fmt.Errorf("gghost: cannot attach %T", c)
	}
	if gc.parent != nil {
		return fmt.Errorf("gghost: canvas already attached to %q", gc.parent.id)
	}
	gc.parent = e
	e.children = append(e.children, gc)
	return nil
}

// Canvases returns the attached canvases in attach order.
func (e *Element) Canvases() []*Canvas {
	return e.children
}
