package falling

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Deterministic source ---

// seqSource replays fixed sequences. Float64 and IntN cycle through their
// own slices; the call counters let tests assert that no draw happened.
type seqSource struct {
	floats     []float64
	ints       []int
	fi, ii     int
	floatCalls int
	intCalls   int
}

func (s *seqSource) Float64() float64 {
	s.floatCalls++
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *seqSource) IntN(n int) int {
	s.intCalls++
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

// --- Recording context ---

type drawOp struct {
	name string
	args []float64
	str  string
}

func (o drawOp) String() string {
	return fmt.Sprintf("%s%v%q", o.name, o.args, o.str)
}

type recordingContext struct {
	ops []drawOp
}

func (c *recordingContext) record(name, str string, args ...float64) {
	c.ops = append(c.ops, drawOp{name: name, args: args, str: str})
}

func (c *recordingContext) ClearRect(x, y, w, h float64) { c.record("ClearRect", "", x, y, w, h) }
func (c *recordingContext) BeginPath()                   { c.record("BeginPath", "") }
func (c *recordingContext) ClosePath()                   { c.record("ClosePath", "") }
func (c *recordingContext) SetFillStyle(color string)    { c.record("SetFillStyle", color) }
func (c *recordingContext) FillArc(x, y, r, a0, a1 float64) {
	c.record("FillArc", "", x, y, r, a0, a1)
}
func (c *recordingContext) FillRect(x, y, w, h float64) { c.record("FillRect", "", x, y, w, h) }
func (c *recordingContext) SetFont(f Font)              { c.record("SetFont", f.String()) }
func (c *recordingContext) FillText(text string, x, y float64) {
	c.record("FillText", text, x, y)
}

// count returns how many recorded ops have the given name.
func (c *recordingContext) count(name string) int {
	n := 0
	for _, op := range c.ops {
		if op.name == name {
			n++
		}
	}
	return n
}

func (c *recordingContext) reset() {
	c.ops = c.ops[:0]
}

// --- Fake host ---

type fakeCanvas struct {
	ctx    *recordingContext
	w, h   int
	resize int
	ctxErr error
}

func (c *fakeCanvas) SetSize(w, h int) {
	c.w, c.h = w, h
	c.resize++
}

func (c *fakeCanvas) Context2D() (Context2D, error) {
	if c.ctxErr != nil {
		return nil, c.ctxErr
	}
	return c.ctx, nil
}

type fakeElement struct {
	w, h      int
	children  []Canvas
	appendErr error
}

func (e *fakeElement) ClientSize() (int, int) { return e.w, e.h }

func (e *fakeElement) AppendChild(c Canvas) error {
	if e.appendErr != nil {
		return e.appendErr
	}
	e.children = append(e.children, c)
	return nil
}

type fakeHost struct {
	elements  map[string]*fakeElement
	canvas    *fakeCanvas
	canvasErr error
}

func newFakeHost(w, h int) *fakeHost {
	return &fakeHost{
		elements: map[string]*fakeElement{"body": {w: w, h: h}},
		canvas:   &fakeCanvas{ctx: &recordingContext{}},
	}
}

func (h *fakeHost) Query(selector string) (Element, bool) {
	el, ok := h.elements[selector]
	if !ok {
		return nil, false
	}
	return el, true
}

func (h *fakeHost) CreateCanvas() (Canvas, error) {
	if h.canvasErr != nil {
		return nil, h.canvasErr
	}
	return h.canvas, nil
}

var errHostBroken = errors.New("host broken")

// mustConfig builds a Config or fails the test.
func mustConfig(t *testing.T, spawnRate int, radius, speed, angle Range, palette []string, variant FlakeType) Config {
	t.Helper()
	cfg, err := NewConfig(spawnRate, radius, speed, angle, palette, variant, "*", "body")
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return cfg
}

// newTestScene builds a Scene on a fake host with a deterministic source.
func newTestScene(t *testing.T, cfg Config, w, h int, src Source) (*Scene, *fakeHost) {
	t.Helper()
	host := newFakeHost(w, h)
	s, err := NewScene(host, cfg)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	s.SetSource(src)
	return s, host
}
