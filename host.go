package falling

import "errors"

var (
	// ErrMountNotFound is returned by NewScene when the mount selector
	// matches no element.
	ErrMountNotFound = errors.New("falling: mount element not found")
	// ErrSurfaceUnavailable is returned by NewScene when the host cannot
	// create, attach or provide a 2D context for the drawing surface.
	ErrSurfaceUnavailable = errors.New("falling: drawing surface unavailable")
)

// Host is the environment a Scene is mounted into. It resolves selectors to
// elements and creates drawing surfaces.
type Host interface {
	// Query returns the element matching selector, if any.
	Query(selector string) (Element, bool)
	// CreateCanvas creates a detached drawing surface.
	CreateCanvas() (Canvas, error)
}

// Element is a host element a Canvas can be attached to.
type Element interface {
	// ClientSize returns the content-box size in device-independent units.
	ClientSize() (width, height int)
	// AppendChild attaches c as a child of the element.
	AppendChild(c Canvas) error
}

// Canvas is a drawing surface with an assignable pixel size.
type Canvas interface {
	SetSize(width, height int)
	Context2D() (Context2D, error)
}

// Context2D is the immediate-mode drawing capability of a Canvas. Colors are
// passed through as strings; implementations resolve them (see ParseColor).
type Context2D interface {
	ClearRect(x, y, w, h float64)
	BeginPath()
	ClosePath()
	SetFillStyle(color string)
	// FillArc fills the arc of the circle at (x, y) from startAngle to
	// endAngle (radians, clockwise from the positive x axis).
	FillArc(x, y, radius, startAngle, endAngle float64)
	FillRect(x, y, w, h float64)
	SetFont(f Font)
	// FillText draws text with its alphabetic baseline at y.
	FillText(text string, x, y float64)
}
