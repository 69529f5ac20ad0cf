package falling

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for strings it cannot read.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor converts a palette entry into a color. It accepts "#rgb" and
// "#rrggbb" hex strings and CSS color names ("white", "skyblue"), ignoring
// case and surrounding space.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
		}
		r, g, b := c.Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}
	if s == "transparent" {
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w %q: unknown name", ErrInvalidColor, s)
}

// ColorCache memoizes ParseColor for drawing backends. Unparseable colors
// resolve to opaque white and are reported once on stderr. The zero value
// is ready to use.
type ColorCache struct {
	m map[string]color.NRGBA
}

var colorFallback = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Resolve returns the parsed color for s.
func (c *ColorCache) Resolve(s string) color.NRGBA {
	if v, ok := c.m[s]; ok {
		return v
	}
	if c.m == nil {
		c.m = make(map[string]color.NRGBA)
	}
	v, err := ParseColor(s)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[falling] warning: %v, using white\n", err)
		v = colorFallback
	}
	c.m[s] = v
	return v
}
