package falling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FlakeType selects how a particle is drawn.
type FlakeType uint8

const (
	FlakeSquare FlakeType = iota // filled square with side 2×radius
	FlakeText                    // Config.Text drawn at radius×5 px
	FlakeCircle                  // filled disc
)

// ErrUnknownFlakeType is returned when a flake type name is not recognized.
var ErrUnknownFlakeType = errors.New("falling: unknown flake type")

var flakeTypeNames = [...]string{
	FlakeSquare: "Square",
	FlakeText:   "Text",
	FlakeCircle: "Circle",
}

// String returns the flake type name ("Square", "Text" or "Circle").
func (t FlakeType) String() string {
	if int(t) < len(flakeTypeNames) {
		return flakeTypeNames[t]
	}
	return "FlakeType(" + strconv.Itoa(int(t)) + ")"
}

// ParseFlakeType converts a name to a FlakeType. Matching is case-insensitive.
func ParseFlakeType(name string) (FlakeType, error) {
	name = strings.TrimSpace(name)
	for i, n := range flakeTypeNames {
		if strings.EqualFold(n, name) {
			return FlakeType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFlakeType, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t FlakeType) MarshalText() ([]byte, error) {
	if int(t) >= len(flakeTypeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFlakeType, t)
	}
	return []byte(flakeTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FlakeType) UnmarshalText(b []byte) error {
	v, err := ParseFlakeType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Range is a min/max pair used for the randomized particle attributes.
// Min == Max is a fixed value.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from src, or Min when the range
// is degenerate.
func (r Range) Random(src Source) float64 {
	return RandomFloat(src, r.Min, r.Max)
}

func (r Range) valid() bool {
	return r.Min <= r.Max
}

// Font describes the font a Context2D should use for FillText.
type Font struct {
	Size   int    // pixel size
	Family string // generic family, e.g. "serif"
}

// String formats the font in CSS shorthand, e.g. "15px serif".
func (f Font) String() string {
	return strconv.Itoa(f.Size) + "px " + f.Family
}
