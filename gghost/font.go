package gghost

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/phanxgames/falling"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	mono bool
	size int
}

// fontCache maps generic font families onto the Go fonts and caches one
// face per size. "monospace" uses Go Mono; every other family uses Go
// Regular.
type fontCache struct {
	regular *truetype.Font
	mono    *truetype.Font
	faces   map[faceKey]font.Face
}

func newFontCache() *fontCache {
	return &fontCache{faces: make(map[faceKey]font.Face)}
}

// face returns the face for f, or nil when f has no drawable size or the
// embedded font data cannot be parsed.
func (c *fontCache) face(f falling.Font) font.Face {
	if f.Size <= 0 {
		return nil
	}
	key := faceKey{mono: strings.EqualFold(strings.TrimSpace(f.Family), "monospace"), size: f.Size}
	if face, ok := c.faces[key]; ok {
		return face
	}
	ttf, err := c.load(key.mono)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[falling] gghost: %v\n", err)
		return nil
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(f.Size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[key] = face
	return face
}

func (c *fontCache) load(mono bool) (*truetype.Font, error) {
	if mono {
		if c.mono == nil {
			f, err := truetype.Parse(gomono.TTF)
			if err != nil {
				return nil, fmt.Errorf("parse font: %w", err)
			}
			c.mono = f
		}
		return c.mono, nil
	}
	if c.regular == nil {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		c.regular = f
	}
	return c.regular, nil
}
