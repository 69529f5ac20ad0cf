package ebitenhost

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/phanxgames/falling"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type faceKey struct {
	mono bool
	size int
}

// fontCache maps CSS generic families onto the embedded Go fonts.
// "monospace" uses Go Mono, everything else Go Regular.
type fontCache struct {
	regular *text.GoTextFaceSource
	mono    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

func newFontCache() *fontCache {
	return &fontCache{faces: make(map[faceKey]*text.GoTextFace)}
}

// face returns nil for sizes that cannot be drawn.
func (c *fontCache) face(f falling.Font) *text.GoTextFace {
	if f.Size <= 0 {
		return nil
	}
	key := faceKey{mono: strings.EqualFold(strings.TrimSpace(f.Family), "monospace"), size: f.Size}
	if face, ok := c.faces[key]; ok {
		return face
	}
	src, err := c.source(key.mono)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[falling] ebitenhost: %v\n", err)
		return nil
	}
	face := &text.GoTextFace{Source: src, Size: float64(f.Size)}
	c.faces[key] = face
	return face
}

func (c *fontCache) source(mono bool) (*text.GoTextFaceSource, error) {
	slot, data := &c.regular, goregular.TTF
	if mono {
		slot, data = &c.mono, gomono.TTF
	}
	if *slot == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
		*slot = src
	}
	return *slot, nil
}
