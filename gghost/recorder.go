package gghost

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/phanxgames/falling"
)

var errEmptyCanvas = errors.New("gghost: canvas has no pixels (call Scene.Resize first)")

// Recorder renders a scene frame by frame and writes PNG files.
type Recorder struct {
	// Dir is the output directory, created if missing. Empty means ".".
	Dir string
	// Prefix starts every file name; unsafe characters become underscores.
	Prefix string
	// Every writes only every n-th frame. Values below 1 mean every frame.
	Every int
	// Background, when set, is painted under the particles (any color
	// accepted by falling.ParseColor). Empty keeps transparency.
	Background string
}

// Record calls scene.Render frames times and returns the written paths.
// The scene must be mounted on a gghost Host and resized.
func (r *Recorder) Record(scene *falling.Scene, frames int) ([]string, error) {
	canvas, ok := scene.Canvas().(*Canvas)
	if !ok {
		return nil, fmt.Errorf("gghost: scene canvas is %T, not a gghost canvas", scene.Canvas())
	}
	dir := r.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	every := max(r.Every, 1)
	prefix := sanitizeLabel(r.Prefix)

	var paths []string
	for i := 1; i <= frames; i++ {
		scene.Render()
		if i%every != 0 {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%04d.png", prefix, i))
		if err := r.write(canvas, path); err != nil {
			return paths, fmt.Errorf("write frame %d: %w", i, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (r *Recorder) write(c *Canvas, path string) error {
	if r.Background == "" {
		return c.SavePNG(path)
	}
	img := c.Image()
	if img == nil {
		return errEmptyCanvas
	}
	bg, err := falling.ParseColor(r.Background)
	if err != nil {
		return err
	}
	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetColor(bg)
	dc.Clear()
	dc.DrawImage(img, 0, 0)
	return dc.SavePNG(path)
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "frame" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
