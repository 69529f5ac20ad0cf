package ebitenhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/falling"
)

// RunConfig configures the window and the compositing of scene layers.
type RunConfig struct {
	Title string
	// Width and Height are the initial window size. Zero uses 800x600.
	Width, Height int
	// Resizable lets the user resize the window; scenes follow.
	Resizable bool
	// Background fills the screen under the particles. Empty means black.
	Background string
	// FadeIn tweens the particle layers from transparent to opaque.
	FadeIn time.Duration
	// ShowFPS draws an FPS/TPS overlay.
	ShowFPS bool
}

// Game implements ebiten.Game for a set of scenes sharing one Host.
type Game struct {
	host   *Host
	scenes []*falling.Scene
	bg     color.Color
	fade   *fader
	fps    *fpsOverlay
	sized  bool
}

// NewGame builds the ebiten.Game that Run executes. It is exported so the
// game can be embedded in a larger ebiten program.
func NewGame(host *Host, scenes []*falling.Scene, cfg RunConfig) (*Game, error) {
	g := &Game{
		host:   host,
		scenes: scenes,
		bg:     color.Black,
		fade:   newFader(cfg.FadeIn),
	}
	if cfg.Background != "" {
		c, err := falling.ParseColor(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		g.bg = c
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g, nil
}

// Update advances the fade and the FPS overlay.
func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	g.fade.update(float32(dt))
	if g.fps != nil {
		live := 0
		for _, s := range g.scenes {
			live += s.Len()
		}
		g.fps.update(dt, live)
	}
	return nil
}

// Draw renders one frame of every scene and composites the canvases.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	for _, s := range g.scenes {
		s.Render()
	}
	g.composite(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *Game) composite(screen *ebiten.Image) {
	for _, el := range g.host.order {
		origin := el.Bounds().Min
		for _, c := range el.children {
			if c.image == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(origin.X), float64(origin.Y))
			op.ColorScale.ScaleAlpha(float32(g.fade.alpha))
			screen.DrawImage(c.image, op)
		}
	}
}

// Layout follows the window size and resizes every scene when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.host.setSize(outsideWidth, outsideHeight) || !g.sized {
		g.sized = true
		for _, s := range g.scenes {
			s.Resize()
		}
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and blocks until it is closed.
func Run(host *Host, scenes []*falling.Scene, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = 800, 600
	}
	g, err := NewGame(host, scenes, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(g)
}
