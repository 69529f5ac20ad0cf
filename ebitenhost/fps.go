package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is redrawn.
const fpsRefresh = 0.5

// fpsOverlay shows FPS, TPS and the live particle count in the top-left
// corner.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
	ready bool
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 fits three DebugPrint lines.
	return &fpsOverlay{img: ebiten.NewImage(120, 48), since: fpsRefresh}
}

func (o *fpsOverlay) update(dt float64, live int) {
	o.since += dt
	if o.since < fpsRefresh {
		return
	}
	o.since = 0
	o.ready = true

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nlive: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), live))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if !o.ready {
		return
	}
	screen.DrawImage(o.img, nil)
}
