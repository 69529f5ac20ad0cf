package ebitenhost

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fader tweens the layer alpha from 0 to 1. A zero duration starts fully
// opaque.
type fader struct {
	tween *gween.Tween
	alpha float64
	done  bool
}

func newFader(d time.Duration) *fader {
	if d <= 0 {
		return &fader{alpha: 1, done: true}
	}
	return &fader{tween: gween.New(0, 1, float32(d.Seconds()), ease.OutQuad)}
}

// update advances the tween by dt seconds.
func (f *fader) update(dt float32) {
	if f.done {
		return
	}
	val, finished := f.tween.Update(dt)
	f.alpha = float64(val)
	if finished {
		f.alpha = 1
		f.done = true
	}
}
