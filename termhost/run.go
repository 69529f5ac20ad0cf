package termhost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/falling"
)

// DefaultTick is the frame interval used when RunConfig.Tick is zero.
const DefaultTick = 16 * time.Millisecond // ~60 FPS

// RunConfig controls the terminal loop.
type RunConfig struct {
	// Tick is the time between frames.
	Tick time.Duration
	// Background paints every cell before the particles. Empty keeps the
	// terminal's default background.
	Background string
}

// Run draws scenes on the host's screen until ctx is cancelled or the user
// presses Esc, Ctrl-C or q. Scenes are resized once before the first frame
// and again on every terminal resize.
func Run(ctx context.Context, host *Host, scenes []*falling.Scene, cfg RunConfig) error {
	tick := cfg.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	style := tcell.StyleDefault
	if cfg.Background != "" {
		c, err := falling.ParseColor(cfg.Background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		style = style.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}

	screen := host.screen
	for _, s := range scenes {
		s.Resize()
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				for _, s := range scenes {
					s.Resize()
				}
			}

		case <-ticker.C:
			frame(host, scenes, style)
		}
	}
}

// frame renders every scene and shows the result.
func frame(host *Host, scenes []*falling.Scene, bg tcell.Style) {
	host.screen.Fill(' ', bg)
	for _, s := range scenes {
		s.Render()
	}
	host.draw(bg)
	host.screen.Show()
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
