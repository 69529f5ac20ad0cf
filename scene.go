package falling

import (
	"fmt"
	"time"
)

// Scene owns the live particle set of one mounted effect and drives the
// per-frame cycle. A Scene starts unsized (0×0 stage); call Resize before
// the first meaningful frame and whenever the mount element changes size.
//
// Scene is not safe for concurrent use. Render and Resize must run on the
// goroutine that drives the frame loop.
type Scene struct {
	config Config
	el     Element
	canvas Canvas
	ctx    Context2D
	src    Source
	sink   EventSink
	debug  bool

	particles   []Particle
	stageWidth  float64
	stageHeight float64
	frame       uint64
	warnedLive  bool
}

// NewScene creates a drawing surface, attaches it to the element matched by
// cfg's mount selector and returns an unsized Scene. It fails with
// ErrMountNotFound or ErrSurfaceUnavailable.
func NewScene(host Host, cfg Config) (*Scene, error) {
	el, ok := host.Query(cfg.mountSelector)
	if !ok || el == nil {
		return nil, fmt.Errorf("%w: %q", ErrMountNotFound, cfg.mountSelector)
	}
	canvas, err := host.CreateCanvas()
	if err != nil {
		return nil, fmt.Errorf("%w: create canvas: %w", ErrSurfaceUnavailable, err)
	}
	if err := el.AppendChild(canvas); err != nil {
		return nil, fmt.Errorf("%w: attach to %q: %w", ErrSurfaceUnavailable, cfg.mountSelector, err)
	}
	ctx, err := canvas.Context2D()
	if err != nil {
		return nil, fmt.Errorf("%w: 2d context: %w", ErrSurfaceUnavailable, err)
	}
	return &Scene{
		config: cfg,
		el:     el,
		canvas: canvas,
		ctx:    ctx,
		src:    newRandomSource(),
	}, nil
}

// Config returns the scene's configuration.
func (s *Scene) Config() Config {
	return s.config
}

// Canvas returns the drawing surface attached by NewScene.
func (s *Scene) Canvas() Canvas {
	return s.canvas
}

// StageSize returns the stage dimensions recorded by the last Resize.
func (s *Scene) StageSize() (width, height float64) {
	return s.stageWidth, s.stageHeight
}

// Len returns the number of particles in the live set, including those
// flagged dead that have not been compacted yet.
func (s *Scene) Len() int {
	return len(s.particles)
}

// Particles returns a copy of the live set in render order.
func (s *Scene) Particles() []Particle {
	return append([]Particle(nil), s.particles...)
}

// Frame returns the number of completed Render calls.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// SetSource replaces the random source used for spawning.
func (s *Scene) SetSource(src Source) {
	s.src = src
}

// SetEventSink sets the optional frame-event bridge. Pass nil to disable.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables per-frame stats logging to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Resize re-reads the mount element's client size and applies it to the
// stage and to the drawing surface. Particles are not moved; any that now
// sit below the bottom edge are culled by the next Render.
func (s *Scene) Resize() {
	w, h := s.el.ClientSize()
	s.stageWidth = float64(w)
	s.stageHeight = float64(h)
	s.canvas.SetSize(w, h)
}

// Render runs one frame: clear, spawn, compact, then step every particle.
// A particle that crosses the bottom edge is still drawn in that frame and
// dropped by the next frame's compaction.
func (s *Scene) Render() {
	var t0 time.Time
	if s.debug || s.sink != nil {
		t0 = time.Now()
	}

	s.clear()
	spawned := s.spawn()
	removed := s.compact()
	culled := s.step()
	s.frame++

	if !s.debug && s.sink == nil {
		return
	}
	stats := FrameStats{
		Frame:   s.frame,
		Spawned: spawned,
		Removed: removed,
		Culled:  culled,
		Live:    len(s.particles),
		Elapsed: time.Since(t0),
	}
	s.debugLog(stats)
	s.debugCheckLiveCount()
	if s.sink != nil {
		s.sink.EmitFrame(stats)
	}
}

// clear wipes the whole stage.
func (s *Scene) clear() {
	s.ctx.ClearRect(0, 0, s.stageWidth, s.stageHeight)
}

// spawn appends SpawnRate new particles and returns how many were added.
func (s *Scene) spawn() int {
	n := s.config.spawnRate
	for i := 0; i < n; i++ {
		s.particles = append(s.particles, SpawnParticle(&s.config, s.stageWidth, s.src))
	}
	return n
}

// compact drops dead particles in place, keeping survivors in order, and
// returns how many were dropped.
func (s *Scene) compact() int {
	live := s.particles[:0]
	for _, p := range s.particles {
		if p.Alive() {
			live = append(live, p)
		}
	}
	removed := len(s.particles) - len(live)
	clear(s.particles[len(live):])
	s.particles = live
	return removed
}

// step advances, culls and draws every particle in order and returns how
// many were flagged dead.
func (s *Scene) step() int {
	culled := 0
	for i := range s.particles {
		p := &s.particles[i]
		if p.Advance() > s.stageHeight {
			p.kill()
			culled++
		}
		p.Draw(s.ctx)
	}
	return culled
}
