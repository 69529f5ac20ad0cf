package falling

import "time"

// FrameStats summarizes one Render call.
type FrameStats struct {
	Frame   uint64        // 1-based frame number
	Spawned int           // particles created this frame
	Removed int           // dead particles dropped by compaction
	Culled  int           // particles that crossed the bottom edge this frame
	Live    int           // particles in the live set after the step
	Elapsed time.Duration // wall time spent in Render
}

// EventSink is the interface for optional frame-event integration.
// When set on a Scene, a FrameStats value is emitted after every Render.
type EventSink interface {
	EmitFrame(stats FrameStats)
}
