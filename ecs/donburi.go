package ecs

import (
	"github.com/phanxgames/falling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FrameEventType is the Donburi event type for per-frame statistics.
var FrameEventType = events.NewEventType[falling.FrameStats]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued until FrameEventType.ProcessEvents (or events.ProcessAllEvents)
// runs.
func NewDonburiSink(world donburi.World) falling.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitFrame(stats falling.FrameStats) {
	FrameEventType.Publish(s.world, stats)
}
