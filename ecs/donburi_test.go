package ecs

import (
	"testing"

	"github.com/phanxgames/falling"
	"github.com/phanxgames/falling/gghost"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func newScene(t *testing.T, frequency int) *falling.Scene {
	t.Helper()
	opts := falling.DefaultOptions()
	opts.Frequency = frequency
	cfg, err := opts.Config()
	if err != nil {
		t.Fatal(err)
	}
	scene, err := falling.NewScene(gghost.New(64, 64), cfg)
	if err != nil {
		t.Fatal(err)
	}
	scene.SetSource(falling.NewSource(3))
	scene.Resize()
	return scene
}

func TestNewDonburiSink(t *testing.T) {
	if NewDonburiSink(donburi.NewWorld()) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitFrame(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []falling.FrameStats
	FrameEventType.Subscribe(world, func(w donburi.World, s falling.FrameStats) {
		received = append(received, s)
	})

	sink.EmitFrame(falling.FrameStats{Frame: 1, Spawned: 2, Live: 2})
	sink.EmitFrame(falling.FrameStats{Frame: 2, Spawned: 2, Removed: 1, Live: 3})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	FrameEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Frame != 1 || received[1].Frame != 2 {
		t.Errorf("frames = %d, %d", received[0].Frame, received[1].Frame)
	}
	if received[1].Removed != 1 || received[1].Live != 3 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_SceneFrames(t *testing.T) {
	world := donburi.NewWorld()
	scene := newScene(t, 2)
	scene.SetEventSink(NewDonburiSink(world))

	var received []falling.FrameStats
	FrameEventType.Subscribe(world, func(w donburi.World, s falling.FrameStats) {
		received = append(received, s)
	})

	for range 3 {
		scene.Render()
	}
	events.ProcessAllEvents(world)

	if len(received) != 3 {
		t.Fatalf("expected 3 events, got %d", len(received))
	}
	for i, s := range received {
		if s.Frame != uint64(i+1) {
			t.Errorf("event %d Frame = %d", i, s.Frame)
		}
		if s.Spawned != 2 {
			t.Errorf("event %d Spawned = %d, want 2", i, s.Spawned)
		}
	}
	if last := received[2]; last.Live != scene.Len() {
		t.Errorf("Live = %d, scene.Len = %d", last.Live, scene.Len())
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	FrameEventType.Subscribe(world, func(w donburi.World, s falling.FrameStats) {
		count1++
	})
	FrameEventType.Subscribe(world, func(w donburi.World, s falling.FrameStats) {
		count2++
	})

	sink.EmitFrame(falling.FrameStats{Frame: 7})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
