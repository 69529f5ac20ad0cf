// Package ecs bridges falling frame statistics into a [Donburi] world.
//
// [NewDonburiSink] returns a falling.EventSink that publishes one
// [FrameEventType] event per rendered frame. Subscribe to it from ECS
// systems and drain the queue with ProcessEvents:
//
//	scene.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.FrameEventType.Subscribe(world, onFrame)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
