// Package falling renders a "falling particles" effect (snow, confetti,
// drifting glyphs) onto a 2D drawing surface attached to a host element.
//
// Particles spawn along the top edge of a stage, fall with a constant
// per-frame speed and horizontal drift, and are recycled once they pass
// the bottom edge. The package owns only the simulation and the render
// loop; the host environment (element lookup, surface creation, frame
// scheduling) is injected through the [Host] interface.
//
// # Quick start
//
//	cfg := falling.DefaultConfig()
//	scene, err := falling.NewScene(host, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene.Resize()      // once, and again whenever the mount element changes size
//	for range frames {
//		scene.Render()  // once per animation frame
//	}
//
// Ready-made hosts live in subpackages: [ebitenhost] draws into an
// Ebitengine window, [gghost] renders offscreen with gg and exports PNG
// frames, and [termhost] uses terminal cells as pixels via tcell.
//
// # Randomness
//
// Every random draw goes through a [Source]. Scenes start with a randomly
// seeded generator; call [Scene.SetSource] with [NewSource] or any custom
// implementation to get reproducible runs.
//
// # Frame events
//
// An optional [EventSink] receives a [FrameStats] after every Render. The
// falling/ecs module provides a Donburi adapter.
//
// [ebitenhost]: https://pkg.go.dev/github.com/phanxgames/falling/ebitenhost
// [gghost]: https://pkg.go.dev/github.com/phanxgames/falling/gghost
// [termhost]: https://pkg.go.dev/github.com/phanxgames/falling/termhost
package falling
