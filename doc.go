// Package fern is the per-frame scene renderer for a 2D entity engine built
// on [Ebitengine].
//
// Each frame, a [Renderer] clears its [GraphicsContext], stably sorts the
// scene's entities by [Transform].Z, and draws every entity inside a
// Save/Restore scope. World-plane entities are drawn through the scene
// [Camera]; screen-plane entities ignore it. The frame ends with a single
// Flush.
//
// # Quick start
//
// [Engine] wires a scene to the ebiten game loop:
//
//	cfg, _ := fern.LoadConfigFile("fern.yaml")
//	scene := fern.NewScene()
//	scene.SetCamera(fern.NewCamera(fern.Rect{Width: 800, Height: 600}))
//	scene.NewEntity(fern.NewTransform(), fern.NewGraphics(
//		fern.NewRectangle(40, 40, fern.Color{R: 0.3, G: 0.7, B: 1, A: 1})))
//
//	engine, _ := fern.NewEngine(cfg, scene)
//	engine.Start(context.Background(), nil)
//	fern.Run(engine)
//
// For full control, drive a [Renderer] yourself with any [GraphicsContext]:
// [EbitenContext] for ebiten images, fern/ggctx for headless gogpu/gg
// surfaces, or [RecordingContext] in tests.
//
// # Entities
//
// An [Entity] pairs a [Transform] with a [Graphics] component. An optional
// [Actor] adds a logical bounding box with an anchor, an off-screen flag
// that skips the entity entirely, and an opacity multiplier. Entities come
// from the scene's own list or from an [EntitySource] such as the Donburi
// adapter in fern/ecs.
//
// # Graphics
//
// [Graphics] holds the graphic currently shown plus a library of named
// graphics. Built-in graphics are [Sprite], [Rectangle], [Animation], and
// [Canvas], which adapts a paint callback. Opacity fades and camera scrolls
// are tweened with [gween].
//
// # Loading
//
// [Loader] loads [Loadable] resources such as [ImageSource] concurrently and
// draws a progress bar until the scene starts.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package fern
