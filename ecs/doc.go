// Package ecs connects fern's render pass to a [Donburi] world.
//
// Entities carrying both [Transform] and [Graphics] are rendered; entities
// that also carry [Actor] get anchor alignment, culling, and actor opacity.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.NewEntity(world, fern.NewTransform(), fern.NewGraphics(sprite), fern.NewActor(32, 32))
//	scene.SetEntitySource(ecs.NewSource(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
