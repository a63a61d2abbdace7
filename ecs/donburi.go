package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/fern"
)

// Component types. Transform and Graphics default to a unit-scale world
// transform and an opaque, empty graphics component.
var (
	Transform = donburi.NewComponentType[fern.Transform](fern.NewTransform())
	Graphics  = donburi.NewComponentType[fern.Graphics](fern.NewGraphics(nil))
	Actor     = donburi.NewComponentType[fern.Actor](fern.Actor{Anchor: fern.Vec2{X: 0.5, Y: 0.5}})
)

// FrameRendered is published after every completed frame drawn by a
// RenderSystem.
type FrameRendered struct {
	Entities int
	Delta    float64
}

// FrameRenderedType is the Donburi event type for FrameRendered. Subscribe
// to it and call ProcessEvents to react to rendered frames.
var FrameRenderedType = events.NewEventType[FrameRendered]()

// NewEntity creates an entity with a transform, a graphics component, and,
// when actor is non-nil, an actor extension.
func NewEntity(w donburi.World, t fern.Transform, g fern.Graphics, actor *fern.Actor) donburi.Entity {
	comps := []donburi.IComponentType{Transform, Graphics}
	if actor != nil {
		comps = append(comps, Actor)
	}
	e := w.Create(comps...)
	entry := w.Entry(e)
	Transform.SetValue(entry, t)
	Graphics.SetValue(entry, g)
	if actor != nil {
		Actor.SetValue(entry, *actor)
	}
	return e
}

// Source is a fern.EntitySource backed by a Donburi query over
// Transform and Graphics.
type Source struct {
	world donburi.World
	query *donburi.Query
	buf   []fern.Entity
	ptrs  []*fern.Entity
}

// NewSource creates a Source over world.
func NewSource(world donburi.World) *Source {
	return &Source{
		world: world,
		query: donburi.NewQuery(filter.Contains(Transform, Graphics)),
	}
}

// RenderEntities returns views of every matching entity in query order.
// The returned entities point into component storage and are valid until
// the world is structurally changed; the slice is reused by the next call.
func (s *Source) RenderEntities() []*fern.Entity {
	s.buf = s.buf[:0]
	s.query.Each(s.world, func(entry *donburi.Entry) {
		e := fern.Entity{
			ID:        fern.EntityID(entry.Entity()),
			Transform: Transform.Get(entry),
			Graphics:  Graphics.Get(entry),
		}
		if entry.HasComponent(Actor) {
			e.Actor = Actor.Get(entry)
		}
		s.buf = append(s.buf, e)
	})
	s.ptrs = s.ptrs[:0]
	for i := range s.buf {
		s.ptrs = append(s.ptrs, &s.buf[i])
	}
	return s.ptrs
}

var _ fern.EntitySource = (*Source)(nil)

// RenderSystem renders a Donburi world through a fern.Renderer.
type RenderSystem struct {
	world    donburi.World
	source   *Source
	renderer *fern.Renderer
}

// NewRenderSystem binds renderer to world.
func NewRenderSystem(world donburi.World, renderer *fern.Renderer) *RenderSystem {
	return &RenderSystem{world: world, source: NewSource(world), renderer: renderer}
}

// Source returns the system's entity source.
func (s *RenderSystem) Source() *Source {
	return s.source
}

// Draw renders one frame and publishes FrameRendered on success.
func (s *RenderSystem) Draw(delta float64) error {
	entities := s.source.RenderEntities()
	if err := s.renderer.Render(entities, delta); err != nil {
		return err
	}
	FrameRenderedType.Publish(s.world, FrameRendered{Entities: len(entities), Delta: delta})
	return nil
}
