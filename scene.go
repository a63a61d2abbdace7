package fern

// Scene owns at most one camera and supplies the entities rendered each
// frame.
type Scene struct {
	camera   *Camera
	entities []*Entity
	source   EntitySource
	debug    bool
	nextID   EntityID
}

// NewScene creates an empty scene with no camera.
func NewScene() *Scene {
	return &Scene{}
}

// Camera returns the bound camera, or nil.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetCamera binds cam to the scene. Pass nil to unbind. Do not rebind
// during a render pass.
func (s *Scene) SetCamera(cam *Camera) {
	s.camera = cam
}

// NewEntity creates an entity with the given transform and graphics, adds
// it to the scene's own entity list, and returns it.
func (s *Scene) NewEntity(t Transform, g Graphics) *Entity {
	s.nextID++
	e := &Entity{ID: s.nextID, Transform: &t, Graphics: &g}
	s.entities = append(s.entities, e)
	return e
}

// Add appends e to the scene's own entity list.
func (s *Scene) Add(e *Entity) {
	s.entities = append(s.entities, e)
}

// Remove removes e from the scene's own entity list, preserving order.
func (s *Scene) Remove(e *Entity) {
	for i, x := range s.entities {
		if x == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}

// RenderEntities returns the scene's own entities that have both a
// transform and a graphics component.
func (s *Scene) RenderEntities() []*Entity {
	out := make([]*Entity, 0, len(s.entities))
	for _, e := range s.entities {
		if e.Transform != nil && e.Graphics != nil {
			out = append(out, e)
		}
	}
	return out
}

// SetEntitySource replaces the scene's own entity list as the frame's
// entity supply. Pass nil to go back to the scene's list.
func (s *Scene) SetEntitySource(src EntitySource) {
	s.source = src
}

// Entities returns this frame's renderable entities.
func (s *Scene) Entities() []*Entity {
	if s.source != nil {
		return s.source.RenderEntities()
	}
	return s.RenderEntities()
}

// SetDebugMode enables or disables per-frame stats logging through
// Logger at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (s *Scene) DebugMode() bool {
	return s.debug
}
