package fern

import "testing"

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Camera() != nil {
		t.Error("new scene has a camera")
	}
	if n := len(s.Entities()); n != 0 {
		t.Errorf("entities = %d, want 0", n)
	}
}

func TestSceneSetCamera(t *testing.T) {
	s := NewScene()
	cam := NewCamera(Rect{Width: 320, Height: 240})
	s.SetCamera(cam)
	if s.Camera() != cam {
		t.Error("Camera() did not return the bound camera")
	}
	s.SetCamera(nil)
	if s.Camera() != nil {
		t.Error("SetCamera(nil) did not unbind")
	}
}

func TestSceneNewEntityAssignsIDs(t *testing.T) {
	s := NewScene()
	a := s.NewEntity(NewTransform(), NewGraphics(nil))
	b := s.NewEntity(NewTransform(), NewGraphics(nil))
	if a.ID != 1 || b.ID != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", a.ID, b.ID)
	}
	if a.Transform == b.Transform || a.Graphics == b.Graphics {
		t.Error("entities share component storage")
	}
}

func TestSceneRenderEntitiesFiltersIncomplete(t *testing.T) {
	s := NewScene()
	full := s.NewEntity(NewTransform(), NewGraphics(nil))
	tr := NewTransform()
	s.Add(&Entity{ID: 10, Transform: &tr})
	g := NewGraphics(nil)
	s.Add(&Entity{ID: 11, Graphics: &g})

	got := s.RenderEntities()
	if len(got) != 1 || got[0] != full {
		t.Errorf("RenderEntities = %v, want only the complete entity", got)
	}
}

func TestSceneRemovePreservesOrder(t *testing.T) {
	s := NewScene()
	a := s.NewEntity(NewTransform(), NewGraphics(nil))
	b := s.NewEntity(NewTransform(), NewGraphics(nil))
	c := s.NewEntity(NewTransform(), NewGraphics(nil))
	s.Remove(b)
	s.Remove(&Entity{}) // not present

	got := s.Entities()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("Entities = %v, want [a c]", got)
	}
}

type staticSource []*Entity

func (s staticSource) RenderEntities() []*Entity { return s }

func TestSceneEntitySource(t *testing.T) {
	s := NewScene()
	s.NewEntity(NewTransform(), NewGraphics(nil))
	tr, g := NewTransform(), NewGraphics(nil)
	src := staticSource{{ID: 7, Transform: &tr, Graphics: &g}}

	s.SetEntitySource(src)
	if got := s.Entities(); len(got) != 1 || got[0].ID != 7 {
		t.Errorf("Entities with source = %v, want the source's entity", got)
	}
	s.SetEntitySource(nil)
	if got := s.Entities(); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Entities without source = %v, want the scene's entity", got)
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.DebugMode() {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.DebugMode() {
		t.Error("debug should be false")
	}
}
