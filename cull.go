package fern

// UpdateOffscreen sets Actor.OffScreen for every actor entity by testing
// the actor's transformed bounding box against viewport. World-plane actors
// are projected through cam when cam is non-nil. Entities without an Actor
// are never culled and are left untouched.
func UpdateOffscreen(entities []*Entity, cam *Camera, viewport Rect) {
	view := identityTransform
	if cam != nil {
		view = cam.ViewMatrix()
	}
	for _, e := range entities {
		a := e.Actor
		if a == nil || e.Transform == nil {
			continue
		}
		m := e.Transform.Matrix()
		if e.Transform.Plane == World {
			m = multiplyAffine(view, m)
		}
		x := -a.Width * a.Anchor.X
		y := -a.Height * a.Anchor.Y
		if a.Width == 0 && a.Height == 0 {
			// Size unknown; keep it visible.
			a.OffScreen = false
			continue
		}
		aabb := transformedAABB(m, x, y, a.Width, a.Height)
		a.OffScreen = !aabb.Intersects(viewport)
	}
}
