package fern

// EntityID identifies an entity. Its value is opaque to the renderer.
type EntityID uint64

// Entity is the render pass's view of an entity: an identity plus the
// components the renderer reads. Actor is an optional extension record;
// entities without one render without anchor, culling, or actor opacity.
type Entity struct {
	ID        EntityID
	Transform *Transform
	Graphics  *Graphics
	Actor     *Actor
}

// EntitySource supplies the entities with both a transform and a graphics
// component for the current frame. The returned slice may be reordered by
// the caller but its entities must not be added or removed mid-frame.
type EntitySource interface {
	RenderEntities() []*Entity
}

// Opacity is an optional opacity value. The zero value is unset.
type Opacity struct {
	Value float64
	Set   bool
}

// OpacityOf returns a set Opacity.
func OpacityOf(v float64) Opacity {
	return Opacity{Value: v, Set: true}
}

// Or returns the value if set and def otherwise.
func (o Opacity) Or(def float64) float64 {
	if o.Set {
		return o.Value
	}
	return def
}

// Actor extends an entity with a logical bounding box, an anchor, a culling
// flag, and an opacity multiplier.
type Actor struct {
	Width, Height float64
	// Anchor is the normalized pivot inside the bounding box; (0.5, 0.5)
	// centers the box on the transform position.
	Anchor Vec2
	// OffScreen skips the entity entirely during rendering.
	OffScreen bool
	Opacity   Opacity
}

// NewActor returns an actor of the given size anchored at its center.
func NewActor(width, height float64) *Actor {
	return &Actor{Width: width, Height: height, Anchor: Vec2{0.5, 0.5}}
}

// anchorOffset returns the translation that moves the anchor point onto the
// transform origin, and the secondary offset that keeps content of a
// different scaled size aligned to the same anchor. g may be nil.
func (a *Actor) anchorOffset(g Graphic) (tx, ty, ox, oy float64) {
	tx = -(a.Width * a.Anchor.X)
	ty = -(a.Height * a.Anchor.Y)
	if g == nil {
		return tx, ty, 0, 0
	}
	s := g.Scale()
	ox = (a.Width - g.Width()*s.X) * a.Anchor.X
	oy = (a.Height - g.Height()*s.Y) * a.Anchor.Y
	return tx, ty, ox, oy
}
