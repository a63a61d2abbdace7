package fern

import "math"

// Transform positions an entity. It is owned by the entity, mutated by
// gameplay systems, and read-only to the render pass.
type Transform struct {
	Pos      Vec2
	Rotation float64 // radians
	Scale    Vec2
	// Z is the draw-order key; lower values draw first.
	Z     float64
	Plane CoordPlane
}

// NewTransform returns a world-plane transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{Scale: Vec2{1, 1}}
}

// SetPosition sets Pos.
func (t *Transform) SetPosition(x, y float64) {
	t.Pos = Vec2{x, y}
}

// SetScale sets Scale.
func (t *Transform) SetScale(sx, sy float64) {
	t.Scale = Vec2{sx, sy}
}

// Matrix returns the local affine matrix in the order the render pass
// applies it: Translate(Pos) * Rotate(Rotation) * Scale(Scale).
func (t *Transform) Matrix() [6]float64 {
	sin, cos := math.Sincos(t.Rotation)
	sx, sy := t.Scale.X, t.Scale.Y
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, t.Pos.X, t.Pos.Y}
}

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

func translateAffine(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

func rotateAffine(r float64) [6]float64 {
	sin, cos := math.Sincos(r)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

func scaleAffine(x, y float64) [6]float64 {
	return [6]float64{x, 0, 0, y, 0, 0}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformedAABB computes the axis-aligned bounding box of the rectangle
// (x, y, w, h) transformed by m.
func transformedAABB(m [6]float64, x, y, w, h float64) Rect {
	x0, y0 := transformPoint(m, x, y)
	x1, y1 := transformPoint(m, x+w, y)
	x2, y2 := transformPoint(m, x+w, y+h)
	x3, y3 := transformPoint(m, x, y+h)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
