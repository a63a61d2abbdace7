package fern

import (
	"errors"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Color implements color.Color so it can be passed straight to
// GraphicsContext.FillRect.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA returns alpha-premultiplied 16-bit components, satisfying color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 0xffff)
	r = uint32(clamp01(c.R) * clamp01(c.A) * 0xffff)
	g = uint32(clamp01(c.G) * clamp01(c.A) * 0xffff)
	b = uint32(clamp01(c.B) * clamp01(c.A) * 0xffff)
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var _ color.Color = Color{}

// Vec2 is a 2D vector used for positions, offsets, sizes, and anchors
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// CoordPlane selects the coordinate space an entity is positioned in.
type CoordPlane uint8

const (
	// World entities are offset by the scene camera.
	World CoordPlane = iota
	// Screen entities are fixed to the viewport and ignore the camera.
	Screen
)

// String returns the plane name.
func (p CoordPlane) String() string {
	switch p {
	case World:
		return "world"
	case Screen:
		return "screen"
	default:
		return "unknown"
	}
}

var (
	// ErrReentrant is returned when Render is called while a frame is
	// already being rendered on the same Renderer.
	ErrReentrant = errors.New("fern: render pass re-entered")

	// ErrNotLoaded is returned when a resource is used before Load completed.
	ErrNotLoaded = errors.New("fern: resource not loaded")
)
