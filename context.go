package fern

import (
	"image"
	"image/color"
)

// GraphicsContext is the 2D drawing surface the render pass drives.
//
// Save and Restore form a LIFO stack over the active transform, depth, and
// opacity. Translate, Rotate, and Scale post-multiply the active transform,
// so later calls act in the local frame established by earlier ones.
// Implementations must preserve call order.
type GraphicsContext interface {
	Clear()
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(radians float64)
	Scale(x, y float64)

	Z() float64
	SetZ(z float64)
	Opacity() float64
	SetOpacity(opacity float64)

	// DrawImage paints img with its top-left corner at (x, y) in the
	// active transform, multiplied by the active opacity.
	DrawImage(img image.Image, x, y float64) error
	// FillRect paints a solid rectangle in the active transform.
	FillRect(x, y, w, h float64, c color.Color) error

	// Flush signals the end of a frame. Backends that defer work present
	// or submit it here.
	Flush() error
}

// contextState is the portion of a context saved by Save.
type contextState struct {
	transform [6]float64
	z         float64
	opacity   float64
}

// stateStack is the shared Save/Restore bookkeeping used by the in-package
// backends.
type stateStack struct {
	cur   contextState
	saved []contextState
}

func newStateStack() stateStack {
	return stateStack{cur: contextState{transform: identityTransform, opacity: 1}}
}

func (s *stateStack) save() {
	s.saved = append(s.saved, s.cur)
}

// restore pops the last saved state. Unbalanced restores are ignored.
func (s *stateStack) restore() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

func (s *stateStack) reset() {
	s.cur = contextState{transform: identityTransform, opacity: 1}
	s.saved = s.saved[:0]
}

func (s *stateStack) translate(x, y float64) {
	s.cur.transform = multiplyAffine(s.cur.transform, translateAffine(x, y))
}

func (s *stateStack) rotate(r float64) {
	s.cur.transform = multiplyAffine(s.cur.transform, rotateAffine(r))
}

func (s *stateStack) scale(x, y float64) {
	s.cur.transform = multiplyAffine(s.cur.transform, scaleAffine(x, y))
}
