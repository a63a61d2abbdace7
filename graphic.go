package fern

import (
	"image"
	"image/color"
)

// Graphic is visual content with an intrinsic size and scale.
//
// Draw paints the content with its top-left corner at (x, y) in the
// context's active transform. The graphic applies its own Scale.
type Graphic interface {
	Width() float64
	Height() float64
	Scale() Vec2
	Draw(ctx GraphicsContext, x, y float64) error
}

// Ticker is implemented by graphics whose content changes over time.
// Graphics.Update forwards the frame delta to the current graphic when it
// implements Ticker.
type Ticker interface {
	Tick(delta float64)
}

// Sprite draws an image.
type Sprite struct {
	Image          image.Image
	ScaleX, ScaleY float64
}

// NewSprite returns a sprite drawing img at unit scale.
func NewSprite(img image.Image) *Sprite {
	return &Sprite{Image: img, ScaleX: 1, ScaleY: 1}
}

// Width returns the unscaled image width.
func (s *Sprite) Width() float64 {
	if s.Image == nil {
		return 0
	}
	return float64(s.Image.Bounds().Dx())
}

// Height returns the unscaled image height.
func (s *Sprite) Height() float64 {
	if s.Image == nil {
		return 0
	}
	return float64(s.Image.Bounds().Dy())
}

// Scale returns the sprite scale.
func (s *Sprite) Scale() Vec2 {
	return Vec2{s.ScaleX, s.ScaleY}
}

// Draw paints the image at (x, y).
func (s *Sprite) Draw(ctx GraphicsContext, x, y float64) error {
	if s.Image == nil {
		return nil
	}
	if s.ScaleX == 1 && s.ScaleY == 1 {
		return ctx.DrawImage(s.Image, x, y)
	}
	ctx.Save()
	ctx.Translate(x, y)
	ctx.Scale(s.ScaleX, s.ScaleY)
	err := ctx.DrawImage(s.Image, 0, 0)
	ctx.Restore()
	return err
}

// Rectangle is a solid color box.
type Rectangle struct {
	W, H           float64
	Color          color.Color
	ScaleX, ScaleY float64
}

// NewRectangle returns a w×h rectangle of color c at unit scale.
func NewRectangle(w, h float64, c color.Color) *Rectangle {
	return &Rectangle{W: w, H: h, Color: c, ScaleX: 1, ScaleY: 1}
}

func (r *Rectangle) Width() float64  { return r.W }
func (r *Rectangle) Height() float64 { return r.H }
func (r *Rectangle) Scale() Vec2     { return Vec2{r.ScaleX, r.ScaleY} }

// Draw fills the rectangle at (x, y).
func (r *Rectangle) Draw(ctx GraphicsContext, x, y float64) error {
	return ctx.FillRect(x, y, r.W*r.ScaleX, r.H*r.ScaleY, r.Color)
}
