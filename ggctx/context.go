// Package ggctx implements fern.GraphicsContext on a gogpu/gg software
// context for headless rendering.
//
// Paints are immediate: Z is tracked so it can be read back but does not
// reorder paints. Callers that need depth ordering must issue paints in
// depth order, which fern's render pass already does.
package ggctx

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/phanxgames/fern"
)

type state struct {
	z       float64
	opacity float64
}

// Context adapts a *gg.Context. Save and Restore map to Push and Pop.
type Context struct {
	dc *gg.Context
	// ClearColor fills the surface on Clear. Transparent by default.
	ClearColor fern.Color

	cur    state
	saved  []state
	images map[image.Image]*gg.ImageBuf
}

// New creates a context over a fresh width×height surface.
func New(width, height int) *Context {
	return Wrap(gg.NewContext(width, height))
}

// Wrap adapts an existing gg context.
func Wrap(dc *gg.Context) *Context {
	return &Context{
		dc:     dc,
		cur:    state{opacity: 1},
		images: make(map[image.Image]*gg.ImageBuf),
	}
}

// GG returns the wrapped gg context.
func (c *Context) GG() *gg.Context { return c.dc }

// Image returns the rendered surface.
func (c *Context) Image() image.Image { return c.dc.Image() }

// Close releases the wrapped gg context.
func (c *Context) Close() error { return c.dc.Close() }

func (c *Context) Clear() {
	c.dc.Identity()
	c.cur = state{opacity: 1}
	c.saved = c.saved[:0]
	if c.ClearColor.A == 0 {
		c.dc.Clear()
		return
	}
	cc := c.ClearColor
	c.dc.ClearWithColor(gg.RGBA2(cc.R, cc.G, cc.B, cc.A))
}

func (c *Context) Save() {
	c.dc.Push()
	c.saved = append(c.saved, c.cur)
}

func (c *Context) Restore() {
	n := len(c.saved)
	if n == 0 {
		return
	}
	c.dc.Pop()
	c.cur = c.saved[n-1]
	c.saved = c.saved[:n-1]
}

func (c *Context) Translate(x, y float64) { c.dc.Translate(x, y) }
func (c *Context) Rotate(radians float64) { c.dc.Rotate(radians) }
func (c *Context) Scale(x, y float64)     { c.dc.Scale(x, y) }

func (c *Context) Z() float64                 { return c.cur.z }
func (c *Context) SetZ(z float64)             { c.cur.z = z }
func (c *Context) Opacity() float64           { return c.cur.opacity }
func (c *Context) SetOpacity(opacity float64) { c.cur.opacity = opacity }

// DrawImage draws img at (x, y). gg samples images into the transformed
// axis-aligned destination rectangle, so rotation is not applied to image
// content. Converted buffers are cached by image identity.
func (c *Context) DrawImage(img image.Image, x, y float64) error {
	if img == nil || c.cur.opacity <= 0 {
		return nil
	}
	buf, ok := c.images[img]
	if !ok {
		buf = gg.ImageBufFromImage(img)
		c.images[img] = buf
	}
	c.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:             x,
		Y:             y,
		Interpolation: gg.InterpBilinear,
		Opacity:       min(c.cur.opacity, 1),
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// FillRect fills a rectangle path in the active transform.
func (c *Context) FillRect(x, y, w, h float64, col color.Color) error {
	if col == nil || c.cur.opacity <= 0 {
		return nil
	}
	rgba := gg.FromColor(col)
	if rgba.A == 0 {
		return nil
	}
	c.dc.SetRGBA(rgba.R/rgba.A, rgba.G/rgba.A, rgba.B/rgba.A, rgba.A*c.cur.opacity)
	c.dc.DrawRectangle(x, y, w, h)
	return c.dc.Fill()
}

// Flush pushes pending accelerator work into the surface.
func (c *Context) Flush() error {
	return c.dc.FlushGPU()
}

var _ fern.GraphicsContext = (*Context)(nil)
