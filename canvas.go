package fern

// DrawHandler paints a Canvas. delta is always 0 when called through
// Execute; time advancement belongs to Graphics.Update.
type DrawHandler func(ctx GraphicsContext, delta float64)

// CanvasOptions configures a Canvas.
type CanvasOptions struct {
	DrawHandler DrawHandler
	// Width and Height are the logical content size used for anchoring.
	Width, Height float64
}

// DrawOptions is accepted by Canvas.Execute for parity with other raster
// graphics. Canvas does not read it.
type DrawOptions struct {
	X, Y    float64
	Opacity float64
}

// Canvas adapts a paint callback into a Graphic. It is created once and
// reused across frames; every Execute marks it dirty so no rasterized copy
// is ever reused.
type Canvas struct {
	options CanvasOptions
	scale   Vec2
	dirty   bool
}

// NewCanvas creates a Canvas from opts.
func NewCanvas(opts CanvasOptions) *Canvas {
	return &Canvas{options: opts, scale: Vec2{1, 1}}
}

// Execute invokes the draw handler with a zero delta and flags the canvas
// dirty.
func (c *Canvas) Execute(ctx GraphicsContext, _ *DrawOptions) {
	if c.options.DrawHandler != nil {
		c.options.DrawHandler(ctx, 0)
	}
	c.dirty = true
}

// IsDirty reports whether the content may have changed since ClearDirty.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// ClearDirty resets the dirty flag.
func (c *Canvas) ClearDirty() {
	c.dirty = false
}

func (c *Canvas) Width() float64  { return c.options.Width }
func (c *Canvas) Height() float64 { return c.options.Height }
func (c *Canvas) Scale() Vec2     { return c.scale }

// SetScale sets the canvas content scale.
func (c *Canvas) SetScale(sx, sy float64) {
	c.scale = Vec2{sx, sy}
}

// Draw executes the handler in a scope translated to (x, y) and scaled by
// the canvas scale.
func (c *Canvas) Draw(ctx GraphicsContext, x, y float64) error {
	ctx.Save()
	ctx.Translate(x, y)
	if c.scale.X != 1 || c.scale.Y != 1 {
		ctx.Scale(c.scale.X, c.scale.Y)
	}
	c.Execute(ctx, &DrawOptions{X: x, Y: y, Opacity: ctx.Opacity()})
	ctx.Restore()
	return nil
}
