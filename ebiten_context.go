package fern

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawCommand is a single deferred paint, submitted on Flush.
type drawCommand struct {
	img       *ebiten.Image
	transform [6]float64
	r, g, b   float32
	alpha     float32
	z         float64
}

// EbitenContext is a GraphicsContext that draws onto an *ebiten.Image.
//
// Paints are queued as commands and submitted on Flush in ascending depth
// order; paints at equal depth keep their call order.
type EbitenContext struct {
	target *ebiten.Image
	// ClearColor fills the target on Clear. A transparent color clears
	// the target to transparent.
	ClearColor Color

	state    stateStack
	commands []drawCommand
	sortBuf  []drawCommand
	images   map[image.Image]*ebiten.Image
	white    *ebiten.Image
}

// NewEbitenContext returns a context drawing onto target. target may be nil
// until SetTarget is called.
func NewEbitenContext(target *ebiten.Image) *EbitenContext {
	return &EbitenContext{
		target:   target,
		state:    newStateStack(),
		commands: make([]drawCommand, 0, 256),
		images:   make(map[image.Image]*ebiten.Image),
	}
}

// SetTarget retargets the context, typically to the screen image passed to
// ebiten.Game.Draw each frame.
func (c *EbitenContext) SetTarget(target *ebiten.Image) {
	c.target = target
}

// Target returns the current target image.
func (c *EbitenContext) Target() *ebiten.Image {
	return c.target
}

// Clear fills the target with ClearColor and drops queued commands.
func (c *EbitenContext) Clear() {
	c.commands = c.commands[:0]
	c.state.reset()
	if c.target == nil {
		return
	}
	if c.ClearColor.A == 0 {
		c.target.Clear()
		return
	}
	c.target.Fill(c.ClearColor)
}

func (c *EbitenContext) Save()                  { c.state.save() }
func (c *EbitenContext) Restore()               { c.state.restore() }
func (c *EbitenContext) Translate(x, y float64) { c.state.translate(x, y) }
func (c *EbitenContext) Rotate(radians float64) { c.state.rotate(radians) }
func (c *EbitenContext) Scale(x, y float64)     { c.state.scale(x, y) }
func (c *EbitenContext) Z() float64             { return c.state.cur.z }
func (c *EbitenContext) SetZ(z float64)         { c.state.cur.z = z }
func (c *EbitenContext) Opacity() float64       { return c.state.cur.opacity }

func (c *EbitenContext) SetOpacity(opacity float64) {
	c.state.cur.opacity = opacity
}

// DrawImage queues img at (x, y). Non-ebiten images are uploaded once and
// cached by identity, so img must be a comparable value (all standard
// library image types are pointers).
func (c *EbitenContext) DrawImage(img image.Image, x, y float64) error {
	eimg := c.resolveImage(img)
	if eimg == nil {
		return nil
	}
	c.commands = append(c.commands, drawCommand{
		img:       eimg,
		transform: multiplyAffine(c.state.cur.transform, translateAffine(x, y)),
		r:         1,
		g:         1,
		b:         1,
		alpha:     float32(c.state.cur.opacity),
		z:         c.state.cur.z,
	})
	return nil
}

// FillRect queues a solid rectangle drawn by stretching a white pixel.
func (c *EbitenContext) FillRect(x, y, w, h float64, col color.Color) error {
	if w == 0 || h == 0 || col == nil {
		return nil
	}
	if c.white == nil {
		c.white = ebiten.NewImage(1, 1)
		c.white.Fill(color.White)
	}
	// Un-premultiply so the color is scaled once by its own alpha on submit.
	r, g, b, a := col.RGBA()
	if a == 0 {
		return nil
	}
	fa := float32(a) / 0xffff
	m := multiplyAffine(c.state.cur.transform, translateAffine(x, y))
	m = multiplyAffine(m, scaleAffine(w, h))
	c.commands = append(c.commands, drawCommand{
		img:       c.white,
		transform: m,
		r:         float32(r) / 0xffff / fa,
		g:         float32(g) / 0xffff / fa,
		b:         float32(b) / 0xffff / fa,
		alpha:     fa * float32(c.state.cur.opacity),
		z:         c.state.cur.z,
	})
	return nil
}

func (c *EbitenContext) resolveImage(img image.Image) *ebiten.Image {
	switch v := img.(type) {
	case nil:
		return nil
	case *ebiten.Image:
		return v
	}
	if eimg, ok := c.images[img]; ok {
		return eimg
	}
	eimg := ebiten.NewImageFromImage(img)
	c.images[img] = eimg
	return eimg
}

// Forget drops the cached upload of img.
func (c *EbitenContext) Forget(img image.Image) {
	if eimg, ok := c.images[img]; ok {
		eimg.Deallocate()
		delete(c.images, img)
	}
}

// Flush sorts queued commands by depth and draws them onto the target.
func (c *EbitenContext) Flush() error {
	if c.target == nil {
		c.commands = c.commands[:0]
		return nil
	}
	c.sortCommands()

	var op ebiten.DrawImageOptions
	for i := range c.commands {
		cmd := &c.commands[i]
		if cmd.alpha <= 0 {
			continue
		}
		op.GeoM = affineGeoM(cmd.transform)
		op.ColorScale.Reset()
		op.ColorScale.Scale(cmd.r*cmd.alpha, cmd.g*cmd.alpha, cmd.b*cmd.alpha, cmd.alpha)
		c.target.DrawImage(cmd.img, &op)
	}
	clear(c.commands)
	c.commands = c.commands[:0]
	return nil
}

// affineGeoM converts [a, b, c, d, tx, ty] to an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// sortCommands stably sorts queued commands by depth with a bottom-up merge
// sort over sortBuf.
func (c *EbitenContext) sortCommands() {
	n := len(c.commands)
	if n <= 1 {
		return
	}
	if cap(c.sortBuf) < n {
		c.sortBuf = make([]drawCommand, n)
	}
	c.sortBuf = c.sortBuf[:n]

	a := c.commands
	b := c.sortBuf
	swapped := false
	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeCommands(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}
	if swapped {
		copy(c.commands, c.sortBuf)
	}
}

func mergeCommands(src, dst []drawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if src[i].z <= src[j].z {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}

var _ GraphicsContext = (*EbitenContext)(nil)
