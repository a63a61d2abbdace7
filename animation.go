package fern

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationStrategy decides what an Animation does after its last frame.
type AnimationStrategy uint8

const (
	AnimationLoop   AnimationStrategy = iota // wrap to the first frame
	AnimationFreeze                          // hold the last frame
	AnimationEnd                             // draw nothing after the last frame
)

// Animation is a Graphic that steps through frames at a fixed rate.
// There is no global animation clock; Graphics.Update ticks the current
// animation with the frame delta.
type Animation struct {
	Frames []Graphic
	// FrameDuration is the time each frame is shown, in seconds.
	FrameDuration float64
	Strategy      AnimationStrategy
	ScaleX        float64
	ScaleY        float64

	index   int
	elapsed float64
	done    bool
}

// NewAnimation creates a looping animation over frames.
func NewAnimation(frameDuration float64, frames ...Graphic) *Animation {
	return &Animation{
		Frames:        frames,
		FrameDuration: frameDuration,
		ScaleX:        1,
		ScaleY:        1,
	}
}

// Tick advances the animation by delta seconds.
func (a *Animation) Tick(delta float64) {
	if a.done || len(a.Frames) == 0 || a.FrameDuration <= 0 {
		return
	}
	a.elapsed += delta
	for a.elapsed >= a.FrameDuration {
		a.elapsed -= a.FrameDuration
		if a.index < len(a.Frames)-1 {
			a.index++
			continue
		}
		switch a.Strategy {
		case AnimationLoop:
			a.index = 0
		case AnimationFreeze, AnimationEnd:
			a.done = true
			a.elapsed = 0
			return
		}
	}
}

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	a.index = 0
	a.elapsed = 0
	a.done = false
}

// Done reports whether a non-looping animation has finished.
func (a *Animation) Done() bool {
	return a.done
}

// Frame returns the index of the current frame.
func (a *Animation) Frame() int {
	return a.index
}

func (a *Animation) current() Graphic {
	if len(a.Frames) == 0 || (a.done && a.Strategy == AnimationEnd) {
		return nil
	}
	return a.Frames[a.index]
}

// Width returns the current frame width.
func (a *Animation) Width() float64 {
	if g := a.current(); g != nil {
		return g.Width()
	}
	return 0
}

// Height returns the current frame height.
func (a *Animation) Height() float64 {
	if g := a.current(); g != nil {
		return g.Height()
	}
	return 0
}

func (a *Animation) Scale() Vec2 {
	return Vec2{a.ScaleX, a.ScaleY}
}

// Draw paints the current frame.
func (a *Animation) Draw(ctx GraphicsContext, x, y float64) error {
	g := a.current()
	if g == nil {
		return nil
	}
	if a.ScaleX == 1 && a.ScaleY == 1 {
		return g.Draw(ctx, x, y)
	}
	ctx.Save()
	ctx.Translate(x, y)
	ctx.Scale(a.ScaleX, a.ScaleY)
	err := g.Draw(ctx, 0, 0)
	ctx.Restore()
	return err
}

// fade drives a float64 field with a gween tween.
type fade struct {
	tween *gween.Tween
	field *float64
}

func newFade(field *float64, to float64, duration float32, fn ease.TweenFunc) *fade {
	if fn == nil {
		fn = ease.Linear
	}
	return &fade{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// update advances the tween and reports whether it finished.
func (f *fade) update(dt float64) bool {
	val, finished := f.tween.Update(float32(dt))
	*f.field = float64(val)
	return finished
}
