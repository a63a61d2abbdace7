package fern

import (
	"fmt"
	"image"
	"image/color"
)

// OpKind identifies a recorded context call.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpSave
	OpRestore
	OpTranslate
	OpRotate
	OpScale
	OpSetZ
	OpSetOpacity
	OpDrawImage
	OpFillRect
	OpFlush
)

var opNames = [...]string{
	OpClear:      "clear",
	OpSave:       "save",
	OpRestore:    "restore",
	OpTranslate:  "translate",
	OpRotate:     "rotate",
	OpScale:      "scale",
	OpSetZ:       "setZ",
	OpSetOpacity: "setOpacity",
	OpDrawImage:  "drawImage",
	OpFillRect:   "fillRect",
	OpFlush:      "flush",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("op(%d)", k)
}

// Op is one recorded context call. X and Y carry translate/scale arguments
// and paint positions, Value carries rotate/setZ/setOpacity arguments.
// Paint ops also capture the active transform, depth, and opacity.
type Op struct {
	Kind      OpKind
	X, Y      float64
	W, H      float64
	Value     float64
	Image     image.Image
	Color     color.Color
	Transform [6]float64
	Z         float64
	Opacity   float64
}

// RecordingContext is a GraphicsContext that records every call and
// tracks transform state without drawing anything. It is meant for tests
// and headless tooling.
type RecordingContext struct {
	Ops []Op

	// DrawErr, when set, is returned by DrawImage and FillRect.
	DrawErr error
	// FlushErr, when set, is returned by Flush.
	FlushErr error

	state stateStack
}

// NewRecordingContext returns an empty recorder.
func NewRecordingContext() *RecordingContext {
	return &RecordingContext{state: newStateStack()}
}

// Reset drops recorded ops and resets state.
func (c *RecordingContext) Reset() {
	c.Ops = c.Ops[:0]
	c.state.reset()
}

// Count returns how many ops of kind were recorded.
func (c *RecordingContext) Count(kind OpKind) int {
	n := 0
	for i := range c.Ops {
		if c.Ops[i].Kind == kind {
			n++
		}
	}
	return n
}

// Kinds returns the recorded op kinds in order.
func (c *RecordingContext) Kinds() []OpKind {
	out := make([]OpKind, len(c.Ops))
	for i := range c.Ops {
		out[i] = c.Ops[i].Kind
	}
	return out
}

// Paints returns the recorded DrawImage and FillRect ops in order.
func (c *RecordingContext) Paints() []Op {
	var out []Op
	for _, op := range c.Ops {
		if op.Kind == OpDrawImage || op.Kind == OpFillRect {
			out = append(out, op)
		}
	}
	return out
}

// Depth returns the current save depth.
func (c *RecordingContext) Depth() int {
	return len(c.state.saved)
}

// Transform returns the active transform.
func (c *RecordingContext) Transform() [6]float64 {
	return c.state.cur.transform
}

func (c *RecordingContext) record(op Op) {
	c.Ops = append(c.Ops, op)
}

func (c *RecordingContext) Clear() {
	c.record(Op{Kind: OpClear})
}

func (c *RecordingContext) Save() {
	c.state.save()
	c.record(Op{Kind: OpSave})
}

func (c *RecordingContext) Restore() {
	c.state.restore()
	c.record(Op{Kind: OpRestore})
}

func (c *RecordingContext) Translate(x, y float64) {
	c.state.translate(x, y)
	c.record(Op{Kind: OpTranslate, X: x, Y: y})
}

func (c *RecordingContext) Rotate(radians float64) {
	c.state.rotate(radians)
	c.record(Op{Kind: OpRotate, Value: radians})
}

func (c *RecordingContext) Scale(x, y float64) {
	c.state.scale(x, y)
	c.record(Op{Kind: OpScale, X: x, Y: y})
}

func (c *RecordingContext) Z() float64 { return c.state.cur.z }

func (c *RecordingContext) SetZ(z float64) {
	c.state.cur.z = z
	c.record(Op{Kind: OpSetZ, Value: z})
}

func (c *RecordingContext) Opacity() float64 { return c.state.cur.opacity }

func (c *RecordingContext) SetOpacity(opacity float64) {
	c.state.cur.opacity = opacity
	c.record(Op{Kind: OpSetOpacity, Value: opacity})
}

func (c *RecordingContext) DrawImage(img image.Image, x, y float64) error {
	c.record(Op{
		Kind:      OpDrawImage,
		X:         x,
		Y:         y,
		Image:     img,
		Transform: c.state.cur.transform,
		Z:         c.state.cur.z,
		Opacity:   c.state.cur.opacity,
	})
	return c.DrawErr
}

func (c *RecordingContext) FillRect(x, y, w, h float64, col color.Color) error {
	c.record(Op{
		Kind:      OpFillRect,
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		Color:     col,
		Transform: c.state.cur.transform,
		Z:         c.state.cur.z,
		Opacity:   c.state.cur.opacity,
	})
	return c.DrawErr
}

func (c *RecordingContext) Flush() error {
	c.record(Op{Kind: OpFlush})
	return c.FlushErr
}

var _ GraphicsContext = (*RecordingContext)(nil)
