package fern

import "testing"

func TestCanvasExecuteCallsHandlerWithZeroDelta(t *testing.T) {
	var calls int
	var gotDelta float64 = -1
	var gotCtx GraphicsContext
	c := NewCanvas(CanvasOptions{DrawHandler: func(ctx GraphicsContext, delta float64) {
		calls++
		gotDelta = delta
		gotCtx = ctx
	}})

	ctx := NewRecordingContext()
	c.Execute(ctx, nil)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if gotDelta != 0 {
		t.Errorf("delta = %v, want 0", gotDelta)
	}
	if gotCtx != ctx {
		t.Error("handler received a different context")
	}
}

func TestCanvasExecuteAlwaysDirty(t *testing.T) {
	c := NewCanvas(CanvasOptions{DrawHandler: func(GraphicsContext, float64) {}})
	if c.IsDirty() {
		t.Error("new canvas is dirty")
	}
	for i := 0; i < 3; i++ {
		c.Execute(NewRecordingContext(), &DrawOptions{Opacity: 1})
		if !c.IsDirty() {
			t.Fatalf("execute %d did not mark dirty", i)
		}
		c.ClearDirty()
	}
}

func TestCanvasExecuteNilHandler(t *testing.T) {
	c := NewCanvas(CanvasOptions{})
	c.Execute(NewRecordingContext(), nil)
	if !c.IsDirty() {
		t.Error("nil handler execute did not mark dirty")
	}
}

func TestCanvasDrawScopesHandler(t *testing.T) {
	var inner [6]float64
	var depth int
	c := NewCanvas(CanvasOptions{Width: 40, Height: 20})
	c.SetScale(2, 2)
	ctx := NewRecordingContext()
	c.options.DrawHandler = func(GraphicsContext, float64) {
		inner = ctx.Transform()
		depth = ctx.Depth()
	}

	if err := c.Draw(ctx, 5, 6); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if depth != 1 {
		t.Errorf("handler depth = %d, want 1", depth)
	}
	assertMatrix(t, "handler transform", inner, [6]float64{2, 0, 0, 2, 5, 6})
	if ctx.Depth() != 0 {
		t.Errorf("depth after Draw = %d, want 0", ctx.Depth())
	}
}

func TestCanvasAsActorContent(t *testing.T) {
	var painted int
	c := NewCanvas(CanvasOptions{
		Width:  50,
		Height: 50,
		DrawHandler: func(ctx GraphicsContext, _ float64) {
			painted++
			_ = ctx.FillRect(0, 0, 50, 50, ColorWhite)
		},
	})

	e := newActorEntity(0, 0, Screen, NewActor(100, 50))
	e.Graphics.Use(c)
	ctx := render(t, NewScene(), []*Entity{e})

	if painted != 1 {
		t.Errorf("painted = %d, want 1", painted)
	}
	p := ctx.Paints()[0]
	x, y := transformPoint(p.Transform, 0, 0)
	// Anchor (-50,-25) then content offset (25,0).
	assertNear(t, "x", x, -25)
	assertNear(t, "y", y, -25)
	if s, r := ctx.Count(OpSave), ctx.Count(OpRestore); s != r {
		t.Errorf("saves = %d, restores = %d", s, r)
	}
}
