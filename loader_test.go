package fern

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync/atomic"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

type fakeResource struct {
	err    error
	loaded atomic.Bool
	calls  atomic.Int32
}

func (r *fakeResource) Load(ctx context.Context) error {
	r.calls.Add(1)
	if r.err != nil {
		return r.err
	}
	r.loaded.Store(true)
	return nil
}

func (r *fakeResource) IsLoaded() bool { return r.loaded.Load() }

// --- ImageSource ---

func TestImageSourceLoad(t *testing.T) {
	fsys := fstest.MapFS{"hero.png": {Data: pngBytes(t, 16, 8)}}
	src := NewImageSource(fsys, "hero.png")

	if src.IsLoaded() {
		t.Fatal("loaded before Load")
	}
	if _, err := src.ToSprite(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("ToSprite before Load err = %v, want ErrNotLoaded", err)
	}
	if err := src.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !src.IsLoaded() {
		t.Fatal("not loaded after Load")
	}
	sprite, err := src.ToSprite()
	if err != nil {
		t.Fatalf("ToSprite: %v", err)
	}
	if sprite.Width() != 16 || sprite.Height() != 8 {
		t.Errorf("sprite size = %vx%v, want 16x8", sprite.Width(), sprite.Height())
	}
}

func TestImageSourceMissing(t *testing.T) {
	src := NewImageSource(fstest.MapFS{}, "nope.png")
	if err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if src.IsLoaded() {
		t.Error("IsLoaded after failed Load")
	}
}

func TestImageSourceBadData(t *testing.T) {
	src := NewImageSource(fstest.MapFS{"bad.png": {Data: []byte("not an image")}}, "bad.png")
	if err := src.Load(context.Background()); !errors.Is(err, image.ErrFormat) {
		t.Errorf("err = %v, want image.ErrFormat", err)
	}
}

func TestImageSourceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := NewImageSource(fstest.MapFS{"a.png": {Data: pngBytes(t, 1, 1)}}, "a.png")
	if err := src.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// --- Loader ---

func TestLoaderLoadsAll(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png": {Data: pngBytes(t, 2, 2)},
		"b.png": {Data: pngBytes(t, 3, 3)},
	}
	a, b := NewImageSource(fsys, "a.png"), NewImageSource(fsys, "b.png")
	extra := &fakeResource{}
	l := NewLoader(a, b)
	l.AddResource(extra)
	l.SetConcurrency(2)

	if l.Progress() != 0 {
		t.Errorf("Progress before Load = %v, want 0", l.Progress())
	}
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !l.IsLoaded() || !a.IsLoaded() || !b.IsLoaded() || !extra.IsLoaded() {
		t.Error("not everything loaded")
	}
	if l.Progress() != 1 {
		t.Errorf("Progress = %v, want 1", l.Progress())
	}
}

func TestLoaderSkipsLoaded(t *testing.T) {
	done := &fakeResource{}
	done.loaded.Store(true)
	l := NewLoader(done)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if done.calls.Load() != 0 {
		t.Errorf("Load called %d times on a loaded resource", done.calls.Load())
	}
	if l.Progress() != 1 {
		t.Errorf("Progress = %v, want 1", l.Progress())
	}
}

func TestLoaderError(t *testing.T) {
	boom := errors.New("boom")
	l := NewLoader(&fakeResource{}, &fakeResource{err: boom})
	l.SetConcurrency(1)

	err := l.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if l.IsLoaded() {
		t.Error("IsLoaded after failure")
	}
}

func TestLoaderEmpty(t *testing.T) {
	l := NewLoader()
	if l.Progress() != 1 {
		t.Errorf("empty Progress = %v, want 1", l.Progress())
	}
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !l.IsLoaded() {
		t.Error("empty loader not loaded")
	}
}

func TestLoaderConcurrencyFloor(t *testing.T) {
	l := NewLoader()
	l.SetConcurrency(0)
	if l.concurrency != 1 {
		t.Errorf("concurrency = %d, want 1", l.concurrency)
	}
}

func TestLoaderDrawBar(t *testing.T) {
	l := NewLoader()
	l.viewport = Rect{Width: 800, Height: 600}
	l.shown = 0.5

	ctx := NewRecordingContext()
	if err := l.Draw(ctx, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	paints := ctx.Paints()
	if len(paints) != 2 {
		t.Fatalf("paints = %d, want 2", len(paints))
	}
	assertNear(t, "track x", paints[0].X, 200)
	assertNear(t, "track y", paints[0].Y, 292)
	assertNear(t, "bar width", paints[1].W, 200)
	if ctx.Depth() != 0 {
		t.Errorf("depth = %d, want 0", ctx.Depth())
	}
}

func TestLoaderDrawNoBarAtZero(t *testing.T) {
	l := NewLoader()
	ctx := NewRecordingContext()
	if err := l.Draw(ctx, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if n := len(ctx.Paints()); n != 1 {
		t.Errorf("paints = %d, want 1", n)
	}
}
