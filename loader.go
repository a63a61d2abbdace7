package fern

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Loadable is a resource that must be loaded before use.
type Loadable interface {
	Load(ctx context.Context) error
	IsLoaded() bool
}

// CanLoad is a loadable that also renders its own progress screen while the
// engine waits for it.
type CanLoad interface {
	Loadable
	// SuppressPlayButton skips waiting for the player to confirm once
	// loading completes.
	SuppressPlayButton() bool
	Draw(ctx GraphicsContext, delta float64) error
	Update(engine *Engine, delta float64)
}

// Loader loads a set of resources concurrently and draws a progress bar.
type Loader struct {
	// BarColor and BackColor color the progress bar and its track.
	BarColor  Color
	BackColor Color
	// BarWidth and BarHeight size the bar, centered in the viewport.
	BarWidth, BarHeight float64

	resources   []Loadable
	concurrency int
	suppress    bool

	done     atomic.Int32
	loaded   atomic.Bool
	shown    float64
	viewport Rect
}

// NewLoader creates a Loader over resources.
func NewLoader(resources ...Loadable) *Loader {
	return &Loader{
		BarColor:    Color{0.3, 0.7, 1, 1},
		BackColor:   Color{0.2, 0.2, 0.2, 1},
		BarWidth:    400,
		BarHeight:   16,
		resources:   resources,
		concurrency: 4,
	}
}

// AddResource queues more resources. Call before Load.
func (l *Loader) AddResource(resources ...Loadable) {
	l.resources = append(l.resources, resources...)
}

// SetConcurrency bounds how many resources load at once. n < 1 means 1.
func (l *Loader) SetConcurrency(n int) {
	l.concurrency = max(n, 1)
}

// SetSuppressPlayButton controls SuppressPlayButton.
func (l *Loader) SetSuppressPlayButton(suppress bool) {
	l.suppress = suppress
}

// SuppressPlayButton implements CanLoad.
func (l *Loader) SuppressPlayButton() bool {
	return l.suppress
}

// Progress returns the loaded fraction in [0, 1]. An empty loader reports 1.
func (l *Loader) Progress() float64 {
	if len(l.resources) == 0 {
		return 1
	}
	return float64(l.done.Load()) / float64(len(l.resources))
}

// Load loads every resource that is not loaded yet. The first failure
// cancels the rest and is returned.
func (l *Loader) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(l.concurrency, 1))
	for i, r := range l.resources {
		if r.IsLoaded() {
			l.done.Add(1)
			continue
		}
		g.Go(func() error {
			if err := r.Load(gctx); err != nil {
				return fmt.Errorf("fern: load resource %d: %w", i, err)
			}
			l.done.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	l.loaded.Store(true)
	Logger().Info("fern: loading complete", slog.Int("resources", len(l.resources)))
	return nil
}

// IsLoaded reports whether Load completed successfully.
func (l *Loader) IsLoaded() bool {
	return l.loaded.Load()
}

// Update eases the displayed progress toward the real progress and starts
// the engine's scene once loading is complete and the player confirmed (or
// the play button is suppressed).
func (l *Loader) Update(engine *Engine, delta float64) {
	l.viewport = engine.Viewport()
	target := l.Progress()
	l.shown += (target - l.shown) * min(1, delta*10)
	if !l.IsLoaded() {
		return
	}
	l.shown = 1
	if l.suppress || engine.confirmPlay() {
		engine.startScene()
	}
}

// Draw paints the progress bar centered in the last known viewport.
func (l *Loader) Draw(ctx GraphicsContext, _ float64) error {
	x := l.viewport.X + (l.viewport.Width-l.BarWidth)/2
	y := l.viewport.Y + (l.viewport.Height-l.BarHeight)/2
	ctx.Save()
	defer ctx.Restore()
	ctx.SetOpacity(1)
	if err := ctx.FillRect(x, y, l.BarWidth, l.BarHeight, l.BackColor); err != nil {
		return err
	}
	if w := l.BarWidth * l.shown; w > 0 {
		if err := ctx.FillRect(x, y, w, l.BarHeight, l.BarColor); err != nil {
			return err
		}
	}
	return nil
}

var _ CanLoad = (*Loader)(nil)
