package fern

import "time"

// Renderer is the per-frame scene render pass. It is bound to one graphics
// context and one scene for its whole life and must not outlive the
// context.
type Renderer struct {
	ctx   GraphicsContext
	scene *Scene

	sorted    []*Entity
	sortBuf   []*Entity
	rendering bool
}

// NewRenderer binds a render pass to ctx and scene.
func NewRenderer(ctx GraphicsContext, scene *Scene) *Renderer {
	return &Renderer{ctx: ctx, scene: scene}
}

// Context returns the bound graphics context.
func (r *Renderer) Context() GraphicsContext {
	return r.ctx
}

// Scene returns the bound scene.
func (r *Renderer) Scene() *Scene {
	return r.scene
}

// Render draws one frame: clear, stable depth sort, per-entity camera and
// entity transform scopes around each draw, then flush.
//
// The entities slice itself is not reordered. A draw error aborts the frame
// and is returned as is; the scopes opened for the failing entity are
// closed first and Flush is not called.
func (r *Renderer) Render(entities []*Entity, delta float64) error {
	if r.rendering {
		return ErrReentrant
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	var stats frameStats
	debug := r.scene != nil && r.scene.debug
	var t0 time.Time
	if debug {
		t0 = time.Now()
	}

	r.ctx.Clear()
	r.sortByDepth(entities)

	if debug {
		stats.sortTime = time.Since(t0)
		stats.entityCount = len(entities)
		t0 = time.Now()
	}

	for _, e := range r.sorted {
		if e.Actor != nil && e.Actor.OffScreen {
			stats.culled++
			continue
		}
		if err := r.renderEntity(e, delta, &stats); err != nil {
			r.clearSorted()
			return err
		}
		stats.drawn++
	}
	r.clearSorted()

	if err := r.ctx.Flush(); err != nil {
		return err
	}

	if debug {
		stats.drawTime = time.Since(t0)
		r.scene.logStats(stats)
	}
	return nil
}

// RenderScene renders the bound scene's current entities.
func (r *Renderer) RenderScene(delta float64) error {
	return r.Render(r.scene.Entities(), delta)
}

func (r *Renderer) renderEntity(e *Entity, delta float64, stats *frameStats) error {
	ctx := r.ctx
	tr := e.Transform
	gfx := e.Graphics

	var cam *Camera
	if r.scene != nil {
		cam = r.scene.camera
	}
	pushedCamera := tr.Plane == World && cam != nil
	if pushedCamera {
		ctx.Save()
		stats.saves++
		cam.Draw(ctx)
	}

	ctx.Save()
	stats.saves++
	gfx.Update(delta)

	ctx.Translate(tr.Pos.X, tr.Pos.Y)
	ctx.Rotate(tr.Rotation)
	ctx.Scale(tr.Scale.X, tr.Scale.Y)

	var offsetX, offsetY float64
	actorOpacity := 1.0
	if a := e.Actor; a != nil {
		tx, ty, ox, oy := a.anchorOffset(gfx.Current())
		ctx.Translate(tx, ty)
		offsetX, offsetY = ox, oy
		actorOpacity = a.Opacity.Or(1)
	}

	ctx.SetZ(tr.Z)
	ctx.SetOpacity(gfx.Opacity * actorOpacity)
	err := gfx.Draw(ctx, offsetX, offsetY)

	ctx.Restore()
	if pushedCamera {
		ctx.Restore()
	}
	return err
}

// clearSorted drops entity references so the scratch buffers do not keep
// entities alive between frames.
func (r *Renderer) clearSorted() {
	clear(r.sorted)
	clear(r.sortBuf)
}

// --- Merge sort ---

// sortByDepth copies entities into r.sorted and sorts it ascending by
// Transform.Z. Bottom-up merge sort: stable, and zero allocations once the
// buffers reach their high-water mark.
func (r *Renderer) sortByDepth(entities []*Entity) {
	n := len(entities)
	if cap(r.sorted) < n {
		r.sorted = make([]*Entity, n)
		r.sortBuf = make([]*Entity, n)
	}
	r.sorted = r.sorted[:n]
	r.sortBuf = r.sortBuf[:n]
	copy(r.sorted, entities)
	if n <= 1 {
		return
	}

	a := r.sorted
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.sorted, r.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
// Taking from the left run on equal depth keeps the sort stable.
func mergeRun(src, dst []*Entity, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if src[i].Transform.Z <= src[j].Transform.Z {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
