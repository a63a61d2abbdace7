package fern

import "github.com/tanema/gween/ease"

// Graphics is the visual component of an entity: the graphic currently
// shown, a library of named graphics, and an opacity in [0, 1].
type Graphics struct {
	Opacity float64

	current     Graphic
	currentName string
	named       map[string]Graphic
	fade        *fade
}

// NewGraphics returns an opaque Graphics showing g. g may be nil.
func NewGraphics(g Graphic) Graphics {
	return Graphics{Opacity: 1, current: g}
}

// Current returns the graphic being shown, or nil.
func (g *Graphics) Current() Graphic {
	return g.current
}

// CurrentName returns the name passed to the last successful Show, or ""
// after Use.
func (g *Graphics) CurrentName() string {
	return g.currentName
}

// Use shows gr without registering it by name.
func (g *Graphics) Use(gr Graphic) {
	g.current = gr
	g.currentName = ""
}

// Add registers gr under name. The first graphic added is shown when
// nothing is current yet.
func (g *Graphics) Add(name string, gr Graphic) {
	if g.named == nil {
		g.named = make(map[string]Graphic)
	}
	g.named[name] = gr
	if g.current == nil {
		g.current = gr
		g.currentName = name
	}
}

// Show switches to the graphic registered under name. Animations are
// rewound. It reports false and leaves the current graphic unchanged when
// name is unknown.
func (g *Graphics) Show(name string) bool {
	gr, ok := g.named[name]
	if !ok {
		return false
	}
	if a, isAnim := gr.(*Animation); isAnim && g.currentName != name {
		a.Reset()
	}
	g.current = gr
	g.currentName = name
	return true
}

// FadeTo animates Opacity to the target value over duration seconds.
// A nil easing function is linear.
func (g *Graphics) FadeTo(opacity float64, duration float32, fn ease.TweenFunc) {
	g.fade = newFade(&g.Opacity, opacity, duration, fn)
}

// Fading reports whether an opacity fade is in progress.
func (g *Graphics) Fading() bool {
	return g.fade != nil
}

// Update advances the opacity fade and the current graphic's animation
// state by delta seconds.
func (g *Graphics) Update(delta float64) {
	if g.fade != nil {
		// Rebind: the component may have been copied since FadeTo.
		g.fade.field = &g.Opacity
		if g.fade.update(delta) {
			g.fade = nil
		}
	}
	if t, ok := g.current.(Ticker); ok {
		t.Tick(delta)
	}
}

// Draw paints the current graphic at (x, y). Nothing is drawn when no
// graphic is current.
func (g *Graphics) Draw(ctx GraphicsContext, x, y float64) error {
	if g.current == nil {
		return nil
	}
	return g.current.Draw(ctx, x, y)
}
