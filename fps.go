package fern

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSWidget is a Graphic showing the current FPS and TPS. Its image is
// redrawn every half second of ticked time.
type FPSWidget struct {
	img      *ebiten.Image
	elapsed  float64
	interval float64
}

// NewFPSWidget creates an FPS widget. The backing image is allocated on
// the first Tick.
func NewFPSWidget() *FPSWidget {
	return &FPSWidget{interval: 0.5}
}

// Tick refreshes the text once the refresh interval has elapsed.
func (w *FPSWidget) Tick(delta float64) {
	w.elapsed += delta
	if w.img != nil && w.elapsed < w.interval {
		return
	}
	w.elapsed = 0
	if w.img == nil {
		// 100x32 fits "FPS: 60.0\nTPS: 60.0".
		w.img = ebiten.NewImage(100, 32)
	}
	w.img.Clear()
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (w *FPSWidget) Width() float64  { return 100 }
func (w *FPSWidget) Height() float64 { return 32 }
func (w *FPSWidget) Scale() Vec2     { return Vec2{1, 1} }

// Draw paints the last refreshed text. Nothing is drawn before the first
// Tick.
func (w *FPSWidget) Draw(ctx GraphicsContext, x, y float64) error {
	if w.img == nil {
		return nil
	}
	return ctx.DrawImage(w.img, x, y)
}
