package fern

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Engine runs a Scene inside the ebiten game loop. It implements
// ebiten.Game.
type Engine struct {
	cfg      Config
	scene    *Scene
	ctx      *EbitenContext
	renderer *Renderer

	loader  CanLoad
	loadErr chan error
	cancel  context.CancelFunc
	started bool

	updateFn    func(dt float64) error
	playPressed func() bool
	pendingPlay bool
	renderErr   error

	script          *Script
	fps             *FPSWidget
	screenshotQueue []string
}

// NewEngine validates cfg and binds a renderer for scene to an ebiten
// context.
func NewEngine(cfg Config, scene *Scene) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if scene == nil {
		scene = NewScene()
	}
	scene.SetDebugMode(cfg.Debug)
	ectx := NewEbitenContext(nil)
	ectx.ClearColor = cfg.ClearColorValue()
	return &Engine{
		cfg:         cfg,
		scene:       scene,
		ctx:         ectx,
		renderer:    NewRenderer(ectx, scene),
		started:     true,
		playPressed: defaultPlayPressed,
		fps:         NewFPSWidget(),
	}, nil
}

func defaultPlayPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Scene returns the engine's scene.
func (e *Engine) Scene() *Scene { return e.scene }

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Renderer returns the engine's render pass.
func (e *Engine) Renderer() *Renderer { return e.renderer }

// Viewport returns the logical screen rectangle.
func (e *Engine) Viewport() Rect {
	return Rect{Width: float64(e.cfg.Width), Height: float64(e.cfg.Height)}
}

// Delta returns the fixed frame delta in seconds.
func (e *Engine) Delta() float64 {
	return 1 / float64(e.cfg.TPS)
}

// SetUpdateFunc sets a callback run each tick after the camera update,
// once the scene has started. A non-nil error stops the game.
func (e *Engine) SetUpdateFunc(fn func(dt float64) error) {
	e.updateFn = fn
}

// SetScript attaches a frame script. Its steps run at the start of each
// Update, including while loading.
func (e *Engine) SetScript(s *Script) {
	e.script = s
}

// confirmPlay reports whether the player confirmed the play prompt this
// tick, either through input or a script "play" step.
func (e *Engine) confirmPlay() bool {
	if e.pendingPlay {
		e.pendingPlay = false
		return true
	}
	return e.playPressed()
}

// Start begins loading with loader on a background goroutine. The scene
// starts once the loader reports it is loaded and its Update starts it.
// A nil loader starts the scene immediately.
func (e *Engine) Start(ctx context.Context, loader CanLoad) {
	if loader == nil {
		e.startScene()
		return
	}
	if l, ok := loader.(*Loader); ok {
		l.SetConcurrency(e.cfg.LoadConcurrency)
	}
	ctx, e.cancel = context.WithCancel(ctx)
	e.loader = loader
	e.started = false
	e.loadErr = make(chan error, 1)
	go func() {
		e.loadErr <- loader.Load(ctx)
	}()
}

// Started reports whether the scene is running.
func (e *Engine) Started() bool {
	return e.started
}

func (e *Engine) startScene() {
	if e.started {
		return
	}
	e.started = true
	e.loader = nil
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	Logger().Info("fern: scene started")
}

// Update implements ebiten.Game.
func (e *Engine) Update() error {
	if e.renderErr != nil {
		return e.renderErr
	}
	if e.script != nil && e.script.step(e) {
		Logger().Info("fern: script quit")
		return ebiten.Termination
	}
	dt := e.Delta()
	if !e.started {
		select {
		case err := <-e.loadErr:
			if err != nil {
				return fmt.Errorf("fern: loading failed: %w", err)
			}
		default:
		}
		e.loader.Update(e, dt)
		return nil
	}
	if cam := e.scene.Camera(); cam != nil {
		cam.Update(dt)
	}
	if e.updateFn != nil {
		return e.updateFn(dt)
	}
	return nil
}

// Draw implements ebiten.Game. A render failure is reported by the next
// Update, which ends the game loop.
func (e *Engine) Draw(screen *ebiten.Image) {
	e.ctx.SetTarget(screen)
	dt := e.Delta()
	if !e.started && e.loader != nil {
		e.ctx.Clear()
		if err := e.loader.Draw(e.ctx, dt); err != nil {
			e.renderErr = err
			return
		}
		if err := e.ctx.Flush(); err != nil {
			e.renderErr = err
		}
		return
	}

	entities := e.scene.Entities()
	if e.cfg.Cull {
		UpdateOffscreen(entities, e.scene.Camera(), e.Viewport())
	}
	if err := e.renderer.Render(entities, dt); err != nil {
		e.renderErr = err
		return
	}
	if e.cfg.ShowFPS {
		if err := e.drawOverlay(dt); err != nil {
			e.renderErr = err
			return
		}
	}
	e.flushScreenshots(screen)
}

// drawOverlay paints the FPS widget on top of the rendered frame. The
// render pass leaves the context at its frame-start state, so no Clear is
// issued here.
func (e *Engine) drawOverlay(dt float64) error {
	e.fps.Tick(dt)
	e.ctx.SetZ(0)
	e.ctx.SetOpacity(1)
	if err := e.fps.Draw(e.ctx, 4, 4); err != nil {
		return err
	}
	return e.ctx.Flush()
}

// Layout implements ebiten.Game with a fixed logical size.
func (e *Engine) Layout(_, _ int) (int, int) {
	return e.cfg.Width, e.cfg.Height
}

// Run opens a window sized from the engine config and runs the game loop
// until the window closes or Update returns an error.
func Run(e *Engine) error {
	ebiten.SetWindowTitle(e.cfg.Title)
	ebiten.SetWindowSize(e.cfg.Width, e.cfg.Height)
	ebiten.SetTPS(e.cfg.TPS)
	Logger().Info("fern: run", slog.String("title", e.cfg.Title),
		slog.Int("width", e.cfg.Width), slog.Int("height", e.cfg.Height))
	return ebiten.RunGame(e)
}
