//go:build ebiten

package app

import (
	"errors"
	"time"

	"floating-nodes/internal/core"
	"floating-nodes/internal/nodes"
	"floating-nodes/internal/render"
	"floating-nodes/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// The canvas fills the window.
var surfaceOrigin = render.Point{}

// Game adapts a node engine to the ebiten.Game interface.
type Game struct {
	engine  *nodes.Engine
	queue   *core.FrameQueue
	clock   core.Clock
	rng     *core.RNG
	frame   *render.Recorder
	canvas  *render.Canvas
	overlay *ui.Overlay

	width, height int
	seed          int64

	hovering bool
	pointer  render.Point
}

// New constructs a Game for cfg and starts the engine.
func New(cfg nodes.Config, seed int64) (*Game, error) {
	rng := core.NewRNG(seed)
	queue := core.NewFrameQueue()
	frame := render.NewRecorder()
	engine, err := nodes.NewEngine(cfg, rng, queue, frame)
	if err != nil {
		return nil, err
	}
	g := &Game{
		engine:  engine,
		queue:   queue,
		clock:   core.NewWallClock(),
		rng:     rng,
		frame:   frame,
		canvas:  render.NewCanvas(cfg.Background),
		overlay: ui.NewOverlay(),
		width:   cfg.Width,
		height:  cfg.Height,
		seed:    seed,
	}
	engine.Start()
	return g, nil
}

// Reset restarts the node field with the provided seed, unpausing if needed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.rng.Reseed(seed)
	if g.engine.Config().PauseAnimation {
		g.engine.SetPaused(false)
	}
	g.engine.Start()
}

// SetPaused forwards a pause change to the engine.
func (g *Game) SetPaused(paused bool) {
	g.engine.SetPaused(paused)
}

func (g *Game) togglePause() {
	paused := !g.engine.Config().PauseAnimation
	g.engine.SetPaused(paused)
	if !paused {
		g.engine.Resume()
	}
}

// Close stops the engine and drops any pending frame.
func (g *Game) Close() {
	g.engine.Stop()
}

// Update handles input and runs the pending engine frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.overlay.Update()
	g.updatePointer()

	if _, err := g.queue.RunFrame(g.clock.Now()); err != nil {
		return err
	}
	return nil
}

func (g *Game) updatePointer() {
	x, y := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < g.width && y < g.height
	p := render.Point{X: float64(x), Y: float64(y)}

	entered := false
	if inside != g.hovering {
		g.hovering = inside
		if !inside {
			g.engine.PointerLeave()
			return
		}
		g.engine.PointerEnter()
		entered = true
	}
	if !inside {
		return
	}
	if entered || p != g.pointer {
		g.pointer = p
		g.engine.PointerMove(p, surfaceOrigin)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.engine.PointerDown(p, surfaceOrigin)
	}
}

// Draw replays the last recorded frame and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Replay(screen, g.frame.Ops())
	g.overlay.Draw(screen, g.engine)
}

// Layout reports the logical surface size.
func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}

// Run opens a window for cfg and blocks until it is closed.
func Run(cfg nodes.Config, opts *Options) error {
	game, err := New(cfg, opts.Seed)
	if err != nil {
		return err
	}
	defer game.Close()
	game.overlay.SetVisible(opts.Overlay)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(opts.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
