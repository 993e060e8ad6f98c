//go:build ebiten

package app

import (
	"log"
	"sync/atomic"

	"lifeterrain/internal/core"
	"lifeterrain/internal/render"
	"lifeterrain/internal/runner"
	"lifeterrain/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface. Iteration runs on
// the controller's runner goroutine; Draw pulls a snapshot each frame.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	palette *render.AgePalette
	hud     *ui.HUD
	overlay *ui.Overlay

	cells      []uint8
	scale      int
	densityPct int
	stable     atomic.Bool
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) (*Game, error) {
	g := &Game{
		palette:    render.NewAgePalette(),
		hud:        ui.NewHUD(220),
		overlay:    ui.NewOverlay(),
		scale:      cfg.Scale,
		densityPct: DensityPercent(cfg.Density),
	}
	ctrl, err := NewController(cfg.Life(), g.stopped)
	if err != nil {
		return nil, err
	}
	size := ctrl.Size()
	g.ctrl = ctrl
	g.painter = render.NewGridPainter(size.W, size.H)
	g.cells = make([]uint8, size.Cells())
	return g, nil
}

func (g *Game) stopped(s core.Stats, reason runner.Reason) {
	g.stable.Store(reason == runner.CycleDetected)
	log.Printf("run ended at generation %d (%v), population %d", s.Iteration, reason, s.Population)
}

// Close stops the background run, e.g. when the window closes.
func (g *Game) Close() {
	g.ctrl.Stop()
	g.ctrl.Wait()
}

// Update handles input. Generations are advanced by the runner, not here.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.ctrl.Toggle() {
			g.stable.Store(false)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.densityPct = StepDensity(g.densityPct, DensityStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.densityPct = StepDensity(g.densityPct, -DensityStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.ctrl.Reset(DensityFraction(g.densityPct)); err == nil {
			g.stable.Store(false)
		}
	}
	g.overlay.Update()
	return nil
}

// Draw renders the most recently completed generation.
func (g *Game) Draw(screen *ebiten.Image) {
	terrain := g.ctrl.Terrain()
	stats, err := terrain.Snapshot(g.cells)
	if err != nil {
		return
	}
	g.painter.Blit(screen, g.cells, g.palette.Colors(), g.scale)
	g.hud.Draw(screen, ui.Lines(stats, terrain.Parameters(), g.status(), g.densityPct))
	g.overlay.Draw(screen)
}

func (g *Game) status() ui.Status {
	switch {
	case g.ctrl.Running():
		return ui.StatusRunning
	case g.stable.Load():
		return ui.StatusStable
	default:
		return ui.StatusStopped
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.Size()
	return s.W * g.scale, s.H * g.scale
}
