package term

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"lifeterrain/internal/app"
	"lifeterrain/internal/core"
	"lifeterrain/internal/render"
	"lifeterrain/internal/runner"
	"lifeterrain/internal/ui"
)

// Session couples a Controller to a terminal: one goroutine handles key
// events, another redraws at a fixed rate, and the controller's runner
// iterates the terrain in the background.
type Session struct {
	screen tcell.Screen
	ctrl   *app.Controller
	view   *View
	step   *core.FixedStep

	densityPct atomic.Int32
	help       atomic.Bool
	stable     atomic.Bool
	resized    atomic.Bool
	redraw     chan struct{}
}

// NewSession builds the controller for cfg. screen must already be
// initialised.
func NewSession(screen tcell.Screen, cfg *app.Config) (*Session, error) {
	s := &Session{
		screen: screen,
		step:   core.NewFixedStep(cfg.TPS),
		redraw: make(chan struct{}, 1),
	}
	ctrl, err := app.NewController(cfg.Life(), s.stopped)
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	s.view = NewView(screen, ctrl.Size(), render.NewAgePalette().Colors())
	s.densityPct.Store(int32(app.DensityPercent(cfg.Density)))
	return s, nil
}

// Controller exposes the session's controller.
func (s *Session) Controller() *app.Controller { return s.ctrl }

func (s *Session) stopped(_ core.Stats, reason runner.Reason) {
	s.stable.Store(reason == runner.CycleDetected)
	s.requestRedraw()
}

func (s *Session) requestRedraw() {
	select {
	case s.redraw <- struct{}{}:
	default:
	}
}

// Run processes input and redraws until the user quits or ctx ends. The
// background run is stopped before Run returns.
func (s *Session) Run(ctx context.Context) error {
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer quit()
		return s.handleEvents(ctx)
	})
	g.Go(func() error {
		return s.renderLoop(ctx)
	})
	err := g.Wait()

	s.ctrl.Stop()
	s.ctrl.Wait()
	return err
}

func (s *Session) handleEvents(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go s.screen.ChannelEvents(events, ctx.Done())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !s.handle(ev) {
				return nil
			}
		}
	}
}

// handle applies one event and reports whether the session should continue.
func (s *Session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.resized.Store(true)
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			s.densityPct.Store(int32(app.StepDensity(int(s.densityPct.Load()), app.DensityStep)))
		case tcell.KeyDown:
			s.densityPct.Store(int32(app.StepDensity(int(s.densityPct.Load()), -app.DensityStep)))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				if s.ctrl.Toggle() {
					s.stable.Store(false)
				}
			case 'r':
				if err := s.ctrl.Reset(app.DensityFraction(int(s.densityPct.Load()))); err == nil {
					s.stable.Store(false)
				}
			case 'h':
				s.help.Store(!s.help.Load())
			}
		}
	}
	s.requestRedraw()
	return true
}

func (s *Session) renderLoop(ctx context.Context) error {
	for {
		if s.step.ShouldStep() {
			if err := s.draw(); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-s.redraw:
			if err := s.draw(); err != nil {
				return err
			}
		case <-time.After(s.step.Until()):
		}
	}
}

func (s *Session) draw() error {
	if s.resized.Swap(false) {
		s.screen.Sync()
	}
	terrain := s.ctrl.Terrain()
	_, err := s.view.Draw(terrain, func(stats core.Stats) []string {
		lines := ui.Lines(stats, terrain.Parameters(), s.status(), int(s.densityPct.Load()))
		if s.help.Load() {
			lines = append(lines, ui.HelpLines...)
		}
		return lines
	})
	return err
}

func (s *Session) status() ui.Status {
	switch {
	case s.ctrl.Running():
		return ui.StatusRunning
	case s.stable.Load():
		return ui.StatusStable
	default:
		return ui.StatusStopped
	}
}
