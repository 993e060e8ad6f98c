package app

import (
	"errors"
	"sync"

	"lifeterrain/internal/core"
	"lifeterrain/internal/runner"
	pcore "lifeterrain/pkg/core"
	"lifeterrain/pkg/sims/life"
)

// ErrBusy is returned by Reset while the terrain is being iterated.
var ErrBusy = errors.New("app: stop the simulation before resetting")

// StopFunc receives the final counters when a run ends. It is called on the
// runner goroutine and must not call back into the Controller.
type StopFunc func(core.Stats, runner.Reason)

// Controller owns the current terrain and the runner iterating it. A fresh
// terrain replaces the old one on every Reset; successive resets draw from
// the same seeded random source.
type Controller struct {
	size    int
	history int
	rng     *pcore.RNG
	onStop  StopFunc

	mu      sync.Mutex
	terrain *life.Terrain
	runner  *runner.Runner
	density float64
}

// NewController validates cfg and builds the first terrain. onStop may be
// nil.
func NewController(cfg life.Config, onStop StopFunc) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		size:    cfg.Size,
		history: cfg.History,
		rng:     pcore.NewRNG(cfg.Seed),
		onStop:  onStop,
	}
	if err := c.Reset(cfg.Density); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset replaces the terrain with a new one seeded at density. It refuses
// while running and leaves the current terrain in place on error.
func (c *Controller) Reset(density float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.runner != nil {
		if c.runner.Running() {
			return ErrBusy
		}
		c.runner.Wait()
	}
	t, err := life.New(c.size, density, c.rng)
	if err != nil {
		return err
	}
	c.terrain = t
	c.density = density
	c.runner = runner.New(t, runner.Options{History: c.history, OnStop: c.stopped})
	return nil
}

func (c *Controller) stopped(s core.Stats, reason runner.Reason) {
	if c.onStop != nil {
		c.onStop(s, reason)
	}
}

// Start begins iterating the current terrain. It reports false if a run is
// already active or still winding down.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runner.Start()
}

// Stop asks the current run to end after its generation in progress.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runner.Stop()
}

// Toggle starts a stopped run or stops a running one and reports whether
// the simulation is now running.
func (c *Controller) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.runner.Running() {
		c.runner.Stop()
		return false
	}
	return c.runner.Start()
}

// Running reports whether the terrain is being iterated.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runner.Running()
}

// Wait blocks until the current run has finished.
func (c *Controller) Wait() runner.Reason {
	c.mu.Lock()
	r := c.runner
	c.mu.Unlock()
	return r.Wait()
}

// Terrain returns the current terrain.
func (c *Controller) Terrain() *life.Terrain {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.terrain
}

// Density returns the density the current terrain was seeded with.
func (c *Controller) Density() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.density
}

// Size returns the terrain dimensions.
func (c *Controller) Size() core.Size { return core.Size{W: c.size, H: c.size} }

// Snapshot copies the current terrain's committed generation into dst.
func (c *Controller) Snapshot(dst []uint8) (core.Stats, error) {
	return c.Terrain().Snapshot(dst)
}
