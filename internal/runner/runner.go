// Package runner drives a simulation on a background goroutine until it is
// told to stop or its generations start repeating.
package runner

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"lifeterrain/internal/core"
	"lifeterrain/pkg/sims/life"
)

// ErrRunning is returned by Run when a previous loop is still active.
var ErrRunning = errors.New("runner: already running")

// Reason explains why a loop exited.
type Reason int

const (
	// StopRequested means Stop was called or the Run context ended.
	StopRequested Reason = iota
	// CycleDetected means a generation repeated a recent checksum.
	CycleDetected
)

func (r Reason) String() string {
	switch r {
	case StopRequested:
		return "stop requested"
	case CycleDetected:
		return "cycle detected"
	default:
		return "unknown"
	}
}

// Stepper is the part of a simulation the runner drives.
type Stepper interface {
	Step()
	Stats() core.Stats
}

// Options configures a Runner.
type Options struct {
	// History is the cycle detector window; zero uses life.DefaultHistory.
	History int
	// OnStop is called once from the loop goroutine after its last
	// generation, with the final counters. Renderers use it to draw the
	// final state.
	OnStop func(core.Stats, Reason)
}

// Runner repeatedly steps a simulation on its own goroutine. The running
// flag is only checked between generations, so Stop never interrupts a Step
// in progress.
type Runner struct {
	sim     Stepper
	history int
	onStop  func(core.Stats, Reason)

	running atomic.Bool

	mu     sync.Mutex
	done   chan struct{}
	reason Reason // written by the loop before done is closed
}

// New returns a stopped Runner for sim.
func New(sim Stepper, opts Options) *Runner {
	return &Runner{sim: sim, history: opts.History, onStop: opts.OnStop}
}

// Start launches the loop. It returns false when a loop is still active,
// including one that was asked to stop but has not finished its last
// generation yet.
func (r *Runner) Start() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		select {
		case <-r.done:
		default:
			return false
		}
	}
	r.running.Store(true)
	done := make(chan struct{})
	r.done = done
	go r.loop(done)
	return true
}

// Stop asks the loop to exit after the generation in progress. It does not
// wait; use Wait or the OnStop hook to learn when the loop is done.
func (r *Runner) Stop() {
	r.running.Store(false)
}

// Running reports whether the loop has been started and not asked to stop.
func (r *Runner) Running() bool {
	return r.running.Load()
}

// Wait blocks until the current loop, if any, has exited and returns the
// reason it stopped.
func (r *Runner) Wait() Reason {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done == nil {
		return StopRequested
	}
	<-done
	return r.reason
}

// Run starts the loop and blocks until it exits. Cancelling ctx stops it.
func (r *Runner) Run(ctx context.Context) (Reason, error) {
	if !r.Start() {
		return StopRequested, ErrRunning
	}
	release := context.AfterFunc(ctx, r.Stop)
	defer release()
	return r.Wait(), nil
}

func (r *Runner) loop(done chan struct{}) {
	defer close(done)
	det := life.NewCycleDetector(r.history)
	reason := StopRequested
	for r.running.Load() {
		r.sim.Step()
		if det.Observe(r.sim.Stats().Checksum) {
			r.running.Store(false)
			reason = CycleDetected
			break
		}
	}
	r.reason = reason
	if r.onStop != nil {
		r.onStop(r.sim.Stats(), reason)
	}
}
