package runner

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"lifeterrain/internal/core"
	pcore "lifeterrain/pkg/core"
	"lifeterrain/pkg/sims/life"
)

// gateStepper blocks in Step until released and never repeats a checksum.
// When entered is set, Step announces itself there before blocking.
type gateStepper struct {
	gate    chan struct{}
	entered chan struct{}
	n       atomic.Uint64
}

func (g *gateStepper) Step() {
	if g.entered != nil {
		g.entered <- struct{}{}
	}
	<-g.gate
	g.n.Add(1)
}

func (g *gateStepper) Stats() core.Stats {
	n := g.n.Load()
	return core.Stats{Iteration: n, Checksum: n}
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out")
	}
}

func TestRunnerHaltsOnStillLife(t *testing.T) {
	// A full board dies in one generation and then repeats forever.
	terrain, err := life.New(12, 1, pcore.NewRNG(1))
	if err != nil {
		t.Fatalf("life.New: %v", err)
	}

	calls := 0
	var final core.Stats
	var why Reason
	r := New(terrain, Options{OnStop: func(s core.Stats, reason Reason) {
		calls++
		final = s
		why = reason
	}})
	if !r.Start() {
		t.Fatal("Start returned false on an idle runner")
	}
	if got := r.Wait(); got != CycleDetected {
		t.Fatalf("Wait() = %v, want %v", got, CycleDetected)
	}
	if calls != 1 {
		t.Fatalf("OnStop called %d times, want 1", calls)
	}
	if why != CycleDetected || final.Iteration != 2 || final.Population != 0 {
		t.Fatalf("final stats %+v (%v), want halt at generation 2", final, why)
	}
	if r.Running() {
		t.Fatal("runner still reports running after a detected cycle")
	}
}

func TestStopDoesNotWaitForStep(t *testing.T) {
	g := &gateStepper{gate: make(chan struct{}), entered: make(chan struct{})}
	stopped := make(chan struct{})
	var reason atomic.Int32
	var calls atomic.Int32
	r := New(g, Options{OnStop: func(_ core.Stats, why Reason) {
		calls.Add(1)
		reason.Store(int32(why))
		close(stopped)
	}})
	r.Start()

	// Let a few generations through, then leave the loop blocked in Step.
	for i := 0; i < 3; i++ {
		<-g.entered
		g.gate <- struct{}{}
	}
	<-g.entered

	returned := make(chan struct{})
	go func() {
		r.Stop()
		close(returned)
	}()
	waitFor(t, returned)

	if r.Start() {
		t.Fatal("Start should refuse while the previous loop is finishing")
	}

	// Release the in-flight generation; the loop must notice the flag.
	g.gate <- struct{}{}
	waitFor(t, stopped)
	r.Wait()

	if calls.Load() != 1 {
		t.Fatalf("OnStop called %d times, want 1", calls.Load())
	}
	if Reason(reason.Load()) != StopRequested {
		t.Fatalf("reason = %v, want %v", Reason(reason.Load()), StopRequested)
	}
	if got := g.Stats().Iteration; got != 4 {
		t.Fatalf("iterations = %d, want 4", got)
	}
}

func TestRunStopsWhenContextEnds(t *testing.T) {
	g := &gateStepper{gate: make(chan struct{})}
	close(g.gate) // never block
	r := New(g, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan Reason, 1)
	go func() {
		reason, err := r.Run(ctx)
		if err != nil {
			t.Errorf("Run: %v", err)
		}
		result <- reason
	}()

	deadline := time.Now().Add(5 * time.Second)
	for g.Stats().Iteration < 100 {
		if time.Now().After(deadline) {
			t.Fatal("runner made no progress")
		}
		time.Sleep(time.Millisecond)
	}
	if _, err := r.Run(context.Background()); !errors.Is(err, ErrRunning) {
		t.Fatalf("second Run = %v, want ErrRunning", err)
	}
	cancel()

	select {
	case reason := <-result:
		if reason != StopRequested {
			t.Fatalf("reason = %v, want %v", reason, StopRequested)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunnerRestartsAfterStop(t *testing.T) {
	g := &gateStepper{gate: make(chan struct{})}
	close(g.gate)
	r := New(g, Options{})

	r.Start()
	r.Stop()
	r.Wait()
	first := g.Stats().Iteration

	if !r.Start() {
		t.Fatal("Start should succeed once the previous loop exited")
	}
	r.Stop()
	r.Wait()
	if g.Stats().Iteration < first {
		t.Fatal("iterations went backwards")
	}
}

func TestReasonString(t *testing.T) {
	if CycleDetected.String() != "cycle detected" || StopRequested.String() != "stop requested" {
		t.Fatal("unexpected reason strings")
	}
	if Reason(9).String() != "unknown" {
		t.Fatal("unexpected string for unknown reason")
	}
}
