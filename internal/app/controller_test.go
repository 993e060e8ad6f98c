package app

import (
	"errors"
	"flag"
	"slices"
	"testing"

	"lifeterrain/internal/core"
	"lifeterrain/internal/runner"
	"lifeterrain/pkg/sims/life"
)

func snapshotOf(t *testing.T, c *Controller) []uint8 {
	t.Helper()
	buf := make([]uint8, c.Size().Cells())
	if _, err := c.Snapshot(buf); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	return buf
}

func TestNewControllerRejectsInvalidConfig(t *testing.T) {
	if _, err := NewController(life.Config{Size: 0, Density: 0.5}, nil); !errors.Is(err, life.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	c, err := NewController(life.Config{Size: 8, Density: 0.5, Seed: 1}, nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	before := c.Terrain()
	if err := c.Reset(1.5); !errors.Is(err, life.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if c.Terrain() != before || c.Density() != 0.5 {
		t.Fatal("failed reset replaced the terrain")
	}
}

func TestControllerStopsOnCycle(t *testing.T) {
	var final core.Stats
	var why runner.Reason
	c, err := NewController(life.Config{Size: 10, Density: 1, Seed: 3}, func(s core.Stats, r runner.Reason) {
		final = s
		why = r
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	if !c.Start() {
		t.Fatal("Start failed")
	}
	if got := c.Wait(); got != runner.CycleDetected {
		t.Fatalf("Wait() = %v, want %v", got, runner.CycleDetected)
	}
	if why != runner.CycleDetected || final.Iteration != 2 {
		t.Fatalf("OnStop got %+v (%v)", final, why)
	}
	if c.Running() {
		t.Fatal("controller still running after cycle")
	}
	if err := c.Reset(0.3); err != nil {
		t.Fatalf("Reset after auto-stop: %v", err)
	}
	if c.Terrain().Iteration() != 0 {
		t.Fatal("reset terrain should start at generation 0")
	}
}

func TestControllerRefusesResetWhileRunning(t *testing.T) {
	c, err := NewController(life.Config{Size: 128, Density: 0.3, Seed: 9}, nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	if !c.Toggle() {
		t.Fatal("Toggle should start the run")
	}
	if err := c.Reset(0.2); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy while running, got %v", err)
	}
	if c.Toggle() {
		t.Fatal("Toggle should stop the run")
	}
	c.Wait()
	if c.Running() {
		t.Fatal("still running after Toggle")
	}
	if err := c.Reset(0.2); err != nil {
		t.Fatalf("Reset after stop: %v", err)
	}
}

func TestControllerResetsAreDeterministic(t *testing.T) {
	cfg := life.Config{Size: 16, Density: 0.4, Seed: 21}
	a, err := NewController(cfg, nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	b, err := NewController(cfg, nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	first := snapshotOf(t, a)
	if !slices.Equal(first, snapshotOf(t, b)) {
		t.Fatal("same seed gave different initial terrains")
	}
	if err := a.Reset(0.4); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if err := b.Reset(0.4); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	second := snapshotOf(t, a)
	if !slices.Equal(second, snapshotOf(t, b)) {
		t.Fatal("same seed gave different terrains after reset")
	}
	if slices.Equal(first, second) {
		t.Fatal("a reset should draw a new terrain")
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-size", "128", "-density", "0.1", "-seed", "5", "-scale", "4"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := life.Config{Size: 128, Density: 0.1, Seed: 5, History: life.DefaultHistory}
	if got := cfg.Life(); got != want {
		t.Fatalf("Life() = %+v, want %+v", got, want)
	}
	if cfg.Scale != 4 || cfg.TPS != 60 {
		t.Fatalf("unexpected display settings: %+v", cfg)
	}
}
