package life

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"
)

func sweepConfigs() []Config {
	var cfgs []Config
	for _, density := range []float64{0, 0.2, 0.4} {
		for seed := int64(1); seed <= 3; seed++ {
			cfgs = append(cfgs, Config{Size: 24, Density: density, Seed: seed, History: DefaultHistory})
		}
	}
	return cfgs
}

func TestSweepDeterministic(t *testing.T) {
	cfgs := sweepConfigs()
	a, err := Sweep(context.Background(), cfgs, 400, 4)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	b, err := Sweep(context.Background(), cfgs, 400, 1)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if !slices.Equal(a, b) {
		t.Fatal("sweep results depend on worker count")
	}
	for i, r := range a {
		if r.Density != cfgs[i].Density || r.Seed != cfgs[i].Seed {
			t.Fatalf("result %d out of order: %+v", i, r)
		}
		if r.Generations > 400 {
			t.Fatalf("run exceeded step cap: %+v", r)
		}
	}
}

func TestRunUntilCycleEmptyBoardHalts(t *testing.T) {
	res, err := RunUntilCycle(context.Background(), Config{Size: 10, Density: 0, Seed: 1}, 100)
	if err != nil {
		t.Fatalf("RunUntilCycle: %v", err)
	}
	if !res.Halted || res.Generations != 2 || res.Population != 0 {
		t.Fatalf("empty board result = %+v, want halt at generation 2", res)
	}
}

func TestRunUntilCycleHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunUntilCycle(ctx, DefaultConfig(), 10); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSweepPropagatesConfigErrors(t *testing.T) {
	_, err := Sweep(context.Background(), []Config{{Size: 8, Density: 2}}, 10, 2)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []RunResult{
		{Density: 0.3, Halted: true, Generations: 10, Population: 4},
		{Density: 0.1, Halted: false, Generations: 50, Population: 7},
		{Density: 0.3, Halted: false, Generations: 30, Population: 8},
	}
	got := Summarize(results)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}
	if got[0].Density != 0.1 || got[0].Runs != 1 || got[0].MeanGenerations != 50 || got[0].StdGenerations != 0 {
		t.Fatalf("unexpected single-run summary: %+v", got[0])
	}
	s := got[1]
	if s.Runs != 2 || s.HaltRate != 0.5 || s.MeanGenerations != 20 || s.MeanPopulation != 6 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if math.Abs(s.StdGenerations-math.Sqrt(200)) > 1e-9 {
		t.Fatalf("StdGenerations = %f, want %f", s.StdGenerations, math.Sqrt(200))
	}
}
