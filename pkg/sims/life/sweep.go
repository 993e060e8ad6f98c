package life

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// RunResult summarises a single headless run.
type RunResult struct {
	Density float64
	Seed    int64

	// Halted reports whether the cycle detector stopped the run before the
	// step cap was reached.
	Halted      bool
	Generations uint64
	Population  int
}

// RunUntilCycle steps a terrain built from cfg until the cycle detector sees
// a repeated checksum or maxSteps generations have run.
func RunUntilCycle(ctx context.Context, cfg Config, maxSteps int) (RunResult, error) {
	t, err := NewWithConfig(cfg)
	if err != nil {
		return RunResult{}, err
	}
	det := NewCycleDetector(cfg.History)
	res := RunResult{Density: cfg.Density, Seed: cfg.Seed}
	for i := 0; i < maxSteps; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return RunResult{}, err
			}
		}
		t.Step()
		if det.Observe(t.Checksum()) {
			res.Halted = true
			break
		}
	}
	s := t.Stats()
	res.Generations = s.Iteration
	res.Population = s.Population
	return res, nil
}

// Sweep runs every configuration with at most workers runs in flight. Results
// are returned in the order of cfgs.
func Sweep(ctx context.Context, cfgs []Config, maxSteps, workers int) ([]RunResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]RunResult, len(cfgs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, cfg := range cfgs {
		i, cfg := i, cfg
		g.Go(func() error {
			res, err := RunUntilCycle(ctx, cfg, maxSteps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DensitySummary aggregates the runs that shared a seed density.
type DensitySummary struct {
	Density  float64
	Runs     int
	HaltRate float64

	MeanGenerations float64
	StdGenerations  float64
	MeanPopulation  float64
	StdPopulation   float64
}

// Summarize groups results by density, ordered by ascending density.
func Summarize(results []RunResult) []DensitySummary {
	groups := map[float64][]RunResult{}
	for _, r := range results {
		groups[r.Density] = append(groups[r.Density], r)
	}
	densities := make([]float64, 0, len(groups))
	for d := range groups {
		densities = append(densities, d)
	}
	sort.Float64s(densities)

	out := make([]DensitySummary, 0, len(densities))
	for _, d := range densities {
		runs := groups[d]
		gens := make([]float64, len(runs))
		pops := make([]float64, len(runs))
		halted := 0
		for i, r := range runs {
			gens[i] = float64(r.Generations)
			pops[i] = float64(r.Population)
			if r.Halted {
				halted++
			}
		}
		sum := DensitySummary{
			Density:  d,
			Runs:     len(runs),
			HaltRate: float64(halted) / float64(len(runs)),
		}
		if len(runs) > 1 {
			sum.MeanGenerations, sum.StdGenerations = stat.MeanStdDev(gens, nil)
			sum.MeanPopulation, sum.StdPopulation = stat.MeanStdDev(pops, nil)
		} else {
			sum.MeanGenerations = gens[0]
			sum.MeanPopulation = pops[0]
		}
		out = append(out, sum)
	}
	return out
}
