package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"lifeterrain/pkg/sims/life"
)

func main() {
	size := flag.Int("size", 128, "terrain width and height in cells")
	steps := flag.Int("steps", 5000, "generation cap per run")
	seeds := flag.Int("seeds", 8, "runs per density")
	seed := flag.Int64("seed", 1, "first seed; runs use consecutive seeds")
	from := flag.Float64("from", 0.05, "lowest density")
	to := flag.Float64("to", 0.95, "highest density")
	step := flag.Float64("step", 0.10, "density increment")
	history := flag.Int("history", life.DefaultHistory, "checksums remembered for cycle detection")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if *step <= 0 || *from > *to {
		log.Fatalf("life-sweep: empty density range %.2f..%.2f step %.2f", *from, *to, *step)
	}

	var cfgs []life.Config
	for i := 0; ; i++ {
		density := *from + float64(i)*(*step)
		if density > *to+1e-9 {
			break
		}
		for s := 0; s < *seeds; s++ {
			cfg := life.Config{Size: *size, Density: density, Seed: *seed + int64(s), History: *history}
			if err := cfg.Validate(); err != nil {
				log.Fatalf("life-sweep: %v", err)
			}
			cfgs = append(cfgs, cfg)
		}
	}

	fmt.Printf("Sweeping %d runs (%d workers, %d step cap, %dx%d)\n", len(cfgs), *workers, *steps, *size, *size)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := life.Sweep(ctx, cfgs, *steps, *workers)
	if err != nil {
		log.Fatalf("life-sweep: %v", err)
	}

	fmt.Printf("\n%-8s %5s %7s %21s %21s\n", "density", "runs", "halted", "generations (mean±sd)", "population (mean±sd)")
	for _, s := range life.Summarize(results) {
		fmt.Printf("%-8.2f %5d %6.0f%% %12.1f ± %-6.1f %12.1f ± %-6.1f\n",
			s.Density, s.Runs, s.HaltRate*100, s.MeanGenerations, s.StdGenerations, s.MeanPopulation, s.StdPopulation)
	}
	fmt.Printf("\nDone in %s\n", time.Since(start).Round(time.Millisecond))
}
