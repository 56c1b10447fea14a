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

	"schelling/internal/sims/schelling"
	"schelling/internal/sweep"
)

func main() {
	cfg := schelling.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	fmt.Printf("Showcase: %dx%d grid, %d races, empty ratio %.2f, %d workers\n",
		cfg.Width, cfg.Height, cfg.Races, cfg.EmptyRatio, *workers)
	showcase, err := sweep.Run(ctx, sweep.ThresholdScenarios(cfg, sweep.ShowcaseThresholds), *workers)
	if err != nil {
		log.Fatal(err)
	}
	for _, out := range showcase {
		fmt.Printf("  %-14s agents=%d initial=%.3f final=%.3f rounds=%d moves=%d unsatisfied=%d %s\n",
			out.Scenario.Label, out.Population, out.InitialSimilarity, out.FinalSimilarity,
			out.Result.Rounds, out.Result.Moves, out.Unsatisfied, out.Result.State)
	}

	fmt.Printf("\nSimilarity threshold vs. mean similarity ratio\n")
	curve, err := sweep.Run(ctx, sweep.ThresholdScenarios(cfg, sweep.CurveThresholds), *workers)
	if err != nil {
		log.Fatal(err)
	}
	for _, out := range curve {
		fmt.Printf("  %.2f  %.4f  (%s after %d rounds, %s)\n",
			out.Scenario.Config.SimilarityThreshold, out.FinalSimilarity,
			out.Result.State, out.Result.Rounds, out.Elapsed.Round(time.Millisecond))
	}

	fmt.Printf("\nDone in %s\n", time.Since(start).Round(time.Millisecond))
}
