// Package sweep runs independent Schelling configurations side by side and
// collects their end-of-run statistics.
package sweep

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"schelling/internal/sims/schelling"
)

// Scenario is one labelled configuration to simulate.
type Scenario struct {
	Label  string
	Config schelling.Config
}

// Outcome reports how a scenario ended.
type Outcome struct {
	Scenario Scenario

	Population        int
	InitialSimilarity float64
	FinalSimilarity   float64
	Unsatisfied       int
	Result            schelling.Result

	Elapsed time.Duration
}

// ThresholdScenarios varies only the similarity threshold of base.
func ThresholdScenarios(base schelling.Config, thresholds []float64) []Scenario {
	out := make([]Scenario, 0, len(thresholds))
	for _, th := range thresholds {
		cfg := base
		cfg.SimilarityThreshold = th
		out = append(out, Scenario{
			Label:  "threshold=" + strconv.FormatFloat(th, 'f', -1, 64),
			Config: cfg,
		})
	}
	return out
}

// ShowcaseThresholds are the thresholds of the initial/final state comparison.
var ShowcaseThresholds = []float64{0.3, 0.5, 0.8}

// CurveThresholds trace mean similarity against the similarity threshold.
var CurveThresholds = []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}

// RunScenario builds, populates and updates a fresh world for s.
func RunScenario(s Scenario) (Outcome, error) {
	start := time.Now()
	w, err := schelling.New(s.Config)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", s.Label, err)
	}
	if err := w.Populate(); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", s.Label, err)
	}
	initial, err := w.CalculateSimilarity()
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: initial similarity: %w", s.Label, err)
	}
	res, err := w.Update()
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: update: %w", s.Label, err)
	}
	final, err := w.CalculateSimilarity()
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: final similarity: %w", s.Label, err)
	}
	return Outcome{
		Scenario:          s,
		Population:        w.Population(),
		InitialSimilarity: initial,
		FinalSimilarity:   final,
		Unsatisfied:       w.Unsatisfied(),
		Result:            res,
		Elapsed:           time.Since(start),
	}, nil
}

// Run simulates every scenario using at most workers goroutines. Outcomes are
// returned in scenario order. The first failing scenario cancels the rest.
func Run(ctx context.Context, scenarios []Scenario, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = 1
	}
	outcomes := make([]Outcome, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range scenarios {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := RunScenario(s)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
