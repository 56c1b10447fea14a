package sweep

import (
	"context"
	"errors"
	"slices"
	"testing"

	"schelling/internal/sims/schelling"
)

func smallBase() schelling.Config {
	cfg := schelling.DefaultConfig()
	cfg.Width = 20
	cfg.Height = 20
	cfg.MaxIterations = 60
	cfg.Seed = 2020
	return cfg
}

func TestThresholdScenariosOnlyVaryThreshold(t *testing.T) {
	base := smallBase()
	scenarios := ThresholdScenarios(base, CurveThresholds)
	if len(scenarios) != len(CurveThresholds) {
		t.Fatalf("expected %d scenarios, got %d", len(CurveThresholds), len(scenarios))
	}
	for i, s := range scenarios {
		if s.Config.SimilarityThreshold != CurveThresholds[i] {
			t.Fatalf("scenario %d threshold %f, want %f", i, s.Config.SimilarityThreshold, CurveThresholds[i])
		}
		cfg := s.Config
		cfg.SimilarityThreshold = base.SimilarityThreshold
		if cfg != base {
			t.Fatalf("scenario %d changed more than the threshold: %+v", i, s.Config)
		}
	}
	if scenarios[3].Label != "threshold=0.3" {
		t.Fatalf("unexpected label %q", scenarios[3].Label)
	}
}

func TestRunMatchesSerialAcrossWorkerCounts(t *testing.T) {
	scenarios := ThresholdScenarios(smallBase(), CurveThresholds)

	serial, err := Run(context.Background(), scenarios, 1)
	if err != nil {
		t.Fatalf("serial run: %v", err)
	}
	parallel, err := Run(context.Background(), scenarios, 4)
	if err != nil {
		t.Fatalf("parallel run: %v", err)
	}

	for i := range scenarios {
		a, b := serial[i], parallel[i]
		if a.Scenario.Label != scenarios[i].Label || b.Scenario.Label != scenarios[i].Label {
			t.Fatalf("outcome %d out of order: %q / %q", i, a.Scenario.Label, b.Scenario.Label)
		}
		if a.FinalSimilarity != b.FinalSimilarity || a.InitialSimilarity != b.InitialSimilarity {
			t.Fatalf("%s: similarity differs between serial and parallel runs", a.Scenario.Label)
		}
		if !slices.Equal(a.Result.MovesPerRound, b.Result.MovesPerRound) {
			t.Fatalf("%s: move history differs between serial and parallel runs", a.Scenario.Label)
		}
		if a.FinalSimilarity < 0 || a.FinalSimilarity > 1 {
			t.Fatalf("%s: similarity %f outside [0,1]", a.Scenario.Label, a.FinalSimilarity)
		}
	}

	// Nobody is ever unsatisfied at threshold zero.
	if zero := serial[0]; zero.Result.State != schelling.StateConverged || zero.Result.Moves != 0 {
		t.Fatalf("threshold 0 should converge without moves, got %+v", zero.Result)
	}
}

func TestRunScenarioMatchesDirectSimulation(t *testing.T) {
	cfg := smallBase()
	cfg.SimilarityThreshold = 0.5
	out, err := RunScenario(Scenario{Label: "direct", Config: cfg})
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}

	w, err := schelling.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Populate(); err != nil {
		t.Fatal(err)
	}
	before := w.Snapshot()
	if _, err := w.Update(); err != nil {
		t.Fatal(err)
	}
	final, err := w.CalculateSimilarity()
	if err != nil {
		t.Fatal(err)
	}
	if final != out.FinalSimilarity {
		t.Fatalf("sweep similarity %f differs from direct run %f", out.FinalSimilarity, final)
	}
	if out.Population != len(before.Agents) {
		t.Fatalf("expected population %d, got %d", len(before.Agents), out.Population)
	}
	if out.Result.Rounds != len(out.Result.MovesPerRound) {
		t.Fatalf("rounds %d disagree with move history %v", out.Result.Rounds, out.Result.MovesPerRound)
	}
}

func TestRunReportsInvalidConfig(t *testing.T) {
	bad := smallBase()
	bad.Races = 0
	scenarios := []Scenario{{Label: "ok", Config: smallBase()}, {Label: "bad", Config: bad}}
	if _, err := Run(context.Background(), scenarios, 2); !errors.Is(err, schelling.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRunHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	scenarios := ThresholdScenarios(smallBase(), ShowcaseThresholds)
	if _, err := Run(ctx, scenarios, 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
