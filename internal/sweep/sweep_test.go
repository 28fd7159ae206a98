package sweep

import (
	"context"
	"testing"

	"threshold-life/internal/config"
	"threshold-life/internal/sims/life"
)

func TestRunCoversEveryThreshold(t *testing.T) {
	p := Params{Rows: 12, Cols: 12, Seed: 5, Density: 0.35, Generations: 20, Workers: 3}
	results, err := Run(context.Background(), p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != config.MaxBirthThreshold {
		t.Fatalf("expected %d results, got %d", config.MaxBirthThreshold, len(results))
	}
	for i, res := range results {
		if res.BirthThreshold != i+1 {
			t.Fatalf("results out of order: %+v", results)
		}
		if res.Initial != results[0].Initial {
			t.Fatal("every threshold must start from the same soup")
		}
		if res.GenerationsRun != p.Generations {
			t.Fatalf("threshold %d ran %d generations, expected %d", res.BirthThreshold, res.GenerationsRun, p.Generations)
		}
		if res.Peak < res.Final || res.Peak < res.Initial {
			t.Fatalf("peak below observed population: %+v", res)
		}
	}
}

func TestRunMatchesSequentialBoard(t *testing.T) {
	p := Params{Rows: 9, Cols: 10, Seed: 77, Density: 0.4, Generations: 15, Workers: 2}
	results, err := Run(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	cfg, _ := config.New(3, 9, 10)
	b := life.New(cfg)
	b.Randomize(77, 0.4)
	for i := 0; i < 15; i++ {
		b.Step()
	}
	if got := results[2].Final; got != b.Population() {
		t.Fatalf("threshold 3 final population %d, expected %d", got, b.Population())
	}
}

func TestRunDetectsStableEmptyBoard(t *testing.T) {
	results, err := Run(context.Background(), Params{Rows: 5, Cols: 5, Density: 0, Generations: 3, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, res := range results {
		if res.StableAt != 1 || res.Final != 0 || res.ExtinctAt != 1 {
			t.Fatalf("empty soup should be stable and extinct at generation 1: %+v", res)
		}
	}
}

func TestRunRejectsSmallGrid(t *testing.T) {
	if _, err := Run(context.Background(), Params{Rows: 4, Cols: 10, Generations: 1}); err == nil {
		t.Fatal("expected grid validation error")
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, Params{Rows: 5, Cols: 5, Generations: 10}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRunOneStopsWhenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg, _ := config.New(3, 6, 6)
	res := runOne(ctx, cfg, Params{Rows: 6, Cols: 6, Seed: 1, Density: 0.5, Generations: 10})
	if res.GenerationsRun != 0 {
		t.Fatalf("canceled run took %d generations, expected 0", res.GenerationsRun)
	}
	if res.Final != res.Initial {
		t.Fatalf("canceled run changed the board: %+v", res)
	}
}
