// Package sweep runs the same random soup under every birth threshold and
// summarises how each population develops.
package sweep

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"threshold-life/internal/config"
	"threshold-life/internal/sims/life"
)

// Params controls a sweep.
type Params struct {
	Rows, Cols  int
	Seed        int64
	Density     float64
	Generations int
	Workers     int
}

// Result describes one threshold's run.
type Result struct {
	BirthThreshold int
	Initial        int
	Final          int
	Peak           int
	ExtinctAt      int // generation the board died out, -1 if it never did
	GenerationsRun int // steps actually taken; fewer than requested when canceled
	StableAt       int // first generation equal to its predecessor, -1 if none
}

// Run simulates thresholds 1..8 concurrently, one board per worker, and
// returns the results ordered by threshold.
func Run(ctx context.Context, p Params) ([]Result, error) {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	cfgs := make([]config.Config, 0, config.MaxBirthThreshold)
	for t := config.MinBirthThreshold; t <= config.MaxBirthThreshold; t++ {
		cfg, err := config.New(t, p.Rows, p.Cols)
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}

	jobs := make(chan config.Config)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cfg := range jobs {
				results <- runOne(ctx, cfg, p)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, cfg := range cfgs {
			select {
			case jobs <- cfg:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var out []Result
	for res := range results {
		out = append(out, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BirthThreshold < out[j].BirthThreshold })
	return out, nil
}

func runOne(ctx context.Context, cfg config.Config, p Params) Result {
	b := life.New(cfg)
	b.Randomize(p.Seed, p.Density)

	res := Result{
		BirthThreshold: cfg.BirthThreshold(),
		Initial:        b.Population(),
		Peak:           b.Population(),
		ExtinctAt:      -1,
		StableAt:       -1,
	}
	prev := b.CopyCells(nil)
	var cur []uint8
	for gen := 1; gen <= p.Generations; gen++ {
		if ctx.Err() != nil {
			break
		}
		b.Step()
		pop := b.Population()
		res.Peak = max(res.Peak, pop)
		if pop == 0 && res.ExtinctAt < 0 {
			res.ExtinctAt = gen
		}
		cur = b.CopyCells(cur)
		if res.StableAt < 0 && equal(prev, cur) {
			res.StableAt = gen
		}
		prev, cur = cur, prev
		res.GenerationsRun = gen
	}
	res.Final = b.Population()
	return res
}

func equal(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
