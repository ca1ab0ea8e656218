// Package sweep runs many independent random soups in parallel and summarizes
// how each one evolved.
package sweep

import (
	"fmt"
	"sort"
	"sync"

	"lifegrid/internal/life"
	"lifegrid/internal/topology"
)

// Options describes a sweep. Seeds run from FirstSeed to FirstSeed+Runs-1.
// Seed 0 means an empty grid, so FirstSeed must be at least 1.
type Options struct {
	Rows, Cols  int
	Boundary    topology.Boundary
	Density     float64
	FirstSeed   int64
	Runs        int
	Generations int
	Workers     int
}

// Result summarizes one soup.
type Result struct {
	Seed        int64
	Initial     int
	Final       int
	Peak        int
	Generations int
	StableAt    int // generation of the first step that changed nothing, or -1
}

// Extinct reports whether the soup died out.
func (r Result) Extinct() bool { return r.Final == 0 }

func (r Result) String() string {
	state := "active"
	switch {
	case r.Extinct():
		state = fmt.Sprintf("extinct@%d", r.StableAt)
	case r.StableAt >= 0:
		state = fmt.Sprintf("still@%d", r.StableAt)
	}
	return fmt.Sprintf("seed=%d initial=%d final=%d peak=%d gens=%d %s",
		r.Seed, r.Initial, r.Final, r.Peak, r.Generations, state)
}

// Run evaluates every seed across opts.Workers goroutines, one grid per job,
// and returns results ordered by final population, largest first.
func Run(opts Options) ([]Result, error) {
	if opts.Runs <= 0 || opts.Generations < 0 {
		return nil, fmt.Errorf("runs=%d generations=%d: %w", opts.Runs, opts.Generations, life.ErrInvalidArgument)
	}
	if opts.FirstSeed < 1 {
		return nil, fmt.Errorf("first seed %d must be at least 1: %w", opts.FirstSeed, life.ErrInvalidArgument)
	}
	if opts.Density < 0 || opts.Density > 1 {
		return nil, fmt.Errorf("density %v: %w", opts.Density, life.ErrInvalidArgument)
	}
	// Fail fast on bad dimensions instead of once per worker.
	if _, err := life.New(opts.Rows, opts.Cols, opts.Boundary); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int64)
	results := make(chan Result)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res, err := runSoup(opts, seed)
				if err != nil {
					select {
					case errs <- err:
					default:
					}
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < opts.Runs; i++ {
			jobs <- opts.FirstSeed + int64(i)
		}
		close(jobs)
	}()

	all := make([]Result, 0, opts.Runs)
	for res := range results {
		all = append(all, res)
	}
	select {
	case err := <-errs:
		return nil, err
	default:
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Final != all[j].Final {
			return all[i].Final > all[j].Final
		}
		return all[i].Seed < all[j].Seed
	})
	return all, nil
}

func runSoup(opts Options, seed int64) (Result, error) {
	g, err := life.New(opts.Rows, opts.Cols, opts.Boundary)
	if err != nil {
		return Result{}, err
	}
	if err := g.Randomize(seed, opts.Density); err != nil {
		return Result{}, err
	}
	res := Result{Seed: seed, Initial: g.Population(), StableAt: -1}
	res.Peak = res.Initial
	for i := 0; i < opts.Generations; i++ {
		delta := g.Advance()
		res.Peak = max(res.Peak, g.Population())
		if delta.Empty() {
			res.StableAt = g.Generation()
			break
		}
	}
	res.Final = g.Population()
	res.Generations = g.Generation()
	return res, nil
}
