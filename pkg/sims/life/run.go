package life

import (
	"fmt"

	"wordlife/pkg/core"
)

// Simulate seeds a grid from word and runs it to a terminal state.
func Simulate(word string, cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	seed, err := Seed(word, cfg.Size)
	if err != nil {
		return Result{}, fmt.Errorf("seed %q: %w", word, err)
	}
	return Run(seed, cfg)
}

// Run steps seed until it dies out, stops changing, repeats a grid from the
// history window, or exhausts cfg.MaxGenerations. cfg.Size is ignored in
// favor of the seed's own dimensions. The seed is not modified.
//
// A run that ends Static does not count the final no-op step as a
// generation, but its live cells still count towards the score.
func Run(seed *core.Grid, cfg Config) (Result, error) {
	return run(seed, cfg, stepInto)
}

// run drives the classification loop with step producing each next grid.
func run(seed *core.Grid, cfg Config, step func(dst, src *core.Grid)) (Result, error) {
	if seed == nil {
		return Result{}, fmt.Errorf("%w: nil seed", ErrInvalidSize)
	}
	if err := seed.Size().Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	if cfg.MaxGenerations <= 0 {
		return Result{}, ErrInvalidMaxGenerations
	}
	size := seed.Size()
	cur := seed.Clone()
	nxt := core.NewGrid(size)
	past := newHistory(HistoryWindow, size)

	var sc scorer
	sc.add(cur)
	if cfg.Observer != nil {
		cfg.Observer(0, cur)
	}

	generations := 0
	for generations < cfg.MaxGenerations {
		step(nxt, cur)
		generations++
		live := sc.add(nxt)
		if cfg.Observer != nil {
			cfg.Observer(generations, nxt)
		}

		if live == 0 {
			return Result{Generations: generations, Score: sc.total, State: Extinction}, nil
		}
		if nxt.Equal(cur) {
			return Result{Generations: generations - 1, Score: sc.total, State: Static}, nil
		}
		if past.Contains(nxt) {
			return Result{Generations: generations, Score: sc.total, State: Oscillator}, nil
		}
		past.Push(cur)
		cur, nxt = nxt, cur
	}
	return Result{Generations: generations, Score: sc.total, State: MaxLimit}, nil
}

// scorer accumulates live-cell counts across every grid of a run.
type scorer struct {
	total int
}

func (s *scorer) add(g *core.Grid) int {
	live := g.LiveCount()
	s.total += live
	return live
}
