// Package batch runs independent simulations for several words in parallel.
// Each run owns its own grid, history and score, so workers share nothing.
package batch

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"wordlife/internal/storage/resultcache"
	"wordlife/internal/word"
	"wordlife/pkg/sims/life"
)

// Entry is the outcome of simulating one word.
type Entry struct {
	Word   string
	Result life.Result
	Err    error
}

// Options controls a batch evaluation.
type Options struct {
	Config   life.Config
	CaseMode word.CaseMode
	// Workers bounds concurrent runs. Zero means runtime.NumCPU().
	Workers int
	// Cache, when set, is consulted before each run and filled after it.
	Cache *resultcache.Store
}

// Evaluate simulates every word and returns entries in input order. A word
// that fails validation or seeding records its error in the entry; only
// context cancellation aborts the batch.
func Evaluate(ctx context.Context, words []string, opts Options) ([]Entry, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	cfg := opts.Config
	cfg.Observer = nil

	entries := make([]Entry, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, w := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries[i] = evaluate(ctx, opts.Cache, w, opts.CaseMode, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func evaluate(ctx context.Context, cache *resultcache.Store, w string, mode word.CaseMode, cfg life.Config) Entry {
	prepared, err := word.Prepare(w, mode)
	if err != nil {
		return Entry{Word: w, Err: err}
	}
	res, err := cache.Simulate(ctx, prepared, cfg)
	var writeErr *resultcache.WriteError
	if errors.As(err, &writeErr) {
		err = nil
	}
	return Entry{Word: w, Result: res, Err: err}
}

// Best returns the successful entry with the highest score. Ties go to the
// earliest entry. It reports false when no entry succeeded.
func Best(entries []Entry) (Entry, bool) {
	var best Entry
	found := false
	for _, e := range entries {
		if e.Err != nil {
			continue
		}
		if !found || e.Result.Score > best.Result.Score {
			best = e
			found = true
		}
	}
	return best, found
}
