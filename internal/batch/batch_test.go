package batch

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"wordlife/internal/storage/resultcache"
	"wordlife/internal/word"
	"wordlife/pkg/sims/life"
)

func TestEvaluateKeepsInputOrder(t *testing.T) {
	words := []string{"monument", "castle", "river", "forest", "python"}
	entries, err := Evaluate(context.Background(), words, Options{Config: life.DefaultConfig(), Workers: 2})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(entries) != len(words) {
		t.Fatalf("got %d entries, want %d", len(entries), len(words))
	}
	for i, e := range entries {
		if e.Word != words[i] {
			t.Fatalf("entry %d word = %q, want %q", i, e.Word, words[i])
		}
		if e.Err != nil {
			t.Fatalf("entry %q: %v", e.Word, e.Err)
		}
		want, err := life.Simulate(words[i], life.DefaultConfig())
		if err != nil {
			t.Fatalf("simulate: %v", err)
		}
		if e.Result != want {
			t.Fatalf("entry %q = %+v, want %+v", e.Word, e.Result, want)
		}
	}
}

func TestEvaluateRecordsPerWordErrors(t *testing.T) {
	entries, err := Evaluate(context.Background(), []string{"ok", "", "nö"}, Options{Config: life.DefaultConfig()})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if entries[0].Err != nil {
		t.Fatalf("unexpected error for valid word: %v", entries[0].Err)
	}
	if !errors.Is(entries[1].Err, word.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", entries[1].Err)
	}
	if !errors.Is(entries[2].Err, word.ErrNotASCII) {
		t.Fatalf("expected ErrNotASCII, got %v", entries[2].Err)
	}
}

func TestEvaluateAppliesCaseMode(t *testing.T) {
	entries, err := Evaluate(context.Background(), []string{"Brayden"}, Options{Config: life.DefaultConfig(), CaseMode: word.CaseLower})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	want, err := life.Simulate("brayden", life.DefaultConfig())
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if entries[0].Result != want {
		t.Fatalf("result = %+v, want lowercased run %+v", entries[0].Result, want)
	}
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Evaluate(ctx, []string{"alpha", "beta"}, Options{Config: life.DefaultConfig()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBestPrefersEarliestOnTie(t *testing.T) {
	entries := []Entry{
		{Word: "a", Result: life.Result{Score: 5}},
		{Word: "b", Err: errors.New("failed")},
		{Word: "c", Result: life.Result{Score: 9}},
		{Word: "d", Result: life.Result{Score: 9}},
	}
	best, ok := Best(entries)
	if !ok {
		t.Fatal("expected a best entry")
	}
	if best.Word != "c" {
		t.Fatalf("best = %q, want c", best.Word)
	}

	if _, ok := Best([]Entry{{Word: "x", Err: errors.New("failed")}}); ok {
		t.Fatal("expected no best entry when all failed")
	}
}

func TestEvaluateUsesCache(t *testing.T) {
	cache, err := resultcache.Open(filepath.Join(t.TempDir(), "batch.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	cfg := life.DefaultConfig()
	planted := life.Result{Generations: 3, Score: 33, State: life.Oscillator}
	if err := cache.Put(context.Background(), resultcache.KeyFor("alpha", cfg), planted); err != nil {
		t.Fatalf("plant: %v", err)
	}
	entries, err := Evaluate(context.Background(), []string{"alpha", "beta"}, Options{Config: cfg, Cache: cache})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if entries[0].Result != planted {
		t.Fatalf("got %+v, expected cached %+v", entries[0].Result, planted)
	}
	if _, ok, _ := cache.Get(context.Background(), resultcache.KeyFor("beta", cfg)); !ok {
		t.Fatal("expected beta to be cached after evaluation")
	}
}
