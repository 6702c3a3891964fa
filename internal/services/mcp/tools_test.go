package mcp

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"wordlife/internal/prompt"
	"wordlife/internal/word"
	"wordlife/pkg/sims/life"
)

func testDeps() Deps {
	cfg := life.DefaultConfig()
	return Deps{
		Run:      cfg,
		CaseMode: word.CasePreserve,
		Prompt: prompt.NewTool(prompt.Options{
			Config:     cfg,
			CaseMode:   word.CasePreserve,
			Candidates: []string{"A", " "},
			Seed:       7,
		}),
	}
}

func TestSimulateWordHandler(t *testing.T) {
	handler := SimulateWordHandler(testDeps())
	_, out, err := handler(context.Background(), nil, SimulateWordInput{Word: "A"})
	if err != nil {
		t.Fatalf("simulate_word: %v", err)
	}
	want := SimulateWordResult{Word: "A", Generations: 1, Score: 2, State: "Extinction"}
	if out != want {
		t.Fatalf("got %+v, expected %+v", out, want)
	}
}

func TestSimulateWordHandlerOverrides(t *testing.T) {
	handler := SimulateWordHandler(testDeps())
	if _, _, err := handler(context.Background(), nil, SimulateWordInput{Word: "A", Rows: 10, Cols: 10}); err != nil {
		t.Fatalf("10x10 run: %v", err)
	}
	if _, _, err := handler(context.Background(), nil, SimulateWordInput{Word: "A", Cols: 4}); err == nil {
		t.Fatal("expected error for grid narrower than a character")
	}
	if _, _, err := handler(context.Background(), nil, SimulateWordInput{Word: "A", Rows: -1}); err == nil {
		t.Fatal("expected error for negative rows")
	}
}

func TestSimulateWordHandlerEnforcesLimits(t *testing.T) {
	handler := SimulateWordHandler(testDeps())
	for _, input := range []SimulateWordInput{
		{Word: "A", Rows: math.MaxInt / 2, Cols: 3},
		{Word: "A", Rows: 200000, Cols: 200000},
		{Word: "A", MaxGenerations: life.DefaultLimitMaxGenerations + 1},
	} {
		_, _, err := handler(context.Background(), nil, input)
		if !errors.Is(err, life.ErrLimitExceeded) {
			t.Fatalf("input %+v: expected ErrLimitExceeded, got %v", input, err)
		}
	}

	deps := testDeps()
	deps.Limits = life.Limits{MaxRows: 100}
	if _, _, err := SimulateWordHandler(deps)(context.Background(), nil, SimulateWordInput{Word: "A", Rows: 100}); err != nil {
		t.Fatalf("rows at the limit: %v", err)
	}
}

func TestSimulateWordHandlerRejectsBadWords(t *testing.T) {
	handler := SimulateWordHandler(testDeps())
	for _, w := range []string{"", "   ", "héllo"} {
		if _, _, err := handler(context.Background(), nil, SimulateWordInput{Word: w}); err == nil {
			t.Fatalf("expected error for %q", w)
		}
	}
}

func TestHighestRandomScoreHandler(t *testing.T) {
	handler := HighestRandomScoreHandler(testDeps())
	_, out, err := handler(context.Background(), nil, HighestRandomScoreInput{Count: 2})
	if err != nil {
		t.Fatalf("highest_random_score: %v", err)
	}
	if len(out.Words) != 2 {
		t.Fatalf("expected 2 words, got %v", out.Words)
	}
	if out.HighestWord != "A" || out.HighestScore != 2 || out.State != "Extinction" {
		t.Fatalf("unexpected ranking %+v", out)
	}
}

func TestHighestRandomScoreHandlerCountBounds(t *testing.T) {
	handler := HighestRandomScoreHandler(testDeps())
	for _, n := range []int{0, 3} {
		if _, _, err := handler(context.Background(), nil, HighestRandomScoreInput{Count: n}); err == nil {
			t.Fatalf("expected error for count %d", n)
		}
	}
}

func TestInterpretPromptHandler(t *testing.T) {
	handler := InterpretPromptHandler(testDeps())
	_, out, err := handler(context.Background(), nil, InterpretPromptInput{Prompt: `How does "A" do?`})
	if err != nil {
		t.Fatalf("interpret_prompt: %v", err)
	}
	if !strings.Contains(out.Response, "'A'") || !strings.Contains(out.Response, "Extinction") {
		t.Fatalf("unexpected response %q", out.Response)
	}

	_, out, err = handler(context.Background(), nil, InterpretPromptInput{Prompt: "what is the weather"})
	if err != nil {
		t.Fatalf("interpret_prompt: %v", err)
	}
	if out.Response != prompt.FallbackResponse {
		t.Fatalf("got %q, expected fallback", out.Response)
	}

	if _, _, err := handler(context.Background(), nil, InterpretPromptInput{Prompt: "  "}); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}
