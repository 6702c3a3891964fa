// Package prompt answers free-text questions about word simulations: the
// outcome for a quoted word, or the highest score among randomly drawn
// candidate words.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"wordlife/internal/batch"
	"wordlife/internal/word"
	"wordlife/pkg/core"
	"wordlife/pkg/sims/life"
)

// FallbackResponse is returned for prompts the tool cannot interpret.
const FallbackResponse = "Sorry, I couldn't understand the prompt."

// CandidateWords is the pool random words are drawn from.
var CandidateWords = []string{
	"monument", "castle", "river", "forest", "python", "challenge",
	"conway", "matrix", "alpha", "beta", "gamma", "delta",
}

// ErrCount is returned when more random words are requested than exist.
var ErrCount = errors.New("random word count out of range")

// Options configures a Tool.
type Options struct {
	Config     life.Config
	CaseMode   word.CaseMode
	Candidates []string
	Seed       int64
	Language   language.Tag
	Workers    int
}

// Ranking is the outcome of a best-of-N request.
type Ranking struct {
	Words        []string    `json:"words"`
	HighestWord  string      `json:"highest_word"`
	HighestScore int         `json:"highest_score"`
	Result       life.Result `json:"result"`
}

// Tool runs simulations on behalf of prompts. It is safe for concurrent use.
type Tool struct {
	cfg        life.Config
	mode       word.CaseMode
	candidates []string
	workers    int
	printer    *message.Printer

	mu  sync.Mutex
	rng *core.RNG
}

// NewTool constructs a Tool. Zero-valued options fall back to the default
// run config, case preservation, CandidateWords and English formatting.
func NewTool(opts Options) *Tool {
	cfg := opts.Config
	if cfg.MaxGenerations == 0 && cfg.Size == (core.Size{}) {
		cfg = life.DefaultConfig()
	}
	mode := opts.CaseMode
	if mode == "" {
		mode = word.CasePreserve
	}
	candidates := opts.Candidates
	if len(candidates) == 0 {
		candidates = CandidateWords
	}
	tag := opts.Language
	if tag == language.Und {
		tag = language.English
	}
	return &Tool{
		cfg:        cfg,
		mode:       mode,
		candidates: append([]string(nil), candidates...),
		workers:    opts.Workers,
		printer:    message.NewPrinter(tag),
		rng:        core.NewRNG(opts.Seed),
	}
}

// Candidates returns the candidate pool size.
func (t *Tool) Candidates() int { return len(t.candidates) }

// SimulateWord validates w, applies the case mode and runs it.
func (t *Tool) SimulateWord(w string) (life.Result, error) {
	prepared, err := word.Prepare(w, t.mode)
	if err != nil {
		return life.Result{}, err
	}
	return life.Simulate(prepared, t.cfg)
}

// RandomWords draws n distinct candidate words.
func (t *Tool) RandomWords(n int) ([]string, error) {
	if n < 1 || n > len(t.candidates) {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrCount, n, len(t.candidates))
	}
	t.mu.Lock()
	idx := t.rng.Sample(len(t.candidates), n)
	t.mu.Unlock()

	words := make([]string, n)
	for i, j := range idx {
		words[i] = t.candidates[j]
	}
	return words, nil
}

// HighestScore draws n random words, simulates each and reports the best.
func (t *Tool) HighestScore(ctx context.Context, n int) (Ranking, error) {
	words, err := t.RandomWords(n)
	if err != nil {
		return Ranking{}, err
	}
	entries, err := batch.Evaluate(ctx, words, batch.Options{Config: t.cfg, CaseMode: t.mode, Workers: t.workers})
	if err != nil {
		return Ranking{}, err
	}
	for _, e := range entries {
		if e.Err != nil {
			return Ranking{}, fmt.Errorf("simulate %q: %w", e.Word, e.Err)
		}
	}
	best, _ := batch.Best(entries)
	return Ranking{
		Words:        words,
		HighestWord:  best.Word,
		HighestScore: best.Result.Score,
		Result:       best.Result,
	}, nil
}

// Handle answers a free-text prompt. Unrecognized prompts, bad words and
// failed runs all produce a readable sentence rather than an error.
func (t *Tool) Handle(ctx context.Context, text string) string {
	req := Parse(text)
	switch req.Kind {
	case KindWord:
		return t.describeWord(req.Word)
	case KindHighestRandom:
		return t.describeHighest(ctx, req.Count)
	default:
		return FallbackResponse
	}
}

func (t *Tool) describeWord(w string) string {
	res, err := t.SimulateWord(w)
	switch {
	case errors.Is(err, word.ErrNotASCII):
		return t.printer.Sprintf("The word '%s' must contain only ASCII characters.", w)
	case errors.Is(err, life.ErrGridTooSmall):
		return t.printer.Sprintf("The word '%s' is too long to fit on a %d-row grid.", w, t.cfg.Size.Rows)
	case err != nil:
		return t.printer.Sprintf("I couldn't simulate the word '%s': %v", w, err)
	}
	return t.printer.Sprintf("The word '%s' ran for %d generations with a score of %d and ended as %s.",
		w, res.Generations, res.Score, res.State)
}

func (t *Tool) describeHighest(ctx context.Context, n int) string {
	ranking, err := t.HighestScore(ctx, n)
	switch {
	case errors.Is(err, ErrCount):
		return t.printer.Sprintf("I can only generate between 1 and %d random words.", len(t.candidates))
	case err != nil:
		return t.printer.Sprintf("I couldn't finish the random word run: %v", err)
	}
	return t.printer.Sprintf("Generated words: %s. Highest Conway score: %d for '%s' (%d generations, %s).",
		strings.Join(ranking.Words, ", "), ranking.HighestScore, ranking.HighestWord, ranking.Result.Generations, ranking.Result.State)
}
