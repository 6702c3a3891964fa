package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"wordlife/internal/prompt"
	"wordlife/internal/word"
	"wordlife/pkg/sims/life"
)

const tracerName = "wordlife/internal/services/mcp"

// startToolSpan opens the span that covers one tool call.
func startToolSpan(ctx context.Context, tool string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "mcp.tool/"+tool,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("mcp.tool", tool)),
	)
}

// Deps holds what the tool handlers need.
type Deps struct {
	Run life.Config
	// Limits bounds simulate_word overrides. The zero value applies
	// life.DefaultLimits.
	Limits   life.Limits
	CaseMode word.CaseMode
	Prompt   *prompt.Tool
}

func (d Deps) withDefaults() Deps {
	if d.Run.MaxGenerations == 0 {
		d.Run = life.DefaultConfig()
	}
	if d.Limits == (life.Limits{}) {
		d.Limits = life.DefaultLimits()
	}
	if d.CaseMode == "" {
		d.CaseMode = word.CasePreserve
	}
	if d.Prompt == nil {
		d.Prompt = prompt.NewTool(prompt.Options{Config: d.Run, CaseMode: d.CaseMode})
	}
	return d
}

// SimulateWordInput represents the MCP tool input for simulating a word.
type SimulateWordInput struct {
	Word           string `json:"word" jsonschema:"ASCII seed word; one grid row per character"`
	Rows           int    `json:"rows,omitempty" jsonschema:"grid rows (default 60)"`
	Cols           int    `json:"cols,omitempty" jsonschema:"grid columns (default 40)"`
	MaxGenerations int    `json:"max_generations,omitempty" jsonschema:"generation cap (default 1000)"`
}

// SimulateWordResult represents the MCP tool output for a simulated word.
type SimulateWordResult struct {
	Word        string `json:"word" jsonschema:"word as seeded, after case handling"`
	Generations int    `json:"generations" jsonschema:"generations advanced before termination"`
	Score       int    `json:"score" jsonschema:"live cells summed over every generation"`
	State       string `json:"state" jsonschema:"terminal state (Static, Oscillator, MaxLimit, Extinction)"`
}

// SimulateWordTool defines the MCP tool schema for simulating a word.
func SimulateWordTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "simulate_word",
		Description: "Seeds Conway's Game of Life with the bit pattern of a word and runs it until it dies out, stops changing, oscillates, or hits the generation cap.",
	}
}

// SimulateWordHandler executes a word simulation.
func SimulateWordHandler(deps Deps) mcp.ToolHandlerFor[SimulateWordInput, SimulateWordResult] {
	deps = deps.withDefaults()
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SimulateWordInput) (*mcp.CallToolResult, SimulateWordResult, error) {
		_, span := startToolSpan(ctx, "simulate_word")
		defer span.End()

		prepared, err := word.Prepare(strings.TrimSpace(input.Word), deps.CaseMode)
		if err != nil {
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, SimulateWordResult{}, fmt.Errorf("invalid word: %w", err)
		}
		cfg := deps.Run
		if input.Rows < 0 || input.Cols < 0 || input.MaxGenerations < 0 {
			return nil, SimulateWordResult{}, fmt.Errorf("rows, cols and max_generations must not be negative")
		}
		if input.Rows > 0 {
			cfg.Size.Rows = input.Rows
		}
		if input.Cols > 0 {
			cfg.Size.Cols = input.Cols
		}
		if input.MaxGenerations > 0 {
			cfg.MaxGenerations = input.MaxGenerations
		}
		if err := deps.Limits.Check(cfg); err != nil {
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, SimulateWordResult{}, err
		}

		res, err := life.Simulate(prepared, cfg)
		if err != nil {
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, SimulateWordResult{}, fmt.Errorf("simulate: %w", err)
		}
		span.SetAttributes(
			attribute.Int("simulation.generations", res.Generations),
			attribute.String("simulation.state", res.State.String()),
		)
		return nil, SimulateWordResult{
			Word:        prepared,
			Generations: res.Generations,
			Score:       res.Score,
			State:       res.State.String(),
		}, nil
	}
}

// HighestRandomScoreInput represents the MCP tool input for a best-of-N run.
type HighestRandomScoreInput struct {
	Count int `json:"count" jsonschema:"number of distinct random candidate words to draw"`
}

// HighestRandomScoreResult represents the MCP tool output for a best-of-N run.
type HighestRandomScoreResult struct {
	Words        []string `json:"words" jsonschema:"words drawn, in draw order"`
	HighestWord  string   `json:"highest_word" jsonschema:"word with the highest score; earliest wins ties"`
	HighestScore int      `json:"highest_score" jsonschema:"score of highest_word"`
	Generations  int      `json:"generations" jsonschema:"generations run by highest_word"`
	State        string   `json:"state" jsonschema:"terminal state of highest_word"`
}

// HighestRandomScoreTool defines the MCP tool schema for a best-of-N run.
func HighestRandomScoreTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "highest_random_score",
		Description: "Draws random words from a fixed candidate list, simulates each, and reports the one with the highest score.",
	}
}

// HighestRandomScoreHandler executes a best-of-N run.
func HighestRandomScoreHandler(deps Deps) mcp.ToolHandlerFor[HighestRandomScoreInput, HighestRandomScoreResult] {
	deps = deps.withDefaults()
	return func(ctx context.Context, _ *mcp.CallToolRequest, input HighestRandomScoreInput) (*mcp.CallToolResult, HighestRandomScoreResult, error) {
		ctx, span := startToolSpan(ctx, "highest_random_score")
		defer span.End()

		ranking, err := deps.Prompt.HighestScore(ctx, input.Count)
		if err != nil {
			span.SetStatus(otelcodes.Error, err.Error())
			return nil, HighestRandomScoreResult{}, fmt.Errorf("highest random score: %w", err)
		}
		return nil, HighestRandomScoreResult{
			Words:        ranking.Words,
			HighestWord:  ranking.HighestWord,
			HighestScore: ranking.HighestScore,
			Generations:  ranking.Result.Generations,
			State:        ranking.Result.State.String(),
		}, nil
	}
}

// InterpretPromptInput represents the MCP tool input for a free-text prompt.
type InterpretPromptInput struct {
	Prompt string `json:"prompt" jsonschema:"question mentioning a quoted word, or asking to generate N random words and report the highest score"`
}

// InterpretPromptResult represents the MCP tool output for a free-text prompt.
type InterpretPromptResult struct {
	Response string `json:"response" jsonschema:"human-readable answer"`
}

// InterpretPromptTool defines the MCP tool schema for free-text prompts.
func InterpretPromptTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "interpret_prompt",
		Description: "Answers a free-text question about word simulations. Unrecognized questions return a fixed apology rather than an error.",
	}
}

// InterpretPromptHandler answers a free-text prompt.
func InterpretPromptHandler(deps Deps) mcp.ToolHandlerFor[InterpretPromptInput, InterpretPromptResult] {
	deps = deps.withDefaults()
	return func(ctx context.Context, _ *mcp.CallToolRequest, input InterpretPromptInput) (*mcp.CallToolResult, InterpretPromptResult, error) {
		ctx, span := startToolSpan(ctx, "interpret_prompt")
		defer span.End()

		text := strings.TrimSpace(input.Prompt)
		if text == "" {
			return nil, InterpretPromptResult{}, fmt.Errorf("prompt is required")
		}
		return nil, InterpretPromptResult{Response: deps.Prompt.Handle(ctx, text)}, nil
	}
}
