// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"

	"wordlife/internal/platform/config"
	"wordlife/internal/platform/otel"
	"wordlife/internal/platform/timeouts"
	"wordlife/internal/prompt"
	mcpapp "wordlife/internal/services/mcp"
	"wordlife/internal/word"
	"wordlife/pkg/sims/life"
)

// Config holds MCP command configuration.
type Config struct {
	HTTPAddr  string        `env:"WORDLIFE_MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	Transport string        `env:"WORDLIFE_MCP_TRANSPORT" envDefault:"stdio"`
	CaseMode  word.CaseMode `env:"WORDLIFE_CASE_MODE"     envDefault:"preserve"`

	LimitRows           int `env:"WORDLIFE_MAX_ROWS"              envDefault:"500"`
	LimitCols           int `env:"WORDLIFE_MAX_COLS"              envDefault:"500"`
	LimitMaxGenerations int `env:"WORDLIFE_MAX_GENERATIONS_LIMIT" envDefault:"10000"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.Var(&cfg.CaseMode, "case", "case handling for words: preserve or lower")
	fs.IntVar(&cfg.LimitRows, "max-rows", cfg.LimitRows, "largest rows simulate_word accepts")
	fs.IntVar(&cfg.LimitCols, "max-cols", cfg.LimitCols, "largest cols simulate_word accepts")
	fs.IntVar(&cfg.LimitMaxGenerations, "max-generations-limit", cfg.LimitMaxGenerations, "largest generation cap simulate_word accepts")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.LimitRows <= 0 || cfg.LimitCols <= 0 || cfg.LimitMaxGenerations <= 0 {
		return Config{}, fmt.Errorf("request limits must be positive")
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.OTelShutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	run := life.DefaultConfig()
	return mcpapp.Run(ctx, mcpapp.Config{
		Transport: mcpapp.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr,
		Deps: mcpapp.Deps{
			Run: run,
			Limits: life.Limits{
				MaxRows:        cfg.LimitRows,
				MaxCols:        cfg.LimitCols,
				MaxGenerations: cfg.LimitMaxGenerations,
			},
			CaseMode: cfg.CaseMode,
			Prompt:   prompt.NewTool(prompt.Options{Config: run, CaseMode: cfg.CaseMode}),
		},
	})
}
