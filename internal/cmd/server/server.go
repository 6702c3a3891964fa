// Package server parses simulation service flags and starts the HTTP API.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"

	"wordlife/internal/platform/config"
	"wordlife/internal/platform/otel"
	"wordlife/internal/platform/timeouts"
	"wordlife/internal/prompt"
	simulateapp "wordlife/internal/services/simulate/app"
	"wordlife/internal/storage/resultcache"
	"wordlife/internal/word"
	"wordlife/pkg/core"
	"wordlife/pkg/sims/life"
)

// Config holds simulation service command configuration.
type Config struct {
	HTTPAddr       string        `env:"WORDLIFE_HTTP_ADDR"        envDefault:"localhost:8000"`
	CORSOrigins    []string      `env:"WORDLIFE_CORS_ORIGINS"     envDefault:"*" envSeparator:","`
	CaseMode       word.CaseMode `env:"WORDLIFE_CASE_MODE"        envDefault:"lower"`
	PromptCaseMode word.CaseMode `env:"WORDLIFE_PROMPT_CASE_MODE" envDefault:"preserve"`
	Rows           int           `env:"WORDLIFE_ROWS"             envDefault:"60"`
	Cols           int           `env:"WORDLIFE_COLS"             envDefault:"40"`
	MaxGenerations int           `env:"WORDLIFE_MAX_GENERATIONS"  envDefault:"1000"`
	CachePath      string        `env:"WORDLIFE_CACHE_PATH"`

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

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.Var(&cfg.CaseMode, "case", "case handling for /simulate words: preserve or lower")
	fs.Var(&cfg.PromptCaseMode, "prompt-case", "case handling for words named in prompts: preserve or lower")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "grid rows")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "grid columns")
	fs.IntVar(&cfg.MaxGenerations, "max-generations", cfg.MaxGenerations, "generation cap")
	fs.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "BoltDB file for cached results (empty disables caching)")
	fs.IntVar(&cfg.LimitRows, "max-rows", cfg.LimitRows, "largest rows a request may ask for")
	fs.IntVar(&cfg.LimitCols, "max-cols", cfg.LimitCols, "largest cols a request may ask for")
	fs.IntVar(&cfg.LimitMaxGenerations, "max-generations-limit", cfg.LimitMaxGenerations, "largest generation cap a request may ask for")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.LimitRows <= 0 || cfg.LimitCols <= 0 || cfg.LimitMaxGenerations <= 0 {
		return Config{}, fmt.Errorf("request limits must be positive")
	}
	if err := cfg.Limits().Check(cfg.RunConfig()); err != nil {
		return Config{}, fmt.Errorf("default run settings: %w", err)
	}
	return cfg, nil
}

// RunConfig returns the simulation settings described by cfg.
func (c Config) RunConfig() life.Config {
	run := life.DefaultConfig()
	run.Size = core.Size{Rows: c.Rows, Cols: c.Cols}
	run.MaxGenerations = c.MaxGenerations
	return run
}

// Limits returns the request bounds described by cfg.
func (c Config) Limits() life.Limits {
	return life.Limits{
		MaxRows:        c.LimitRows,
		MaxCols:        c.LimitCols,
		MaxGenerations: c.LimitMaxGenerations,
	}
}

// Run starts the simulation HTTP service.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "simulate")
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

	var cache *resultcache.Store
	if cfg.CachePath != "" {
		cache, err = resultcache.Open(cfg.CachePath)
		if err != nil {
			return err
		}
		defer func() {
			if err := cache.Close(); err != nil {
				log.Printf("close result cache: %v", err)
			}
		}()
		log.Printf("caching results in %s", cfg.CachePath)
	}

	run := cfg.RunConfig()
	return simulateapp.Run(ctx, simulateapp.Config{
		HTTPAddr: cfg.HTTPAddr,
		Handler: simulateapp.HandlerConfig{
			Run:            run,
			Limits:         cfg.Limits(),
			CaseMode:       cfg.CaseMode,
			AllowedOrigins: cfg.CORSOrigins,
			Tool:           prompt.NewTool(prompt.Options{Config: run, CaseMode: cfg.PromptCaseMode}),
			Cache:          cache,
		},
	})
}
