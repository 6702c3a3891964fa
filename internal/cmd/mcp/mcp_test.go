package mcp

import (
	"flag"
	"testing"

	"wordlife/internal/word"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
	if cfg.CaseMode != word.CasePreserve {
		t.Fatalf("expected preserve case mode, got %q", cfg.CaseMode)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("WORDLIFE_MCP_HTTP_ADDR", "env-http")
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-transport", "http", "-case", "lower"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "env-http" {
		t.Fatalf("expected env http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "http" {
		t.Fatalf("expected transport http, got %q", cfg.Transport)
	}
	if cfg.CaseMode != word.CaseLower {
		t.Fatalf("expected lower case mode, got %q", cfg.CaseMode)
	}
}

func TestParseConfigLimits(t *testing.T) {
	t.Setenv("WORDLIFE_MAX_COLS", "64")
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-max-rows", "70"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.LimitRows != 70 || cfg.LimitCols != 64 || cfg.LimitMaxGenerations != 10000 {
		t.Fatalf("unexpected limits %d/%d/%d", cfg.LimitRows, cfg.LimitCols, cfg.LimitMaxGenerations)
	}

	fs = flag.NewFlagSet("mcp", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-max-generations-limit", "-1"}); err == nil {
		t.Fatal("expected error for a negative limit")
	}
}
