// Command word-sweep simulates many words in parallel and ranks them by score.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"wordlife/internal/app"
	"wordlife/internal/batch"
	"wordlife/internal/prompt"
	"wordlife/internal/storage/resultcache"
	"wordlife/internal/word"
)

type sweepConfig struct {
	file     string
	cache    string
	top      int
	workers  int
	caseMode word.CaseMode
	settings app.KVList
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("word-sweep: ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("word-sweep", flag.ContinueOnError)
	cfg := sweepConfig{caseMode: word.CasePreserve}
	fs.StringVar(&cfg.file, "file", "", "read words from this file, one per line (- for stdin)")
	fs.StringVar(&cfg.cache, "cache", "", "BoltDB file for cached results")
	fs.IntVar(&cfg.top, "top", 10, "rows to print (0 prints all)")
	fs.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	fs.Var(&cfg.caseMode, "case", "case handling: preserve or lower")
	fs.Var(&cfg.settings, "set", "run setting in key=value form: rows, cols, max_generations (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	words, err := collectWords(cfg.file, fs.Args())
	if err != nil {
		return err
	}
	if len(words) == 0 {
		words = prompt.CandidateWords
	}

	var cache *resultcache.Store
	if cfg.cache != "" {
		if cache, err = resultcache.Open(cfg.cache); err != nil {
			return err
		}
		defer closeCache(cache)
	}

	runCfg := (&app.Config{Settings: cfg.settings}).RunConfig()
	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "Sweeping %d words on a %s grid (%d workers, cap %d generations)\n",
		len(words), runCfg.Size, cfg.workers, runCfg.MaxGenerations)

	start := time.Now()
	entries, err := batch.Evaluate(ctx, words, batch.Options{Config: runCfg, CaseMode: cfg.caseMode, Workers: cfg.workers, Cache: cache})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	var ranked, failed []batch.Entry
	for _, e := range entries {
		if e.Err != nil {
			failed = append(failed, e)
			continue
		}
		ranked = append(ranked, e)
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Result.Score > ranked[j].Result.Score })

	limit := len(ranked)
	if cfg.top > 0 && cfg.top < limit {
		limit = cfg.top
	}
	p.Fprintf(stdout, "\nTop %d results (elapsed %s):\n", limit, elapsed.Round(time.Millisecond))
	for i, e := range ranked[:limit] {
		p.Fprintf(stdout, "%2d) %-16q score=%d generations=%d state=%s\n",
			i+1, e.Word, e.Result.Score, e.Result.Generations, e.Result.State)
	}
	for _, e := range failed {
		p.Fprintf(stdout, "skipped %q: %v\n", e.Word, e.Err)
	}
	if best, ok := batch.Best(entries); ok {
		p.Fprintf(stdout, "\nBest overall: %q score=%d\n", best.Word, best.Result.Score)
	}
	return nil
}

// collectWords gathers words from args and, if set, from file.
func collectWords(file string, args []string) ([]string, error) {
	words := append([]string(nil), args...)
	if file == "" {
		return words, nil
	}
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			words = append(words, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return words, nil
}

func closeCache(cache io.Closer) {
	if err := cache.Close(); err != nil {
		log.Printf("close result cache: %v", err)
	}
}
