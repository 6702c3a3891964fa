// Command ca runs a single word-seeded Game of Life and reports how it ends.
// With -watch it prints every generation; with -gui (ebiten builds) it opens a
// replay window once the run is done.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"wordlife/internal/app"
	"wordlife/internal/render"
	"wordlife/internal/word"
	"wordlife/pkg/core"
	"wordlife/pkg/sims/life"
)

type output struct {
	Word        string     `json:"word"`
	Generations int        `json:"generations"`
	Score       int        `json:"score"`
	State       life.State `json:"state"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ca: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.Word == "" {
		cfg.Word = strings.Join(fs.Args(), " ")
	}

	prepared, err := word.Prepare(cfg.Word, cfg.CaseMode)
	if err != nil {
		return err
	}

	runCfg := cfg.RunConfig()
	var text *render.TextWriter
	var rec *render.Recorder
	if cfg.Watch {
		text = render.NewTextWriter(stdout)
	}
	if cfg.GUI {
		rec = render.NewRecorder()
	}
	if text != nil || rec != nil {
		runCfg.Observer = func(generation int, g *core.Grid) {
			if text != nil {
				text.Observe(generation, g)
			}
			if rec != nil {
				rec.Observe(generation, g)
			}
		}
	}

	res, err := life.Simulate(prepared, runCfg)
	if err != nil {
		return err
	}
	if text != nil && text.Err() != nil {
		return fmt.Errorf("write frames: %w", text.Err())
	}

	if cfg.JSON {
		enc := json.NewEncoder(stdout)
		if err := enc.Encode(output{Word: prepared, Generations: res.Generations, Score: res.Score, State: res.State}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(stdout, "%q: %d generations, score %d, %s\n", prepared, res.Generations, res.Score, res.State)
	}

	if cfg.GUI {
		return showReplay(app.NewReplay(prepared, rec, res, cfg.TPS), cfg.Scale)
	}
	return nil
}
