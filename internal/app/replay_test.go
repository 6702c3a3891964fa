package app

import (
	"flag"
	"testing"

	"wordlife/internal/render"
	"wordlife/internal/word"
	"wordlife/pkg/core"
	"wordlife/pkg/sims/life"
)

func recordWord(t *testing.T, w string) (*render.Recorder, life.Result) {
	t.Helper()
	rec := render.NewRecorder()
	cfg := life.DefaultConfig()
	cfg.Observer = rec.Observe
	res, err := life.Simulate(w, cfg)
	if err != nil {
		t.Fatalf("simulate %q: %v", w, err)
	}
	return rec, res
}

func readoutValue(r *Replay, section, label string) string {
	for _, s := range r.Readout().Sections {
		if s.Name != section {
			continue
		}
		for _, f := range s.Fields {
			if f.Label == label {
				return f.Value
			}
		}
	}
	return ""
}

func TestReplayWalksFrames(t *testing.T) {
	rec, res := recordWord(t, "A")
	r := NewReplay("A", rec, res, 10)

	if r.Frame().Generation != 0 || r.Done() {
		t.Fatalf("expected to start on the seed, got %+v", r.Frame())
	}
	if got := readoutValue(r, "Result", "State"); got != "running" {
		t.Fatalf("got state %q before the last frame", got)
	}
	if !r.Advance() {
		t.Fatal("expected to advance past the seed")
	}
	if !r.Done() {
		t.Fatal("expected one-generation run to end after one advance")
	}
	if r.Advance() {
		t.Fatal("advanced past the last frame")
	}
	if got := readoutValue(r, "Result", "State"); got != "Extinction" {
		t.Fatalf("got state %q, expected Extinction", got)
	}
	if got := readoutValue(r, "Frame", "Score"); got != "2" {
		t.Fatalf("got frame score %q, expected 2", got)
	}
	if got := readoutValue(r, "Word", "Grid"); got != "60x40" {
		t.Fatalf("got grid %q, expected 60x40", got)
	}
	r.Restart()
	if r.Frame().Generation != 0 {
		t.Fatal("restart did not rewind")
	}
}

func TestReplayFinalFrameMatchesResult(t *testing.T) {
	rec, res := recordWord(t, "monument")
	r := NewReplay("monument", rec, res, 10)
	for r.Advance() {
	}
	f := r.Frame()
	want := res.Generations
	if res.State == life.Static {
		want++
	}
	if f.Generation != want || f.Score != res.Score {
		t.Fatalf("last frame gen %d score %d, result %+v", f.Generation, f.Score, res)
	}
}

func TestReplaySpeedControl(t *testing.T) {
	r := NewReplay("x", render.NewRecorder(), life.Result{}, 500)
	if r.TPS() != MaxTPS {
		t.Fatalf("got %d TPS, expected clamp to %d", r.TPS(), MaxTPS)
	}
	ctrl := r.Controls()[0]
	if !r.SetControl(ctrl.Key, ctrl.Adjust(-1)) {
		t.Fatal("speed control not recognised")
	}
	if r.TPS() != MaxTPS-1 {
		t.Fatalf("got %d TPS, expected %d", r.TPS(), MaxTPS-1)
	}
	if r.SetControl("zoom", 3) {
		t.Fatal("unknown control accepted")
	}
	if !r.Done() || r.Frame().Grid != nil {
		t.Fatal("empty replay should be done with no frame")
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-word", "Hi", "-case", "lower", "-set", "rows=20", "-set", "cols=12", "-set", "bogus"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Word != "Hi" || cfg.CaseMode != word.CaseLower {
		t.Fatalf("unexpected config %+v", cfg)
	}
	run := cfg.RunConfig()
	if run.Size != (core.Size{Rows: 20, Cols: 12}) {
		t.Fatalf("got size %v, expected 20x12", run.Size)
	}
	if run.MaxGenerations != life.DefaultMaxGenerations {
		t.Fatalf("got max generations %d", run.MaxGenerations)
	}
}
