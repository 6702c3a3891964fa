package render

import "wordlife/pkg/core"

// Frame is one recorded generation.
type Frame struct {
	Generation int
	Live       int
	// Score is the running total through this generation, seed included.
	Score int
	Grid  *core.Grid
}

// Recorder keeps a copy of every grid a run reports so it can be replayed.
type Recorder struct {
	frames []Frame
	score  int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Observe records g. It matches the run observer signature.
func (r *Recorder) Observe(generation int, g *core.Grid) {
	live := g.LiveCount()
	r.score += live
	r.frames = append(r.frames, Frame{
		Generation: generation,
		Live:       live,
		Score:      r.score,
		Grid:       g.Clone(),
	})
}

// Frames returns the recorded frames in generation order.
func (r *Recorder) Frames() []Frame { return r.frames }

// Len returns the number of recorded frames.
func (r *Recorder) Len() int { return len(r.frames) }
