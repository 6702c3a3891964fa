package app

import (
	"strconv"

	"wordlife/internal/core"
	"wordlife/internal/render"
	"wordlife/pkg/sims/life"
)

// Speed bounds for the replay HUD control.
const (
	MinTPS = 1
	MaxTPS = 60
)

const speedKey = "tps"

// Replay steps through the frames recorded for one finished run.
type Replay struct {
	word   string
	frames []render.Frame
	result life.Result
	size   string
	pos    int
	tps    int
}

// NewReplay wraps the frames recorded for word and the run's result.
func NewReplay(word string, rec *render.Recorder, res life.Result, tps int) *Replay {
	r := &Replay{word: word, frames: rec.Frames(), result: res}
	if len(r.frames) > 0 {
		r.size = r.frames[0].Grid.Size().String()
	}
	r.SetTPS(tps)
	return r
}

// Word returns the seed word being replayed.
func (r *Replay) Word() string { return r.word }

// Frame returns the frame under the cursor.
func (r *Replay) Frame() render.Frame {
	if len(r.frames) == 0 {
		return render.Frame{}
	}
	return r.frames[r.pos]
}

// Advance moves to the next frame and reports whether it moved.
func (r *Replay) Advance() bool {
	if r.Done() {
		return false
	}
	r.pos++
	return true
}

// Done reports whether the cursor sits on the last frame.
func (r *Replay) Done() bool { return r.pos >= len(r.frames)-1 }

// Restart rewinds to the seed.
func (r *Replay) Restart() { r.pos = 0 }

// TPS returns the playback rate.
func (r *Replay) TPS() int { return r.tps }

// SetTPS changes the playback rate within [MinTPS, MaxTPS].
func (r *Replay) SetTPS(tps int) {
	r.tps = min(max(tps, MinTPS), MaxTPS)
}

// Readout describes the current frame and the run's outcome for the HUD.
func (r *Replay) Readout() core.Readout {
	f := r.Frame()
	outcome := "running"
	if r.Done() {
		outcome = r.result.State.String()
	}
	return core.Readout{Sections: []core.Section{
		{Name: "Word", Fields: []core.Field{
			{Label: "Seed", Value: strconv.Quote(r.word)},
			{Label: "Grid", Value: r.size},
		}},
		{Name: "Frame", Fields: []core.Field{
			{Label: "Generation", Value: strconv.Itoa(f.Generation)},
			{Label: "Live", Value: strconv.Itoa(f.Live)},
			{Label: "Score", Value: strconv.Itoa(f.Score)},
		}},
		{Name: "Result", Fields: []core.Field{
			{Label: "Generations", Value: strconv.Itoa(r.result.Generations)},
			{Label: "Score", Value: strconv.Itoa(r.result.Score)},
			{Label: "State", Value: outcome},
		}},
	}}
}

// Controls lists the HUD-adjustable settings.
func (r *Replay) Controls() []core.Control {
	return []core.Control{{Key: speedKey, Label: "Speed", Value: r.tps, Step: 1, Min: MinTPS, Max: MaxTPS}}
}

// SetControl applies a HUD adjustment and reports whether key was known.
func (r *Replay) SetControl(key string, value int) bool {
	if key != speedKey {
		return false
	}
	r.SetTPS(value)
	return true
}
