// Package core holds viewer plumbing shared by the replay window and its HUD:
// playback pacing and the readout model the HUD draws.
package core

import "time"

const defaultTPS = 10

// FixedStep paces replay frames at a steady ticks-per-second rate,
// independent of the window's draw rate.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting the given TPS. The first call
// to ShouldStep always fires.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to the default.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = defaultTPS
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Reset drops accumulated time so the next tick fires immediately.
func (f *FixedStep) Reset() {
	f.accumulator = f.step
	f.last = time.Time{}
}

// ShouldStep reports whether playback should advance by one frame.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
