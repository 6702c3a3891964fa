//go:build !ebiten

package ui

import "wordlife/internal/core"

// Source supplies what the HUD shows and accepts its adjustments.
type Source interface {
	Readout() core.Readout
	Controls() []core.Control
	SetControl(key string, value int) bool
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Source, int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
