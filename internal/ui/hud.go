//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"wordlife/internal/core"
)

// Source supplies what the HUD shows and accepts its adjustments.
type Source interface {
	Readout() core.Readout
	Controls() []core.Control
	SetControl(key string, value int) bool
}

// HUD renders the run readout and playback controls to the right of the grid.
type HUD struct {
	src          Source
	width        int
	panel        *ebiten.Image
	pixel        *ebiten.Image
	panelOffsetX int

	readout  core.Readout
	controls []controlState
}

type controlState struct {
	control   core.Control
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the readout and handles clicks on the control buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.src == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.readout = h.src.Readout()
	h.layoutControls(h.src.Controls())
	h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	h.drawReadout()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) controlsTop() int {
	lines := 0
	for _, s := range h.readout.Sections {
		lines += 1 + len(s.Fields)
	}
	return panelPadding + lines*lineHeight + sectionGap*len(h.readout.Sections)
}

func (h *HUD) layoutControls(controls []core.Control) {
	top := h.controlsTop()
	h.controls = h.controls[:0]
	for i, ctrl := range controls {
		rowTop := top + i*controlHeight
		buttonY := rowTop + (controlHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls = append(h.controls, controlState{control: ctrl, top: rowTop, minusRect: minus, plusRect: plus})
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for _, state := range h.controls {
		switch {
		case image.Pt(px, my).In(state.minusRect) && state.control.CanAdjust(-1):
			h.src.SetControl(state.control.Key, state.control.Adjust(-1))
			return
		case image.Pt(px, my).In(state.plusRect) && state.control.CanAdjust(1):
			h.src.SetControl(state.control.Key, state.control.Adjust(1))
			return
		}
	}
}

func (h *HUD) drawReadout() {
	face := basicfont.Face7x13
	y := panelPadding
	for _, section := range h.readout.Sections {
		y += lineHeight
		text.Draw(h.panel, section.Name, face, panelPadding, y, headerColor)
		for _, f := range section.Fields {
			y += lineHeight
			text.Draw(h.panel, f.Label, face, panelPadding+indent, y, labelColor)
			bounds := text.BoundString(face, f.Value)
			text.Draw(h.panel, f.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
		}
		y += sectionGap
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for _, state := range h.controls {
		labelY := state.top + controlHeight/2 + 4
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		value := strconv.Itoa(state.control.Value)
		bounds := text.BoundString(face, value)
		text.Draw(h.panel, value, face, state.minusRect.Min.X-buttonGap-bounds.Dx(), labelY, valueColor)
		h.drawButton(state.minusRect, "-", state.control.CanAdjust(-1))
		h.drawButton(state.plusRect, "+", state.control.CanAdjust(1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := buttonColor, valueColor
	if !enabled {
		bg, fg = buttonDisabledColor, dimColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

var (
	panelColor          = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor         = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor          = color.RGBA{R: 170, G: 170, B: 180, A: 255}
	valueColor          = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	dimColor            = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	buttonColor         = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonDisabledColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

const (
	panelPadding  = 12
	indent        = 8
	lineHeight    = 16
	sectionGap    = 8
	controlHeight = 36
	buttonSize    = 24
	buttonGap     = 6
)
