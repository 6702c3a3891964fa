//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wordlife/internal/core"
	"wordlife/internal/render"
	"wordlife/internal/ui"
	gridcore "wordlife/pkg/core"
)

const hudWidth = 220

// Game adapts a Replay to the ebiten.Game interface.
type Game struct {
	replay  *Replay
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	size    gridcore.Size

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided replay.
func New(replay *Replay, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	var size gridcore.Size
	if g := replay.Frame().Grid; g != nil {
		size = g.Size()
	}
	return &Game{
		replay:   replay,
		painter:  render.NewGridPainter(size),
		hud:      ui.NewHUD(replay, hudWidth),
		pacer:    core.NewFixedStep(replay.TPS()),
		size:     size,
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Restart rewinds the replay to the seed.
func (g *Game) Restart() {
	g.replay.Restart()
	g.pacer.Reset()
	g.tickOnce = false
}

// Update handles per-frame input and advances playback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Restart()
	}

	g.hud.Update(g.size.Cols * g.scale)
	if g.pacer.TPS() != g.replay.TPS() {
		g.pacer.SetTPS(g.replay.TPS())
	}

	if g.tickOnce || (!g.paused && g.pacer.ShouldStep()) {
		g.replay.Advance()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.replay.Frame().Grid, g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.size.Cols*g.scale, g.size.Rows*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.Cols*g.scale + g.hud.Width(), g.size.Rows * g.scale
}
