//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"wordlife/pkg/core"
)

// GridPainter uploads a grid into a single RGBA image and draws it scaled.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for grids of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	return &GridPainter{
		size: size,
		img:  ebiten.NewImage(size.Cols, size.Rows),
		buf:  make([]byte, 4*size.Area()),
	}
}

// Blit draws g onto dst. Grids of a different size are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int) {
	if g == nil || g.Size() != gp.size {
		return
	}
	fillBinaryRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
