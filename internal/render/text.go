package render

import (
	"fmt"
	"io"

	"wordlife/pkg/core"
)

// TextWriter prints each observed grid as rows of characters.
type TextWriter struct {
	w    io.Writer
	live byte
	dead byte
	buf  []byte
	err  error
}

// NewTextWriter writes frames to w using '#' for live and '.' for dead cells.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w, live: '#', dead: '.'}
}

// Observe writes one frame. It matches the run observer signature. After the
// first write error further frames are dropped; see Err.
func (t *TextWriter) Observe(generation int, g *core.Grid) {
	if t.err != nil {
		return
	}
	size := g.Size()
	t.buf = t.buf[:0]
	t.buf = fmt.Appendf(t.buf, "generation %d, live %d\n", generation, g.LiveCount())
	cells := g.Cells()
	for r := 0; r < size.Rows; r++ {
		for _, c := range cells[r*size.Cols : (r+1)*size.Cols] {
			if c != 0 {
				t.buf = append(t.buf, t.live)
			} else {
				t.buf = append(t.buf, t.dead)
			}
		}
		t.buf = append(t.buf, '\n')
	}
	t.buf = append(t.buf, '\n')
	_, t.err = t.w.Write(t.buf)
}

// Err returns the first write error, if any.
func (t *TextWriter) Err() error { return t.err }
