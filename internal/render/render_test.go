package render

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"wordlife/pkg/core"
)

func smallGrid(t *testing.T) *core.Grid {
	t.Helper()
	g := core.NewGrid(core.Size{Rows: 2, Cols: 3})
	g.Set(0, 1, core.Live)
	g.Set(1, 2, core.Live)
	return g
}

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.Black)
	expected := []byte{0, 0, 0, 255, 10, 20, 30, 255}
	if !bytes.Equal(buf, expected) {
		t.Fatalf("got %v, expected %v", buf, expected)
	}
}

func TestTextWriter(t *testing.T) {
	var out bytes.Buffer
	tw := NewTextWriter(&out)
	tw.Observe(3, smallGrid(t))
	expected := "generation 3, live 2\n.#.\n..#\n\n"
	if out.String() != expected {
		t.Fatalf("got %q, expected %q", out.String(), expected)
	}
	if tw.Err() != nil {
		t.Fatalf("unexpected error: %v", tw.Err())
	}
}

type failingWriter struct{ calls int }

func (f *failingWriter) Write([]byte) (int, error) {
	f.calls++
	return 0, errors.New("closed")
}

func TestTextWriterStopsAfterError(t *testing.T) {
	fw := &failingWriter{}
	tw := NewTextWriter(fw)
	tw.Observe(0, smallGrid(t))
	tw.Observe(1, smallGrid(t))
	if tw.Err() == nil {
		t.Fatal("expected write error")
	}
	if fw.calls != 1 {
		t.Fatalf("expected 1 write attempt, got %d", fw.calls)
	}
}

func TestRecorderClonesAndScores(t *testing.T) {
	rec := NewRecorder()
	g := smallGrid(t)
	rec.Observe(0, g)
	g.Set(0, 0, core.Live)
	rec.Observe(1, g)
	g.Clear()
	rec.Observe(2, g)

	frames := rec.Frames()
	if rec.Len() != 3 {
		t.Fatalf("expected 3 frames, got %d", rec.Len())
	}
	if frames[0].Grid.LiveCount() != 2 {
		t.Fatalf("frame 0 was mutated: live %d", frames[0].Grid.LiveCount())
	}
	scores := []int{frames[0].Score, frames[1].Score, frames[2].Score}
	if scores[0] != 2 || scores[1] != 5 || scores[2] != 5 {
		t.Fatalf("unexpected running scores %v", scores)
	}
	if frames[2].Live != 0 || frames[2].Generation != 2 {
		t.Fatalf("unexpected last frame %+v", frames[2])
	}
}
