package life

import "wordlife/pkg/core"

// Step returns the next generation of g as a new grid. Cells beyond the edge
// count as permanently dead.
func Step(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.Size())
	stepInto(next, g)
	return next
}

// stepInto writes the successor of src into dst. dst must not alias src.
func stepInto(dst, src *core.Grid) {
	size := src.Size()
	rows, cols := size.Rows, size.Cols
	cur := src.Cells()
	nxt := dst.Cells()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= rows {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					if nx < 0 || nx >= cols {
						continue
					}
					neighbors += int(cur[ny*cols+nx])
				}
			}
			idx := y*cols + x
			alive := cur[idx] == core.Live
			nxt[idx] = core.Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = core.Live
			}
		}
	}
}
