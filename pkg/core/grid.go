package core

import "slices"

// Grid stores a fixed-size 2D board of Live/Dead cells in row-major order.
type Grid struct {
	size Size
	data []uint8
}

// NewGrid allocates an all-dead grid. Non-positive dimensions are clamped to
// one so the grid is always addressable; callers that must reject them should
// call Size.Validate first.
func NewGrid(size Size) *Grid {
	if size.Rows <= 0 {
		size.Rows = 1
	}
	if size.Cols <= 0 {
		size.Cols = 1
	}
	return &Grid{size: size, data: make([]uint8, size.Area())}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return g.size }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.size.Cols + col }

// In reports whether (row, col) lies on the grid.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.size.Rows && col >= 0 && col < g.size.Cols
}

// At returns the cell at (row, col). Off-grid positions read as Dead.
func (g *Grid) At(row, col int) uint8 {
	if !g.In(row, col) {
		return Dead
	}
	return g.data[g.Index(row, col)]
}

// Set writes a cell, ignoring off-grid positions.
func (g *Grid) Set(row, col int, v uint8) {
	if !g.In(row, col) {
		return
	}
	if v != Dead {
		v = Live
	}
	g.data[g.Index(row, col)] = v
}

// LiveCount returns the number of live cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, c := range g.data {
		if c != Dead {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.size == o.size && slices.Equal(g.data, o.data)
}

// CopyFrom overwrites g with the contents of src. Both grids must share a size.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.data, src.data)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, data: slices.Clone(g.data)}
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}
