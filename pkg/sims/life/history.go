package life

import "wordlife/pkg/core"

// history is a fixed-capacity FIFO of past grids. Slots are allocated once
// and overwritten in place, so memory stays bounded by its capacity.
type history struct {
	slots []*core.Grid
	next  int
	n     int
}

func newHistory(capacity int, size core.Size) *history {
	slots := make([]*core.Grid, capacity)
	for i := range slots {
		slots[i] = core.NewGrid(size)
	}
	return &history{slots: slots}
}

// Len returns the number of grids held.
func (h *history) Len() int { return h.n }

// Push copies g into the window, evicting the oldest entry when full.
func (h *history) Push(g *core.Grid) {
	if len(h.slots) == 0 {
		return
	}
	h.slots[h.next].CopyFrom(g)
	h.next = (h.next + 1) % len(h.slots)
	if h.n < len(h.slots) {
		h.n++
	}
}

// Contains reports whether any held grid equals g.
func (h *history) Contains(g *core.Grid) bool {
	for i := 0; i < h.n; i++ {
		if h.at(i).Equal(g) {
			return true
		}
	}
	return false
}

// at returns the i-th held grid, oldest first.
func (h *history) at(i int) *core.Grid {
	start := (h.next - h.n + len(h.slots)) % len(h.slots)
	return h.slots[(start+i)%len(h.slots)]
}
