package core

import (
	"fmt"
	"math"
)

// Cell states stored in a Grid.
const (
	Dead uint8 = 0
	Live uint8 = 1
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.Rows * s.Cols }

// Validate reports whether the size describes a non-empty grid whose Area
// fits in an int.
func (s Size) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", s.Rows, s.Cols)
	}
	if s.Rows > math.MaxInt/s.Cols {
		return fmt.Errorf("grid size %dx%d overflows the cell count", s.Rows, s.Cols)
	}
	return nil
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }
