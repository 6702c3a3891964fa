package life

import (
	"fmt"

	"wordlife/pkg/core"
)

// Bits renders a character code as 8 binary digits, most significant first.
func Bits(r rune) ([bitsPerChar]uint8, error) {
	var out [bitsPerChar]uint8
	if r < 0 || r > 0xFF {
		return out, fmt.Errorf("%w: %q (U+%04X)", ErrUnencodable, r, r)
	}
	for i := 0; i < bitsPerChar; i++ {
		out[i] = uint8(r>>(bitsPerChar-1-i)) & 1
	}
	return out, nil
}

// Pattern returns the per-character bit vectors of word, in word order.
func Pattern(word string) ([][bitsPerChar]uint8, error) {
	var rows [][bitsPerChar]uint8
	for _, r := range word {
		bits, err := Bits(r)
		if err != nil {
			return nil, err
		}
		rows = append(rows, bits)
	}
	return rows, nil
}

// Seed builds an all-dead grid of the given size and writes the word's bit
// pattern into a block centered on it, one row per character.
func Seed(word string, size core.Size) (*core.Grid, error) {
	if err := size.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	pattern, err := Pattern(word)
	if err != nil {
		return nil, err
	}
	grid := core.NewGrid(size)
	if len(pattern) == 0 {
		return grid, nil
	}

	startRow, ok := blockStart(size.Rows, len(pattern))
	if !ok {
		return nil, fmt.Errorf("%w: %d characters need %d rows, grid has %d", ErrGridTooSmall, len(pattern), len(pattern), size.Rows)
	}
	startCol, ok := blockStart(size.Cols, bitsPerChar)
	if !ok {
		return nil, fmt.Errorf("%w: need %d columns, grid has %d", ErrGridTooSmall, bitsPerChar, size.Cols)
	}

	cells := grid.Cells()
	for i, bits := range pattern {
		base := grid.Index(startRow+i, startCol)
		copy(cells[base:base+bitsPerChar], bits[:])
	}
	return grid, nil
}

// blockStart centers a block of length n within dim, clamping it to the
// edges. It reports false when the block cannot fit at all.
func blockStart(dim, n int) (int, bool) {
	if n > dim {
		return 0, false
	}
	start := dim/2 - n/2
	if start < 0 {
		start = 0
	}
	if start+n > dim {
		start = dim - n
	}
	return start, true
}
