// Package life runs Conway's Game of Life on a bounded grid seeded from the
// bit pattern of a word and classifies how the run ends.
package life

import (
	"errors"
	"fmt"
	"strconv"

	"wordlife/pkg/core"
)

// Default run parameters.
const (
	DefaultRows           = 60
	DefaultCols           = 40
	DefaultMaxGenerations = 1000

	// Default bounds for parameters taken from remote callers.
	DefaultLimitRows           = 500
	DefaultLimitCols           = 500
	DefaultLimitMaxGenerations = 10000

	// HistoryWindow is the number of prior grids kept for cycle detection.
	HistoryWindow = 9

	bitsPerChar = 8
)

var (
	// ErrInvalidSize is returned for grids with a non-positive dimension.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrInvalidMaxGenerations is returned when the generation cap is not positive.
	ErrInvalidMaxGenerations = errors.New("max generations must be positive")
	// ErrGridTooSmall is returned when the seed pattern does not fit the grid.
	ErrGridTooSmall = errors.New("grid too small for word")
	// ErrUnencodable is returned for characters outside the single-byte range.
	ErrUnencodable = errors.New("character does not fit in 8 bits")
	// ErrLimitExceeded is returned when a Config is larger than a Limits allows.
	ErrLimitExceeded = errors.New("run parameters exceed limits")
)

// Observer is notified of the seed (generation 0) and of every grid the run
// produces, before that grid is classified. The grid is reused by the run
// after the call returns; Clone it to keep it.
type Observer func(generation int, g *core.Grid)

// Config holds parameters for a single run.
type Config struct {
	Size           core.Size
	MaxGenerations int
	Observer       Observer
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Size:           core.Size{Rows: DefaultRows, Cols: DefaultCols},
		MaxGenerations: DefaultMaxGenerations,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable or non-positive values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size.Cols = parsed
		}
	}
	if v, ok := cfg["max_generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxGenerations = parsed
		}
	}
	return c
}

func (c Config) validate() error {
	if err := c.Size.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	if c.MaxGenerations <= 0 {
		return ErrInvalidMaxGenerations
	}
	return nil
}

// Limits caps the grid and generation count a caller may request. A zero
// field leaves that parameter unbounded.
type Limits struct {
	MaxRows        int
	MaxCols        int
	MaxGenerations int
}

// DefaultLimits returns the bounds applied to requests by default.
func DefaultLimits() Limits {
	return Limits{
		MaxRows:        DefaultLimitRows,
		MaxCols:        DefaultLimitCols,
		MaxGenerations: DefaultLimitMaxGenerations,
	}
}

// Check returns an error wrapping ErrLimitExceeded naming the first
// parameter of c that is above its bound.
func (l Limits) Check(c Config) error {
	bounds := []struct {
		name  string
		value int
		max   int
	}{
		{"rows", c.Size.Rows, l.MaxRows},
		{"cols", c.Size.Cols, l.MaxCols},
		{"max_generations", c.MaxGenerations, l.MaxGenerations},
	}
	for _, b := range bounds {
		if b.max > 0 && b.value > b.max {
			return fmt.Errorf("%w: %s must be at most %d", ErrLimitExceeded, b.name, b.max)
		}
	}
	return nil
}
