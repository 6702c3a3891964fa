package core

// Field is a labelled value shown on the HUD.
type Field struct {
	Label string
	Value string
}

// Section groups related fields under a heading.
type Section struct {
	Name   string
	Fields []Field
}

// Readout is everything the HUD prints for the current frame.
type Readout struct {
	Sections []Section
}

// Control is an integer setting the HUD exposes with -/+ buttons.
type Control struct {
	Key   string
	Label string
	Value int
	Step  int
	Min   int
	Max   int
}

// Adjust returns the value one step in direction (-1 or +1), clamped to the
// control's bounds.
func (c Control) Adjust(direction int) int {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	v := c.Value + direction*step
	if v < c.Min {
		v = c.Min
	}
	if c.Max > c.Min && v > c.Max {
		v = c.Max
	}
	return v
}

// CanAdjust reports whether a step in direction would change the value.
func (c Control) CanAdjust(direction int) bool {
	return c.Adjust(direction) != c.Value
}
