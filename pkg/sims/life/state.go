package life

import "fmt"

// State is the terminal classification of a run.
type State int

const (
	// Running is the state of a run that has not terminated yet.
	Running State = iota
	// Static means the last step produced no change.
	Static
	// Oscillator means the grid repeated one held in the history window.
	Oscillator
	// MaxLimit means the generation budget ran out first.
	MaxLimit
	// Extinction means every cell died.
	Extinction
)

var stateNames = [...]string{
	Running:    "Running",
	Static:     "Static",
	Oscillator: "Oscillator",
	MaxLimit:   "MaxLimit",
	Extinction: "Extinction",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether the state ends a run.
func (s State) Terminal() bool { return s != Running && s.valid() }

func (s State) valid() bool { return s >= 0 && int(s) < len(stateNames) }

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("unknown state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", text)
}

// Result summarizes a finished run.
type Result struct {
	Generations int   `json:"generations"`
	Score       int   `json:"score"`
	State       State `json:"state"`
}
