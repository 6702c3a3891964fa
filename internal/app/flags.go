package app

import (
	"flag"
	"strings"

	"wordlife/internal/word"
	"wordlife/pkg/sims/life"
)

// Config represents the command-line parameters for the ca tool.
type Config struct {
	Word     string
	CaseMode word.CaseMode
	Watch    bool
	GUI      bool
	JSON     bool
	Scale    int
	TPS      int
	Settings KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{CaseMode: word.CasePreserve, Scale: 8, TPS: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Word, "word", c.Word, "seed word (defaults to the remaining arguments)")
	fs.Var(&c.CaseMode, "case", "case handling: preserve or lower")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "print every generation as text")
	fs.BoolVar(&c.GUI, "gui", c.GUI, "open a replay window after the run (requires -tags ebiten)")
	fs.BoolVar(&c.JSON, "json", c.JSON, "print the result as JSON")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "replay frames per second")
	fs.Var(&c.Settings, "set", "run setting in key=value form: rows, cols, max_generations (repeatable)")
}

// RunConfig returns the run settings selected by -set.
func (c *Config) RunConfig() life.Config {
	return life.FromMap(c.Settings.Map())
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map. Entries without '=' are skipped and later
// keys win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return m
}
