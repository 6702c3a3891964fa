// Package word validates seed words at the service boundary and applies the
// configured case policy before they reach the simulation.
package word

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrEmpty is returned for an empty word.
	ErrEmpty = errors.New("word is required")
	// ErrNotASCII is returned when a word contains non-ASCII characters.
	ErrNotASCII = errors.New("word must contain only ASCII characters")
)

// CaseMode selects how a word's letter case is treated before seeding. The
// seed is the raw bit pattern of each character, so "Brayden" and "brayden"
// produce different runs unless the mode folds them together.
type CaseMode string

const (
	// CasePreserve seeds the word exactly as given.
	CasePreserve CaseMode = "preserve"
	// CaseLower lowercases the word before seeding.
	CaseLower CaseMode = "lower"
)

// ParseCaseMode parses a case mode name.
func ParseCaseMode(s string) (CaseMode, error) {
	switch mode := CaseMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case CasePreserve, CaseLower:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown case mode %q (want %q or %q)", s, CasePreserve, CaseLower)
	}
}

// UnmarshalText lets CaseMode be parsed from env and flag values.
func (m *CaseMode) UnmarshalText(text []byte) error {
	mode, err := ParseCaseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// String implements flag.Value.
func (m *CaseMode) String() string {
	if m == nil {
		return ""
	}
	return string(*m)
}

// Set implements flag.Value.
func (m *CaseMode) Set(s string) error { return m.UnmarshalText([]byte(s)) }

// Apply returns w transformed by the mode.
func (m CaseMode) Apply(w string) string {
	if m == CaseLower {
		return cases.Lower(language.Und).String(w)
	}
	return w
}

// IsASCII reports whether every byte of w is 7-bit ASCII.
func IsASCII(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] >= 0x80 {
			return false
		}
	}
	return true
}

// Validate checks that w is non-empty and ASCII.
func Validate(w string) error {
	if w == "" {
		return ErrEmpty
	}
	if !IsASCII(w) {
		return ErrNotASCII
	}
	return nil
}

// Prepare validates w and applies the case mode.
func Prepare(w string, mode CaseMode) (string, error) {
	if err := Validate(w); err != nil {
		return "", err
	}
	return mode.Apply(w), nil
}
