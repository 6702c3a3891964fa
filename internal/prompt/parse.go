package prompt

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies what a prompt asks for.
type Kind int

const (
	// KindUnknown is a prompt the tool does not understand.
	KindUnknown Kind = iota
	// KindWord asks about a single quoted word.
	KindWord
	// KindHighestRandom asks for the best score among N random words.
	KindHighestRandom
)

// Request is a parsed prompt.
type Request struct {
	Kind  Kind
	Word  string
	Count int
}

var (
	randomWordsPattern = regexp.MustCompile(`(?i)\bgenerate\s+(\d+)\s+random\s+words?\b`)
	highestPattern     = regexp.MustCompile(`(?i)\b(highest|best|top)\b`)

	// Tried in order; straight single quotes must sit on word boundaries so
	// apostrophes such as "Conway's" are not mistaken for quotes.
	quotedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`‘([^‘’]+)’`),
		regexp.MustCompile(`“([^“”]+)”`),
		regexp.MustCompile(`"([^"]+)"`),
		regexp.MustCompile(`(?:^|[\s(\[])'([^']+)'(?:$|[\s.,;:?!)\]])`),
	}
)

// Parse classifies a free-text prompt. It never fails: prompts it cannot
// interpret come back as KindUnknown.
func Parse(text string) Request {
	if m := randomWordsPattern.FindStringSubmatch(text); m != nil && highestPattern.MatchString(text) {
		count, err := strconv.Atoi(m[1])
		if err != nil {
			// Digit runs too long for an int.
			count = -1
		}
		return Request{Kind: KindHighestRandom, Count: count}
	}
	if w, ok := ExtractQuoted(text); ok {
		return Request{Kind: KindWord, Word: w}
	}
	return Request{Kind: KindUnknown}
}

// ExtractQuoted returns the first quoted word in text.
func ExtractQuoted(text string) (string, bool) {
	for _, pattern := range quotedPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if w := strings.TrimSpace(m[1]); w != "" {
			return w, true
		}
	}
	return "", false
}
