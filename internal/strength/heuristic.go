package strength

import (
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/passgen/internal/model"
)

// Suggestions emitted by the heuristic scorer, in emission order.
const (
	SuggestLength    = "Use at least 8 characters"
	SuggestLowercase = "Add lowercase letters"
	SuggestUppercase = "Add uppercase letters"
	SuggestDigits    = "Add digits"
	SuggestSymbols   = "Add symbols"
)

var weakSequences = []string{"123", "abc", "qwe"}

// Heuristic is the built-in scorer. It needs no external data.
type Heuristic struct{}

// Name implements Scorer.
func (Heuristic) Name() string { return NameHeuristic }

// ScoreSecret implements Scorer.
func (Heuristic) ScoreSecret(secret string) model.Strength {
	c := classify(secret)
	length := utf8.RuneCountInString(secret)

	score := 0
	if length >= 8 {
		score += 25
	}
	if length >= 12 {
		score += 25
	}
	if length >= 16 {
		score += 25
	}
	if c.lower {
		score += 5
	}
	if c.upper {
		score += 5
	}
	if c.digit {
		score += 5
	}
	if c.other {
		score += 10
	}
	if hasRun(secret, 3) {
		score -= 10
	}
	if hasWeakSequence(secret) {
		score -= 15
	}
	score = clamp(score, 0, 100)

	var suggestions []string
	if length < 8 {
		suggestions = append(suggestions, SuggestLength)
	}
	if !c.lower {
		suggestions = append(suggestions, SuggestLowercase)
	}
	if !c.upper {
		suggestions = append(suggestions, SuggestUppercase)
	}
	if !c.digit {
		suggestions = append(suggestions, SuggestDigits)
	}
	if !c.other {
		suggestions = append(suggestions, SuggestSymbols)
	}

	return model.Strength{
		Score:       score,
		Label:       model.LabelForScore(score),
		Suggestions: suggestions,
		Warning:     warningFor(score),
	}
}

type classes struct {
	lower bool
	upper bool
	digit bool
	other bool
}

func classify(secret string) classes {
	var c classes
	for _, r := range secret {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.other = true
		}
	}
	return c
}

// hasRun reports whether any rune repeats at least n times in a row.
func hasRun(secret string, n int) bool {
	var prev rune
	run := 0
	for i, r := range secret {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

func hasWeakSequence(secret string) bool {
	lower := strings.ToLower(secret)
	for _, seq := range weakSequences {
		if strings.Contains(lower, seq) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
