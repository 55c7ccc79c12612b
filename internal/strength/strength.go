// Package strength scores secrets on a 0-100 scale.
package strength

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/passgen/internal/model"
)

// Scorer names accepted by New.
const (
	NameAuto      = "auto"
	NameHeuristic = "heuristic"
	NameZxcvbn    = "zxcvbn"
)

// WeakWarning is attached to any result scoring below WarningThreshold.
const WeakWarning = "This secret is easily guessable"

// WarningThreshold is the score below which WeakWarning is set.
const WarningThreshold = 50

// Scorer estimates how hard a secret is to guess.
type Scorer interface {
	Name() string
	ScoreSecret(secret string) model.Strength
}

// New selects a scorer by name. An empty name or "auto" selects zxcvbn.
func New(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameAuto, NameZxcvbn:
		return Zxcvbn{}, nil
	case NameHeuristic:
		return Heuristic{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected %s, %s or %s)", model.ErrUnknownScorer, name, NameAuto, NameZxcvbn, NameHeuristic)
	}
}

func warningFor(score int) string {
	if score < WarningThreshold {
		return WeakWarning
	}
	return ""
}
