package strength

import (
	"github.com/nbutton23/zxcvbn-go"

	"github.com/verte-zerg/passgen/internal/model"
)

// Zxcvbn delegates to the zxcvbn pattern-matching estimator.
type Zxcvbn struct {
	// UserInputs are extra dictionary words penalised when found in a secret.
	UserInputs []string
}

// Name implements Scorer.
func (Zxcvbn) Name() string { return NameZxcvbn }

// ScoreSecret implements Scorer. The 0-4 zxcvbn score is scaled by 25.
// Suggestions are always empty: the estimator reports no feedback.
func (z Zxcvbn) ScoreSecret(secret string) model.Strength {
	match := zxcvbn.PasswordStrength(secret, z.UserInputs)
	band := match.Score
	if band < 0 {
		band = 0
	}
	if band > 4 {
		band = 4
	}
	score := band * 25
	return model.Strength{
		Score:     score,
		Label:     model.LabelForBand(band),
		Warning:   warningFor(score),
		CrackTime: match.CrackTimeDisplay,
	}
}
