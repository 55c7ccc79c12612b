package generator

import (
	"math"

	"github.com/verte-zerg/passgen/internal/model"
)

// EntropyBits returns round(length * log2(alphabet size)) for the standard
// alphabet, or 0 when no category is enabled.
func EntropyBits(cfg model.GenerationConfig) int {
	size := len(BuildAlphabet(cfg))
	if size == 0 || cfg.Length <= 0 {
		return 0
	}
	return int(math.Round(float64(cfg.Length) * math.Log2(float64(size))))
}

// PassphraseEntropyBits estimates the guess space of a passphrase drawn from
// a list of wordListSize words, including capitalization and suffixes.
func PassphraseEntropyBits(cfg model.GenerationConfig, wordListSize int) int {
	if wordListSize <= 0 {
		return 0
	}
	words := float64(PassphraseWordCount(cfg.Length))
	bits := words * math.Log2(float64(wordListSize))
	if cfg.Uppercase {
		bits += words
	}
	if cfg.Numbers {
		bits += math.Log2(100)
	}
	if cfg.Symbols {
		bits += math.Log2(float64(len(Symbols)))
	}
	return int(math.Round(bits))
}

// Entropy returns the estimate that matches cfg.Mode.
func (g *Generator) Entropy(cfg model.GenerationConfig) int {
	if cfg.Mode == model.ModePassphrase {
		return PassphraseEntropyBits(cfg, len(g.words))
	}
	return EntropyBits(cfg)
}
