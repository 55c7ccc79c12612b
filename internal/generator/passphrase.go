package generator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/verte-zerg/passgen/internal/model"
)

// PassphraseSeparator joins passphrase words.
const PassphraseSeparator = "-"

// minPassphraseWords is the floor on the number of words in a passphrase.
const minPassphraseWords = 3

// PassphraseWordCount returns max(3, length/6).
func PassphraseWordCount(length int) int {
	n := length / 6
	if n < minPassphraseWords {
		return minPassphraseWords
	}
	return n
}

// Passphrase joins random words with hyphens and appends the optional
// number and symbol suffixes. Its length does not track cfg.Length.
func (g *Generator) Passphrase(cfg model.GenerationConfig) (string, error) {
	if cfg.Length < model.MinLength || cfg.Length > model.MaxLength {
		return "", fmt.Errorf("%w: got %d", model.ErrInvalidLength, cfg.Length)
	}
	if len(g.words) == 0 {
		return "", fmt.Errorf("passphrase: word list is empty")
	}

	count := PassphraseWordCount(cfg.Length)
	words := make([]string, 0, count)
	for i := 0; i < count; i++ {
		idx, err := drawIndex(g.src, len(g.words))
		if err != nil {
			return "", err
		}
		word := g.words[idx]
		if cfg.Uppercase {
			upper, err := drawBit(g.src)
			if err != nil {
				return "", err
			}
			if upper {
				word = capitalize(word)
			}
		}
		words = append(words, word)
	}

	var b strings.Builder
	b.WriteString(strings.Join(words, PassphraseSeparator))
	if cfg.Numbers {
		n, err := drawIndex(g.src, 100)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%02d", n)
	}
	if cfg.Symbols {
		idx, err := drawIndex(g.src, len(Symbols))
		if err != nil {
			return "", err
		}
		b.WriteByte(Symbols[idx])
	}
	return b.String(), nil
}

func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
