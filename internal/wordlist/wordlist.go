// Package wordlist provides passphrase word lists.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// builtin is the default passphrase list. It is never handed out directly.
var builtin = []string{
	"chat", "chien", "soleil", "lune", "eau", "feu", "terre", "air",
	"rouge", "bleu", "vert", "jaune", "noir", "blanc", "grand", "petit",
	"bon", "mauvais", "rapide", "lent", "chaud", "froid", "haut", "bas",
	"jour", "nuit", "matin", "soir", "hier", "demain", "temps", "espace",
	"maison", "voiture", "livre", "fleur", "arbre", "oiseau", "poisson", "mer",
	"montagne", "riviere", "ville", "campagne", "route", "pont", "porte", "fenetre",
}

// Default returns a copy of the built-in word list.
func Default() []string {
	return append([]string(nil), builtin...)
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadPassphraseWords loads a file and keeps only words usable in a
// passphrase, dropping duplicates.
func LoadPassphraseWords(path string) ([]string, error) {
	words, err := LoadWords(path)
	if err != nil {
		return nil, err
	}
	kept := Apply(words, FilterPassphrase)
	if len(kept) == 0 {
		return nil, fmt.Errorf("word list %s has no usable words", path)
	}
	return kept, nil
}
