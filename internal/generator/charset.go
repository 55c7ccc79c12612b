package generator

import (
	"strings"

	"github.com/verte-zerg/passgen/internal/model"
)

// Symbols is the symbol alphabet. It has no ambiguous-excluded variant.
const Symbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

type alphabetPair struct {
	full        string
	unambiguous string
}

// Indexed by model.Category. The unambiguous variants drop 0/O and 1/l/I.
var catalog = [...]alphabetPair{
	model.CategoryLowercase: {
		full:        "abcdefghijklmnopqrstuvwxyz",
		unambiguous: "abcdefghijkmnopqrstuvwxyz",
	},
	model.CategoryUppercase: {
		full:        "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		unambiguous: "ABCDEFGHJKLMNPQRSTUVWXYZ",
	},
	model.CategoryDigits: {
		full:        "0123456789",
		unambiguous: "23456789",
	},
	model.CategorySymbols: {
		full:        Symbols,
		unambiguous: Symbols,
	},
}

// CategoryAlphabet returns the alphabet for a single category.
func CategoryAlphabet(cat model.Category, excludeAmbiguous bool) string {
	if cat < 0 || int(cat) >= len(catalog) {
		return ""
	}
	pair := catalog[cat]
	if excludeAmbiguous {
		return pair.unambiguous
	}
	return pair.full
}

// BuildAlphabet concatenates the alphabets of every enabled category in
// category order. It returns "" when nothing is enabled.
func BuildAlphabet(cfg model.GenerationConfig) string {
	var b strings.Builder
	for _, cat := range model.Categories() {
		if cfg.Enabled(cat) {
			b.WriteString(CategoryAlphabet(cat, cfg.ExcludeAmbiguous))
		}
	}
	return b.String()
}

// CategoryOf reports which category a character belongs to.
func CategoryOf(r rune) (model.Category, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return model.CategoryLowercase, true
	case r >= 'A' && r <= 'Z':
		return model.CategoryUppercase, true
	case r >= '0' && r <= '9':
		return model.CategoryDigits, true
	case strings.ContainsRune(Symbols, r):
		return model.CategorySymbols, true
	default:
		return 0, false
	}
}
