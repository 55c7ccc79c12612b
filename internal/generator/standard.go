package generator

import (
	"strings"

	"github.com/verte-zerg/passgen/internal/model"
)

// Standard draws a secret of exactly cfg.Length characters from the
// configured alphabet and makes sure every enabled category shows up.
func (g *Generator) Standard(cfg model.GenerationConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	alphabet := BuildAlphabet(cfg)
	if alphabet == "" {
		return "", model.ErrEmptyAlphabet
	}

	out := make([]byte, cfg.Length)
	for i := range out {
		idx, err := drawIndex(g.src, len(alphabet))
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx]
	}

	if err := g.enforceCoverage(out, cfg); err != nil {
		return "", err
	}
	return string(out), nil
}

// enforceCoverage overwrites one random position per missing category.
// Categories are handled in order and a later fix may overwrite an earlier
// one; the result is not re-checked.
func (g *Generator) enforceCoverage(out []byte, cfg model.GenerationConfig) error {
	for _, cat := range model.Categories() {
		if !cfg.Enabled(cat) {
			continue
		}
		set := CategoryAlphabet(cat, cfg.ExcludeAmbiguous)
		if containsAny(out, set) {
			continue
		}
		pos, err := drawIndex(g.src, len(out))
		if err != nil {
			return err
		}
		idx, err := drawIndex(g.src, len(set))
		if err != nil {
			return err
		}
		g.logger.Debug("coverage fix applied", "category", cat.String(), "position", pos)
		out[pos] = set[idx]
	}
	return nil
}

func containsAny(out []byte, set string) bool {
	for _, c := range out {
		if strings.IndexByte(set, c) >= 0 {
			return true
		}
	}
	return false
}
