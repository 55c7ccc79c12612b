package generator

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/strength"
)

// seqSource replays fixed values, wrapping around at the end.
type seqSource struct {
	values []uint32
	pos    int
}

func (s *seqSource) Uint32() (uint32, error) {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v, nil
}

type failingSource struct{}

func (failingSource) Uint32() (uint32, error) {
	return 0, errors.New("entropy pool closed")
}

func TestBuildAlphabet(t *testing.T) {
	if got := BuildAlphabet(model.GenerationConfig{Length: 8}); got != "" {
		t.Fatalf("expected empty alphabet, got %q", got)
	}
	cfg := model.GenerationConfig{Lowercase: true, Numbers: true, Symbols: true, ExcludeAmbiguous: true}
	want := "abcdefghijkmnopqrstuvwxyz" + "23456789" + Symbols
	if got := BuildAlphabet(cfg); got != want {
		t.Fatalf("unexpected alphabet %q", got)
	}
	full := BuildAlphabet(model.GenerationConfig{Lowercase: true, Uppercase: true, Numbers: true, Symbols: true})
	if len(full) != 26+26+10+len(Symbols) {
		t.Fatalf("unexpected full alphabet size %d", len(full))
	}
}

func TestUnambiguousAlphabetsDropConfusables(t *testing.T) {
	for _, cat := range model.Categories()[:3] {
		set := CategoryAlphabet(cat, true)
		if strings.ContainsAny(set, "0O1lI") {
			t.Fatalf("%s: ambiguous glyph in %q", cat, set)
		}
	}
	if CategoryAlphabet(model.CategorySymbols, true) != CategoryAlphabet(model.CategorySymbols, false) {
		t.Fatalf("symbols have a single variant")
	}
}

func TestStandardLengthAndAlphabet(t *testing.T) {
	gen := New()
	configs := []model.GenerationConfig{
		{Length: 1, Lowercase: true},
		{Length: 7, Numbers: true, ExcludeAmbiguous: true},
		{Length: 32, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true},
		{Length: 128, Uppercase: true, Symbols: true, ExcludeAmbiguous: true},
	}
	for _, cfg := range configs {
		alphabet := BuildAlphabet(cfg)
		for i := 0; i < 50; i++ {
			secret, err := gen.Standard(cfg)
			if err != nil {
				t.Fatalf("standard: %v", err)
			}
			if len(secret) != cfg.Length {
				t.Fatalf("expected length %d, got %d", cfg.Length, len(secret))
			}
			for _, r := range secret {
				if !strings.ContainsRune(alphabet, r) {
					t.Fatalf("character %q outside alphabet %q", r, alphabet)
				}
			}
		}
	}
}

func TestStandardCoversEveryCategory(t *testing.T) {
	gen := New()
	cfg := model.GenerationConfig{Length: 12, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true}
	for i := 0; i < 200; i++ {
		secret, err := gen.Standard(cfg)
		if err != nil {
			t.Fatalf("standard: %v", err)
		}
		for _, cat := range model.Categories() {
			if !strings.ContainsAny(secret, CategoryAlphabet(cat, false)) {
				t.Fatalf("%q is missing %s", secret, cat)
			}
		}
	}
}

func TestCoverageFixOverwritesRandomPosition(t *testing.T) {
	src := &seqSource{values: []uint32{0, 0, 0, 0, 2, 5}}
	gen := New(WithSource(src))
	cfg := model.GenerationConfig{Length: 4, Lowercase: true, Numbers: true}
	secret, err := gen.Standard(cfg)
	if err != nil {
		t.Fatalf("standard: %v", err)
	}
	if secret != "aa5a" {
		t.Fatalf("expected aa5a, got %q", secret)
	}
}

func TestCoverageFixCanOverwriteEarlierFix(t *testing.T) {
	// One slot, three categories: each fix lands on position 0 and the last
	// one wins.
	src := &seqSource{values: []uint32{0, 0, 1, 0, 7}}
	gen := New(WithSource(src))
	cfg := model.GenerationConfig{Length: 1, Lowercase: true, Uppercase: true, Numbers: true}
	secret, err := gen.Standard(cfg)
	if err != nil {
		t.Fatalf("standard: %v", err)
	}
	if secret != "7" {
		t.Fatalf("expected the digit fix to win, got %q", secret)
	}
}

func TestStandardErrors(t *testing.T) {
	gen := New()
	if _, err := gen.Standard(model.GenerationConfig{Length: 10}); !errors.Is(err, model.ErrEmptyAlphabet) {
		t.Fatalf("expected ErrEmptyAlphabet, got %v", err)
	}
	for _, length := range []int{0, 129} {
		_, err := gen.Standard(model.GenerationConfig{Length: length, Lowercase: true})
		if !errors.Is(err, model.ErrInvalidLength) {
			t.Fatalf("length %d: expected ErrInvalidLength, got %v", length, err)
		}
	}
}

func TestEmptyAlphabetDrawsNothing(t *testing.T) {
	gen := New(WithSource(failingSource{}))
	if _, err := gen.Standard(model.GenerationConfig{Length: 10}); !errors.Is(err, model.ErrEmptyAlphabet) {
		t.Fatalf("expected ErrEmptyAlphabet before any draw, got %v", err)
	}
}

func TestStandardPropagatesSourceError(t *testing.T) {
	gen := New(WithSource(failingSource{}))
	if _, err := gen.Standard(model.GenerationConfig{Length: 4, Lowercase: true}); err == nil {
		t.Fatalf("expected source error")
	}
}

func TestPassphraseWordCount(t *testing.T) {
	cases := map[int]int{1: 3, 17: 3, 18: 3, 24: 4, 30: 5, 128: 21}
	for length, want := range cases {
		if got := PassphraseWordCount(length); got != want {
			t.Fatalf("length %d: expected %d words, got %d", length, want, got)
		}
	}
}

func TestPassphraseShape(t *testing.T) {
	gen := New()
	cfg := model.GenerationConfig{Length: 24, Mode: model.ModePassphrase}
	phrase, err := gen.Passphrase(cfg)
	if err != nil {
		t.Fatalf("passphrase: %v", err)
	}
	words := strings.Split(phrase, PassphraseSeparator)
	if len(words) != 4 {
		t.Fatalf("expected 4 words, got %d (%q)", len(words), phrase)
	}
	for _, w := range words {
		if w == "" || strings.ToLower(w) != w {
			t.Fatalf("unexpected word %q", w)
		}
	}
}

func TestPassphraseSuffixesAndCaps(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie"}
	// word idx, caps bit per word; then number draw, then symbol draw.
	src := &seqSource{values: []uint32{0, 1, 1, 0, 2, 1, 7, 0}}
	gen := New(WithSource(src), WithWords(words))
	cfg := model.GenerationConfig{Length: 12, Uppercase: true, Numbers: true, Symbols: true, Mode: model.ModePassphrase}
	phrase, err := gen.Passphrase(cfg)
	if err != nil {
		t.Fatalf("passphrase: %v", err)
	}
	if phrase != "Alpha-bravo-Charlie07!" {
		t.Fatalf("unexpected passphrase %q", phrase)
	}
}

func TestPassphraseRejectsInvalidLength(t *testing.T) {
	gen := New()
	_, err := gen.Passphrase(model.GenerationConfig{Length: 0, Mode: model.ModePassphrase})
	if !errors.Is(err, model.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestEntropyBits(t *testing.T) {
	if got := EntropyBits(model.GenerationConfig{Length: 12}); got != 0 {
		t.Fatalf("expected 0 bits for empty alphabet, got %d", got)
	}
	cfg := model.GenerationConfig{Length: 16, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true}
	size := len(BuildAlphabet(cfg))
	if size != 26+26+10+len(Symbols) {
		t.Fatalf("unexpected alphabet size %d", size)
	}
	// 16 * log2(88) = 103.35
	if got := EntropyBits(cfg); got != 103 {
		t.Fatalf("expected 103 bits, got %d", got)
	}
	if want := int(math.Round(16 * math.Log2(float64(size)))); EntropyBits(cfg) != want {
		t.Fatalf("expected %d bits from alphabet size %d", want, size)
	}
	// 6 * log2(10) = 19.93
	if got := EntropyBits(model.GenerationConfig{Length: 6, Numbers: true}); got != 20 {
		t.Fatalf("expected 20 bits, got %d", got)
	}
}

func TestEntropyMonotonic(t *testing.T) {
	base := model.GenerationConfig{Lowercase: true, Numbers: true}
	prev := 0
	for length := 1; length <= 128; length++ {
		base.Length = length
		bits := EntropyBits(base)
		if bits < prev {
			t.Fatalf("entropy decreased at length %d: %d < %d", length, bits, prev)
		}
		prev = bits
	}

	cfg := model.GenerationConfig{Length: 20}
	prev = 0
	for _, enable := range []func(*model.GenerationConfig){
		func(c *model.GenerationConfig) { c.Lowercase = true },
		func(c *model.GenerationConfig) { c.Uppercase = true },
		func(c *model.GenerationConfig) { c.Numbers = true },
		func(c *model.GenerationConfig) { c.Symbols = true },
	} {
		enable(&cfg)
		bits := EntropyBits(cfg)
		if bits < prev {
			t.Fatalf("entropy decreased when enabling a category: %d < %d", bits, prev)
		}
		prev = bits
	}
}

func TestPassphraseEntropyBits(t *testing.T) {
	cfg := model.GenerationConfig{Length: 24, Mode: model.ModePassphrase}
	// 4 words over 16 entries = 16 bits.
	if got := PassphraseEntropyBits(cfg, 16); got != 16 {
		t.Fatalf("expected 16 bits, got %d", got)
	}
	cfg.Uppercase = true
	if got := PassphraseEntropyBits(cfg, 16); got != 20 {
		t.Fatalf("expected 20 bits with capitalization, got %d", got)
	}
	if got := PassphraseEntropyBits(cfg, 0); got != 0 {
		t.Fatalf("expected 0 bits for empty list, got %d", got)
	}
}

func TestGenerateResult(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	gen := New(WithClock(func() time.Time { return now }), WithScorer(strength.Heuristic{}))
	cfg := model.GenerationConfig{Length: 16, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true}
	res, err := gen.Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(res.Secret) != 16 {
		t.Fatalf("unexpected secret length %d", len(res.Secret))
	}
	if want := EntropyBits(cfg); res.EntropyBits != want || want != 103 {
		t.Fatalf("expected 103 bits, got %d", res.EntropyBits)
	}
	if res.Config != cfg {
		t.Fatalf("config not recorded")
	}
	if !res.GeneratedAt.Equal(now) {
		t.Fatalf("unexpected timestamp %v", res.GeneratedAt)
	}
	if res.Strength.Score < 75 {
		t.Fatalf("expected a high heuristic score, got %d", res.Strength.Score)
	}
}

func TestGeneratePassphraseEntropy(t *testing.T) {
	gen := New(WithWords([]string{"a", "b", "c", "d"}))
	res, err := gen.Generate(model.GenerationConfig{Length: 18, Mode: model.ModePassphrase})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.EntropyBits != 6 {
		t.Fatalf("expected 6 bits for 3 words of 4, got %d", res.EntropyBits)
	}
}

func TestGenerateBatch(t *testing.T) {
	gen := New()
	cfg := model.GenerationConfig{Length: 10, Lowercase: true, Numbers: true}
	results, err := gen.GenerateBatch(context.Background(), cfg, 25)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(results) != 25 {
		t.Fatalf("expected 25 results, got %d", len(results))
	}
	for i, res := range results {
		if len(res.Secret) != 10 {
			t.Fatalf("result %d: unexpected length %d", i, len(res.Secret))
		}
	}
	if _, err := gen.GenerateBatch(context.Background(), cfg, 0); err == nil {
		t.Fatalf("expected error for empty batch")
	}
	if _, err := gen.GenerateBatch(context.Background(), model.GenerationConfig{Length: 10}, 3); !errors.Is(err, model.ErrEmptyAlphabet) {
		t.Fatalf("expected ErrEmptyAlphabet, got %v", err)
	}
}

func TestGenerateDebugLogOmitsSecret(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gen := New(WithLogger(logger), WithScorer(strength.Heuristic{}))
	res, err := gen.Generate(model.GenerationConfig{Length: 24, Lowercase: true, Uppercase: true, Numbers: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "secret generated") {
		t.Fatalf("expected debug line, got %q", out)
	}
	if strings.Contains(out, res.Secret) {
		t.Fatalf("debug log leaked the secret: %q", out)
	}
}
