// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Length bounds for a generation request.
const (
	MinLength = 1
	MaxLength = 128
)

// Mode selects how a secret is assembled.
type Mode int

const (
	// ModeStandard draws characters from the configured alphabet.
	ModeStandard Mode = iota
	// ModePassphrase joins dictionary words.
	ModePassphrase
)

func (m Mode) String() string {
	switch m {
	case ModePassphrase:
		return "passphrase"
	default:
		return "standard"
	}
}

// ParseMode converts a mode name into a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "standard":
		return ModeStandard, nil
	case "passphrase", "phrase":
		return ModePassphrase, nil
	default:
		return ModeStandard, fmt.Errorf("unknown mode %q (expected standard or passphrase)", value)
	}
}

// Category is a character class that can be enabled in a config.
type Category int

// Categories in alphabet construction order.
const (
	CategoryLowercase Category = iota
	CategoryUppercase
	CategoryDigits
	CategorySymbols
)

// Categories returns every category in alphabet construction order.
func Categories() []Category {
	return []Category{CategoryLowercase, CategoryUppercase, CategoryDigits, CategorySymbols}
}

func (c Category) String() string {
	switch c {
	case CategoryLowercase:
		return "lowercase"
	case CategoryUppercase:
		return "uppercase"
	case CategoryDigits:
		return "digits"
	case CategorySymbols:
		return "symbols"
	default:
		return "unknown"
	}
}

// GenerationConfig describes a single generation request.
type GenerationConfig struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeAmbiguous bool
	Mode             Mode
}

// Enabled reports whether the category is switched on.
func (c GenerationConfig) Enabled(cat Category) bool {
	switch cat {
	case CategoryLowercase:
		return c.Lowercase
	case CategoryUppercase:
		return c.Uppercase
	case CategoryDigits:
		return c.Numbers
	case CategorySymbols:
		return c.Symbols
	default:
		return false
	}
}

// HasCategory reports whether at least one category is enabled.
func (c GenerationConfig) HasCategory() bool {
	return c.Lowercase || c.Uppercase || c.Numbers || c.Symbols
}

// Validate rejects out-of-range lengths and, in standard mode, configs
// without any category.
func (c GenerationConfig) Validate() error {
	if c.Length < MinLength || c.Length > MaxLength {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, c.Length)
	}
	if c.Mode == ModeStandard && !c.HasCategory() {
		return ErrEmptyAlphabet
	}
	return nil
}

// Strength is the outcome of scoring a secret.
type Strength struct {
	Score       int
	Label       StrengthLabel
	Suggestions []string
	Warning     string
	CrackTime   string
}

// GenerationResult is a generated secret with its metadata.
type GenerationResult struct {
	Secret      string
	Strength    Strength
	EntropyBits int
	Config      GenerationConfig
	GeneratedAt time.Time
}

// HistoryEntry is the persisted, masked summary of a result.
type HistoryEntry struct {
	ID          int64
	Masked      string
	Score       int
	Label       StrengthLabel
	EntropyBits int
	Mode        Mode
	Length      int
	GeneratedAt time.Time
}

// NewHistoryEntry summarizes a result without keeping the secret.
func NewHistoryEntry(result GenerationResult) HistoryEntry {
	return HistoryEntry{
		Masked:      MaskSecret(result.Secret),
		Score:       result.Strength.Score,
		Label:       result.Strength.Label,
		EntropyBits: result.EntropyBits,
		Mode:        result.Config.Mode,
		Length:      result.Config.Length,
		GeneratedAt: result.GeneratedAt,
	}
}
