package config

import (
	"fmt"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/preset"
)

// PresetName returns the configured preset or the default one.
func (g GenerateConfig) PresetName() string {
	if g.Preset == nil || *g.Preset == "" {
		return preset.Basic
	}
	return *g.Preset
}

// Resolve starts from the selected preset, applies every set field and
// validates the result.
func (g GenerateConfig) Resolve() (model.GenerationConfig, error) {
	cfg, err := preset.Lookup(g.PresetName())
	if err != nil {
		return model.GenerationConfig{}, err
	}
	if g.Length != nil {
		cfg.Length = *g.Length
	}
	if g.Lowercase != nil {
		cfg.Lowercase = *g.Lowercase
	}
	if g.Uppercase != nil {
		cfg.Uppercase = *g.Uppercase
	}
	if g.Numbers != nil {
		cfg.Numbers = *g.Numbers
	}
	if g.Symbols != nil {
		cfg.Symbols = *g.Symbols
	}
	if g.ExcludeAmbiguous != nil {
		cfg.ExcludeAmbiguous = *g.ExcludeAmbiguous
	}
	if g.Mode != nil {
		mode, err := model.ParseMode(*g.Mode)
		if err != nil {
			return model.GenerationConfig{}, err
		}
		cfg.Mode = mode
	}
	if err := cfg.Validate(); err != nil {
		return model.GenerationConfig{}, fmt.Errorf("invalid generation settings: %w", err)
	}
	return cfg, nil
}

// ScorerName returns the configured scorer name, "" when unset.
func (g GenerateConfig) ScorerName() string {
	if g.Scorer == nil {
		return ""
	}
	return *g.Scorer
}

// HistoryOn reports whether history persistence is enabled (default true).
func (h HistoryConfig) HistoryOn() bool {
	return h.Enabled == nil || *h.Enabled
}

// Path returns the configured database path or the XDG default.
func (h HistoryConfig) Path() string {
	if h.DBPath == nil || *h.DBPath == "" {
		return DefaultDBPath()
	}
	return *h.DBPath
}
