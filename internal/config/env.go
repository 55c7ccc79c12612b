package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds PASSGEN_* overrides. Nil fields are unset.
type EnvConfig struct {
	Preset           *string `env:"PASSGEN_PRESET"`
	Length           *int    `env:"PASSGEN_LENGTH"`
	Lowercase        *bool   `env:"PASSGEN_LOWERCASE"`
	Uppercase        *bool   `env:"PASSGEN_UPPERCASE"`
	Numbers          *bool   `env:"PASSGEN_NUMBERS"`
	Symbols          *bool   `env:"PASSGEN_SYMBOLS"`
	ExcludeAmbiguous *bool   `env:"PASSGEN_EXCLUDE_AMBIGUOUS"`
	Mode             *string `env:"PASSGEN_MODE"`
	Scorer           *string `env:"PASSGEN_SCORER"`
	WordList         *string `env:"PASSGEN_WORDLIST"`
	HistoryEnabled   *bool   `env:"PASSGEN_HISTORY"`
	DBPath           *string `env:"PASSGEN_DB_PATH"`
	Verbose          bool    `env:"PASSGEN_VERBOSE"`
}

// LoadEnv reads PASSGEN_* variables from the process environment.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Overlay copies every set environment value over the file config.
func (e EnvConfig) Overlay(file FileConfig) FileConfig {
	g := &file.Generate
	setIf(&g.Preset, e.Preset)
	setIf(&g.Length, e.Length)
	setIf(&g.Lowercase, e.Lowercase)
	setIf(&g.Uppercase, e.Uppercase)
	setIf(&g.Numbers, e.Numbers)
	setIf(&g.Symbols, e.Symbols)
	setIf(&g.ExcludeAmbiguous, e.ExcludeAmbiguous)
	setIf(&g.Mode, e.Mode)
	setIf(&g.Scorer, e.Scorer)
	setIf(&g.WordList, e.WordList)
	setIf(&file.History.Enabled, e.HistoryEnabled)
	setIf(&file.History.DBPath, e.DBPath)
	return file
}

func setIf[T any](target **T, value *T) {
	if value != nil {
		*target = value
	}
}
