// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Generate GenerateConfig `toml:"generate"`
	History  HistoryConfig  `toml:"history"`
}

// GenerateConfig maps generation settings. Nil fields are unset.
type GenerateConfig struct {
	Preset           *string `toml:"preset"`
	Length           *int    `toml:"length"`
	Lowercase        *bool   `toml:"lowercase"`
	Uppercase        *bool   `toml:"uppercase"`
	Numbers          *bool   `toml:"numbers"`
	Symbols          *bool   `toml:"symbols"`
	ExcludeAmbiguous *bool   `toml:"exclude-ambiguous"`
	Mode             *string `toml:"mode"`
	Scorer           *string `toml:"scorer"`
	WordList         *string `toml:"wordlist"`
}

// HistoryConfig maps history settings.
type HistoryConfig struct {
	Enabled *bool   `toml:"enabled"`
	DBPath  *string `toml:"db-path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an
// error; unknown keys are.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return FileConfig{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}
