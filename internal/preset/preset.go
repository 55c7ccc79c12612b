// Package preset holds the named generation configurations.
package preset

import (
	"fmt"

	"github.com/verte-zerg/passgen/internal/model"
)

// Preset names in catalog order.
const (
	Basic  = "basic"
	Strong = "strong"
	PIN    = "pin"
	Phrase = "phrase"
)

type entry struct {
	name   string
	config model.GenerationConfig
}

var catalog = []entry{
	{name: Basic, config: model.GenerationConfig{
		Length: 12, Lowercase: true, Uppercase: true, Numbers: true, ExcludeAmbiguous: true,
	}},
	{name: Strong, config: model.GenerationConfig{
		Length: 16, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true,
	}},
	{name: PIN, config: model.GenerationConfig{
		Length: 6, Numbers: true,
	}},
	{name: Phrase, config: model.GenerationConfig{
		Length: 24, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true, Mode: model.ModePassphrase,
	}},
}

// Lookup returns a copy of the named preset.
func Lookup(name string) (model.GenerationConfig, error) {
	for _, e := range catalog {
		if e.name == name {
			return e.config, nil
		}
	}
	return model.GenerationConfig{}, fmt.Errorf("%w: %q", model.ErrPresetNotFound, name)
}

// Names returns the preset names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.name
	}
	return names
}

// Default is the preset applied when nothing else is selected.
func Default() model.GenerationConfig {
	cfg, _ := Lookup(Basic)
	return cfg
}
