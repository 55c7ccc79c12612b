package report

import (
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/passgen/internal/model"
)

type yamlEntry struct {
	Masked      string    `yaml:"masked"`
	Strength    string    `yaml:"strength"`
	Score       int       `yaml:"score"`
	EntropyBits int       `yaml:"entropy_bits"`
	Mode        string    `yaml:"mode"`
	Length      int       `yaml:"length"`
	GeneratedAt time.Time `yaml:"generated_at"`
}

// WriteYAML writes history as a YAML sequence.
func WriteYAML(w io.Writer, entries []model.HistoryEntry) error {
	out := make([]yamlEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, yamlEntry{
			Masked:      e.Masked,
			Strength:    e.Label.Key(),
			Score:       e.Score,
			EntropyBits: e.EntropyBits,
			Mode:        e.Mode.String(),
			Length:      e.Length,
			GeneratedAt: e.GeneratedAt.UTC(),
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
