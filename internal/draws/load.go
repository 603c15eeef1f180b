package draws

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the YAML document shape for an external draw set.
type file struct {
	Draws []Draw `yaml:"draws"`
}

// Load reads a draw set from a YAML file, replacing the built-in seed.
// The file is validated the same way the seed is trusted to be: every
// entry needs a stream, a positive cutoff, and a date.
func Load(path string) ([]Draw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draws file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML draw set.
func Parse(data []byte) ([]Draw, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse draws file: %w", err)
	}
	if len(f.Draws) == 0 {
		return nil, fmt.Errorf("draws file contains no draws")
	}
	for i, d := range f.Draws {
		if d.Stream == "" {
			return nil, fmt.Errorf("draw %d: missing stream", i)
		}
		if d.Cutoff <= 0 {
			return nil, fmt.Errorf("draw %d (%s): cutoff must be positive, got %d", i, d.Stream, d.Cutoff)
		}
		if d.Date == "" {
			return nil, fmt.Errorf("draw %d (%s): missing date", i, d.Stream)
		}
	}
	return f.Draws, nil
}
