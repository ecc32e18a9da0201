package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Profiles []Definition `yaml:"profiles"`
}

// LoadDefinitions reads profile definitions from a YAML seed file. Every
// definition is validated; the first invalid one fails the whole load, so a
// bad seed file is caught at startup rather than at render time.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	for i, def := range f.Profiles {
		if def.Name == DefaultName {
			return nil, fmt.Errorf("profiles[%d]: %q is reserved for the built-in profile", i, DefaultName)
		}

		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("profiles[%d]: %w", i, err)
		}
	}

	return f.Profiles, nil
}
