package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleSet holds scan-profile rules loaded from a YAML file.
type RuleSet struct {
	// Exclude lists directory names pruned from traversal.
	Exclude []string `yaml:"exclude"`
}

// Loader loads a scan profile from a YAML file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given profile path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the profile. A missing file yields an empty rule set,
// not an error, so a profile is always optional.
func (l *Loader) Load() (*RuleSet, error) {
	rs := &RuleSet{}

	if l.path == "" {
		return rs, nil
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return rs, nil
		}
		return nil, fmt.Errorf("failed to read scan profile %s: %w", l.path, err)
	}

	if err := yaml.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("failed to parse scan profile %s: %w", l.path, err)
	}
	return rs, nil
}
