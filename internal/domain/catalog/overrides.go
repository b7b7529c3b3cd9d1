package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadOverrides reads the authored override map (projects.json) from disk.
// An empty path yields an empty map; a missing or unreadable file is an
// error, since overrides are checked-in content rather than runtime state.
func LoadOverrides(path string) (map[string]Override, error) {
	if path == "" {
		return map[string]Override{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var overrides map[string]Override
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	return overrides, nil
}
