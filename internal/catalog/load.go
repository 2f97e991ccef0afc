package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog file. An empty path or a missing file yields the
// built-in default; any other read or parse failure is an error. The loaded
// catalog is validated before it is returned.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var cat Catalog
	if err := yaml.Unmarshal(b, &cat); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}
